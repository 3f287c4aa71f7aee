package derive

import (
	"strings"
	"time"

	"github.com/meridiancon/companion-sync/models"
)

// attendanceDays maps the dealer attendance flags to canonical day codes
// and ISO weekday numbers (Mon=1..Sun=7). The flag names are taken at face
// value: AttendsOnThursday means ISO weekday 4. Earlier clients carried a
// legacy mon/tue/wed labeling for the same flags; that naming is retired
// here.
var attendanceDays = []struct {
	Code    string
	Weekday int
	Attends func(models.Dealer) bool
}{
	{"thu", 4, func(d models.Dealer) bool { return d.AttendsOnThursday }},
	{"fri", 5, func(d models.Dealer) bool { return d.AttendsOnFriday }},
	{"sat", 6, func(d models.Dealer) bool { return d.AttendsOnSaturday }},
}

// DealerDetails is a dealer joined against its images and attendance days,
// with the display name and short-description conventions resolved.
type DealerDetails struct {
	models.Dealer

	FullName                string
	ShortDescriptionTable   string
	ShortDescriptionContent string
	AttendanceDayNames      []string
	AttendanceDays          []models.EventDay
	Artist                  *ImageDetails
	ArtistThumbnail         *ImageDetails
	ArtPreview              *ImageDetails
}

// DealerDetails derives the projection for a single dealer id.
func (d *Deriver) DealerDetails(id string) (DealerDetails, bool) {
	dealer, ok := d.store.Dealers.Get(id)
	if !ok {
		return DealerDetails{}, false
	}
	return d.dealerDetails(dealer), true
}

// AllDealerDetails derives the dealer list ordered by display name.
// Memoized until the dealer, day or image collection changes.
func (d *Deriver) AllDealerDetails() []DealerDetails {
	versions := []uint64{
		d.store.Dealers.Version(),
		d.store.EventConferenceDays.Version(),
		d.store.Images.Version(),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if cached, ok := d.dealersMemo.get(versions); ok {
		return cached
	}

	dealers := d.store.Dealers.All()
	out := make([]DealerDetails, 0, len(dealers))
	for _, dealer := range dealers {
		out = append(out, d.dealerDetails(dealer))
	}
	d.dealersMemo.put(versions, out)
	return out
}

func (d *Deriver) dealerDetails(dealer models.Dealer) DealerDetails {
	details := DealerDetails{
		Dealer:          dealer,
		FullName:        dealer.DisplayName,
		Artist:          d.resolveImage(dealer.ArtistImageId),
		ArtistThumbnail: d.resolveImage(dealer.ArtistThumbnailImageId),
		ArtPreview:      d.resolveImage(dealer.ArtPreviewImageId),
	}
	if details.FullName == "" {
		details.FullName = dealer.AttendeeNickname
	}

	details.ShortDescriptionTable, details.ShortDescriptionContent = splitShortDescription(dealer.ShortDescription)

	days := d.store.EventConferenceDays.All()
	for _, ad := range attendanceDays {
		if !ad.Attends(dealer) {
			continue
		}
		details.AttendanceDayNames = append(details.AttendanceDayNames, ad.Code)
		for _, day := range days {
			if isoWeekday(day.Date) == ad.Weekday {
				details.AttendanceDays = append(details.AttendanceDays, day)
				break
			}
		}
	}

	return details
}

// splitShortDescription extracts the conventional leading "Table ..." line
// from a dealer's short description. The remainder, trimmed, becomes the
// content; descriptions without the prefix pass through whole.
func splitShortDescription(s string) (table, content string) {
	first, rest, found := strings.Cut(s, "\n")
	if strings.HasPrefix(first, "Table") {
		if !found {
			return strings.TrimSpace(first), ""
		}
		return strings.TrimSpace(first), strings.TrimSpace(rest)
	}
	return "", s
}

// isoWeekday returns the ISO 8601 weekday number, Monday=1 through Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
