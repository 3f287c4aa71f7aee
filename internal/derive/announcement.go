package derive

import "github.com/meridiancon/companion-sync/models"

// AnnouncementDetails is an announcement plus its resolved image.
type AnnouncementDetails struct {
	models.Announcement

	Image *ImageDetails
}

// AnnouncementDetails derives the projection for a single announcement id.
func (d *Deriver) AnnouncementDetails(id string) (AnnouncementDetails, bool) {
	a, ok := d.store.Announcements.Get(id)
	if !ok {
		return AnnouncementDetails{}, false
	}
	return d.announcementDetails(a), true
}

// ActiveAnnouncements returns the announcements whose validity window
// contains the deriver's current time, newest first.
func (d *Deriver) ActiveAnnouncements() []AnnouncementDetails {
	now := d.now()
	var out []AnnouncementDetails
	for _, a := range d.store.Announcements.All() {
		if !a.ValidAt(now) {
			continue
		}
		out = append(out, d.announcementDetails(a))
	}
	return out
}

func (d *Deriver) announcementDetails(a models.Announcement) AnnouncementDetails {
	return AnnouncementDetails{Announcement: a, Image: d.resolveImage(a.ImageId)}
}
