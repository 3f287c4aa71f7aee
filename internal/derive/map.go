package derive

import "github.com/meridiancon/companion-sync/models"

// MapDetails is a map joined against its backing image, with entry links
// resolved where they target other cached records.
type MapDetails struct {
	models.Map

	Image   *ImageDetails
	Entries []MapEntryDetails
}

// MapEntryDetails is a map entry with its link fragments resolved.
type MapEntryDetails struct {
	models.MapEntry

	Links []LinkFragmentDetails
}

// LinkFragmentDetails is a link fragment plus the cached record it points
// at, when the target kind lives in this cache. Unresolvable targets stay
// nil and the fragment passes through untouched.
type LinkFragmentDetails struct {
	models.LinkFragment

	Dealer *models.Dealer
	Map    *models.Map
}

// MapDetails derives the projection for a single map id.
func (d *Deriver) MapDetails(id string) (MapDetails, bool) {
	m, ok := d.store.Maps.Get(id)
	if !ok {
		return MapDetails{}, false
	}
	return d.mapDetails(m), true
}

// AllMapDetails derives all browseable maps in display order. Memoized
// until the map, dealer or image collection changes.
func (d *Deriver) AllMapDetails() []MapDetails {
	versions := []uint64{
		d.store.Maps.Version(),
		d.store.Dealers.Version(),
		d.store.Images.Version(),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if cached, ok := d.mapsMemo.get(versions); ok {
		return cached
	}

	maps := d.store.Maps.All()
	out := make([]MapDetails, 0, len(maps))
	for _, m := range maps {
		out = append(out, d.mapDetails(m))
	}
	d.mapsMemo.put(versions, out)
	return out
}

func (d *Deriver) mapDetails(m models.Map) MapDetails {
	details := MapDetails{
		Map:     m,
		Image:   d.resolveImage(m.ImageId),
		Entries: make([]MapEntryDetails, 0, len(m.Entries)),
	}

	for _, entry := range m.Entries {
		ed := MapEntryDetails{MapEntry: entry}
		for _, link := range entry.Links {
			ed.Links = append(ed.Links, d.linkDetails(link))
		}
		details.Entries = append(details.Entries, ed)
	}

	return details
}

func (d *Deriver) linkDetails(link models.LinkFragment) LinkFragmentDetails {
	details := LinkFragmentDetails{LinkFragment: link}
	switch link.FragmentType {
	case "DealerDetail":
		if dealer, ok := d.store.Dealers.Get(link.Target); ok {
			details.Dealer = &dealer
		}
	case "MapEntry", "MapExternal":
		if m, ok := d.store.Maps.Get(link.Target); ok {
			details.Map = &m
		}
	}
	return details
}
