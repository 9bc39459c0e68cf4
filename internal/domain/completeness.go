package domain

// TabComplete reports whether a tab's section of the draft satisfies
// everything required to move past it.
func TabComplete(d *TourDraft, t Tab) bool {
	switch t {
	case TabBasic:
		return basicComplete(d)
	case TabPricing:
		return pricingComplete(d)
	case TabDestinations:
		return len(FilterBlank(d.Destinations)) > 0 && len(FilterBlank(d.Facilities)) > 0
	case TabHighlights:
		return len(d.FilledHighlights()) > 0
	case TabItinerary:
		// Раздел опционален: наличие вкладки не блокирует навигацию
		return true
	case TabIncluded:
		return len(FilterBlank(d.Included)) > 0
	default:
		return false
	}
}

func basicComplete(d *TourDraft) bool {
	if trimmed(d.Title) == "" || trimmed(d.Image) == "" || trimmed(d.Duration) == "" {
		return false
	}
	if !IsValidSlug(d.Slug) {
		return false
	}
	if !d.Category.IsValid() {
		return false
	}
	start, err := ParseDate(d.StartDate)
	if err != nil {
		return false
	}
	end, err := ParseDate(d.EndDate)
	if err != nil {
		return false
	}
	return !end.Before(start)
}

func pricingComplete(d *TourDraft) bool {
	if d.Price <= 0 {
		return false
	}
	if d.Discount == nil {
		return true
	}
	if d.OriginalPrice != nil {
		return *d.Discount <= *d.OriginalPrice
	}
	return *d.Discount <= d.Price
}

// ItineraryValid reports whether every itinerary entry that carries content
// has a title and at least one activity. Blank placeholder rows are ignored.
func ItineraryValid(d *TourDraft) bool {
	for _, day := range d.Itinerary {
		if day.IsBlank() {
			continue
		}
		if !day.IsComplete() {
			return false
		}
	}
	return true
}

// SubmitReady reports whether the draft may be submitted: every tab's
// completeness predicate holds at once, and itinerary entries are well-formed.
func SubmitReady(d *TourDraft) bool {
	for _, t := range TabOrder {
		if !TabComplete(d, t) {
			return false
		}
	}
	return ItineraryValid(d)
}

// FirstIncompleteTab returns the earliest tab whose predicate fails
func FirstIncompleteTab(d *TourDraft) (Tab, bool) {
	for _, t := range TabOrder {
		if !TabComplete(d, t) {
			return t, true
		}
	}
	if !ItineraryValid(d) {
		return TabItinerary, true
	}
	return "", false
}
