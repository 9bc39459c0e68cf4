package domain

// TourCategory represents the catalog category of a tour
type TourCategory string

const (
	CategoryFeatured TourCategory = "FEATURED"
	CategoryUpcoming TourCategory = "UPCOMING"
	CategoryRegular  TourCategory = "REGULAR"
	CategoryCustom   TourCategory = "CUSTOM"
)

// IsValid returns true if the category is one of the known values
func (c TourCategory) IsValid() bool {
	switch c {
	case CategoryFeatured, CategoryUpcoming, CategoryRegular, CategoryCustom:
		return true
	}
	return false
}

// TourBadge represents the promotional badge displayed on a tour card
type TourBadge string

const (
	BadgeHotDeal    TourBadge = "HOT DEAL"
	BadgeAlmostFull TourBadge = "ALMOST FULL"
	BadgeNew        TourBadge = "NEW"
	BadgeLastCall   TourBadge = "LAST CALL"
)

// IsValid returns true if the badge is one of the known values
func (b TourBadge) IsValid() bool {
	switch b {
	case BadgeHotDeal, BadgeAlmostFull, BadgeNew, BadgeLastCall:
		return true
	}
	return false
}

// HighlightKind тег варианта highlight
type HighlightKind string

const (
	HighlightPlain    HighlightKind = "plain"
	HighlightDetailed HighlightKind = "detailed"
)

// Highlight is a tagged variant: either a bare text line or a title/description pair
type Highlight struct {
	Kind        HighlightKind
	Text        string // только для HighlightPlain
	Title       string // только для HighlightDetailed
	Description string // только для HighlightDetailed, опционально
}

// NewPlainHighlight создает highlight из одной строки
func NewPlainHighlight(text string) Highlight {
	return Highlight{Kind: HighlightPlain, Text: text}
}

// NewDetailedHighlight создает highlight с заголовком и описанием
func NewDetailedHighlight(title, description string) Highlight {
	return Highlight{Kind: HighlightDetailed, Title: title, Description: description}
}

// IsBlank returns true if the highlight carries no visible content
func (h Highlight) IsBlank() bool {
	if h.Kind == HighlightPlain {
		return trimmed(h.Text) == ""
	}
	return trimmed(h.Title) == "" && trimmed(h.Description) == ""
}

// ItineraryDay represents one day of the tour itinerary
type ItineraryDay struct {
	Day        int
	Title      string
	Activities []string
}

// FilledActivities returns the non-blank activities of the day
func (d ItineraryDay) FilledActivities() []string {
	return FilterBlank(d.Activities)
}

// IsComplete returns true if the day has a non-blank title and at least one activity
func (d ItineraryDay) IsComplete() bool {
	return trimmed(d.Title) != "" && len(d.FilledActivities()) > 0
}

// IsBlank returns true if the day carries no content at all
func (d ItineraryDay) IsBlank() bool {
	return trimmed(d.Title) == "" && len(d.FilledActivities()) == 0
}

// TourDraft is the in-progress, client-held representation of a tour
// being authored or edited. Mutated only through draftform transitions.
type TourDraft struct {
	Title      string
	Slug       string
	Image      string
	Badge      *TourBadge
	BadgeColor *string

	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Duration  string

	// Цены в минимальных единицах валюты
	Price         int64
	OriginalPrice *int64
	Discount      *int64

	TotalSeats *int64
	SeatsTaken *int64

	Category TourCategory

	Destinations []string
	Facilities   []string
	Included     []string
	Excluded     []string
	Highlights   []Highlight
	Itinerary    []ItineraryDay
}

// NewTourDraft returns an empty draft with the defaults the create flow starts from
func NewTourDraft() *TourDraft {
	return &TourDraft{
		Category:     CategoryRegular,
		Destinations: []string{""},
		Facilities:   []string{""},
		Included:     []string{""},
		Excluded:     []string{},
		Highlights:   []Highlight{NewDetailedHighlight("", "")},
		Itinerary:    []ItineraryDay{},
	}
}

// Clone returns a deep copy of the draft
func (d *TourDraft) Clone() *TourDraft {
	out := *d
	if d.Badge != nil {
		badge := *d.Badge
		out.Badge = &badge
	}
	out.BadgeColor = cloneString(d.BadgeColor)
	out.OriginalPrice = cloneInt64(d.OriginalPrice)
	out.Discount = cloneInt64(d.Discount)
	out.TotalSeats = cloneInt64(d.TotalSeats)
	out.SeatsTaken = cloneInt64(d.SeatsTaken)
	out.Destinations = append([]string(nil), d.Destinations...)
	out.Facilities = append([]string(nil), d.Facilities...)
	out.Included = append([]string(nil), d.Included...)
	out.Excluded = append([]string(nil), d.Excluded...)
	out.Highlights = append([]Highlight(nil), d.Highlights...)
	out.Itinerary = make([]ItineraryDay, len(d.Itinerary))
	for i, day := range d.Itinerary {
		out.Itinerary[i] = ItineraryDay{
			Day:        day.Day,
			Title:      day.Title,
			Activities: append([]string(nil), day.Activities...),
		}
	}
	return &out
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// FilledHighlights returns the highlights that carry visible content
func (d *TourDraft) FilledHighlights() []Highlight {
	out := make([]Highlight, 0, len(d.Highlights))
	for _, h := range d.Highlights {
		if !h.IsBlank() {
			out = append(out, h)
		}
	}
	return out
}

// DiscountBound returns the upper bound the discount is clamped against:
// originalPrice when set, the price otherwise. Zero means no bound is known yet.
func (d *TourDraft) DiscountBound() int64 {
	if d.OriginalPrice != nil && *d.OriginalPrice > 0 {
		return *d.OriginalPrice
	}
	return d.Price
}

// NextItineraryDay returns the day number a newly added itinerary entry gets
func (d *TourDraft) NextItineraryDay() int {
	max := 0
	for _, day := range d.Itinerary {
		if day.Day > max {
			max = day.Day
		}
	}
	return max + 1
}
