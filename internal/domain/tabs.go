package domain

// Tab represents one logical section of the tour authoring form
type Tab string

const (
	TabBasic        Tab = "basic"
	TabPricing      Tab = "pricing"
	TabDestinations Tab = "destinations"
	TabHighlights   Tab = "highlights"
	TabItinerary    Tab = "itinerary"
	TabIncluded     Tab = "included"
)

// TabOrder линейная последовательность вкладок формы
// Переход вперёд возможен только на следующую вкладку, без пропусков
var TabOrder = []Tab{
	TabBasic,
	TabPricing,
	TabDestinations,
	TabHighlights,
	TabItinerary,
	TabIncluded,
}

// IsValid returns true if the tab is part of the form sequence
func (t Tab) IsValid() bool {
	return t.Index() >= 0
}

// Index returns the position of the tab in the sequence, -1 for unknown tabs
func (t Tab) Index() int {
	for i, tab := range TabOrder {
		if tab == t {
			return i
		}
	}
	return -1
}

// IsTerminal returns true for the last tab of the sequence
func (t Tab) IsTerminal() bool {
	return t == TabOrder[len(TabOrder)-1]
}

// NextTab возвращает следующую вкладку последовательности
// ok == false для последней вкладки
func NextTab(t Tab) (Tab, bool) {
	i := t.Index()
	if i < 0 || i >= len(TabOrder)-1 {
		return t, false
	}
	return TabOrder[i+1], true
}

// PrevTab возвращает предыдущую вкладку последовательности
// ok == false для первой вкладки
func PrevTab(t Tab) (Tab, bool) {
	i := t.Index()
	if i <= 0 {
		return t, false
	}
	return TabOrder[i-1], true
}

// TabFields возвращает имена полей, принадлежащих вкладке
// Используется для выборочной валидации при переходе вперёд
func TabFields(t Tab) []string {
	switch t {
	case TabBasic:
		return []string{FieldTitle, FieldSlug, FieldImage, FieldStartDate, FieldEndDate, FieldDuration, FieldCategory, FieldBadge, FieldBadgeColor}
	case TabPricing:
		return []string{FieldPrice, FieldOriginalPrice, FieldDiscount, FieldTotalSeats, FieldSeatsTaken}
	case TabDestinations:
		return []string{FieldDestinations, FieldFacilities}
	case TabHighlights:
		return []string{FieldHighlights}
	case TabItinerary:
		return []string{FieldItinerary}
	case TabIncluded:
		return []string{FieldIncluded, FieldExcluded}
	default:
		return nil
	}
}

// TabOfField возвращает вкладку, которой принадлежит поле
func TabOfField(field string) (Tab, bool) {
	for _, tab := range TabOrder {
		for _, f := range TabFields(tab) {
			if f == field {
				return tab, true
			}
		}
	}
	return "", false
}
