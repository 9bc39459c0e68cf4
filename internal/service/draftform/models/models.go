package models

import (
	"encoding/json"
	"time"

	"github.com/m04kA/TMS-AdminService/internal/domain"
)

// Request модели

// CreateSessionRequest запрос на открытие сессии черновика
type CreateSessionRequest struct {
	Mode   string  `json:"mode"`
	TourID *string `json:"tourId,omitempty"`
}

// FieldChangeRequest изменение одного поля черновика.
// Value декодируется в тип поля на стороне сервиса.
type FieldChangeRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// NavigateRequest запрос навигации по вкладкам
type NavigateRequest struct {
	Direction string `json:"direction"` // next | prev
}

const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

// Response модели

// HighlightView элемент списка highlights: либо текст, либо пара заголовок-описание
type HighlightView struct {
	Text        string `json:"text,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// ItineraryDayView день программы тура
type ItineraryDayView struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// DraftView JSON-представление черновика тура
type DraftView struct {
	Title         string             `json:"title"`
	Slug          string             `json:"slug"`
	Image         string             `json:"image"`
	Badge         *string            `json:"badge,omitempty"`
	BadgeColor    *string            `json:"badgeColor,omitempty"`
	StartDate     string             `json:"startDate"`
	EndDate       string             `json:"endDate"`
	Duration      string             `json:"duration"`
	Price         int64              `json:"price"`
	OriginalPrice *int64             `json:"originalPrice,omitempty"`
	Discount      *int64             `json:"discount,omitempty"`
	TotalSeats    *int64             `json:"totalSeats,omitempty"`
	SeatsTaken    *int64             `json:"seatsTaken,omitempty"`
	Category      string             `json:"category"`
	Destinations  []string           `json:"destinations"`
	Facilities    []string           `json:"facilities"`
	Included      []string           `json:"included"`
	Excluded      []string           `json:"excluded"`
	Highlights    []HighlightView    `json:"highlights"`
	Itinerary     []ItineraryDayView `json:"itinerary"`
}

// TabState состояние вкладки для индикатора прогресса
type TabState struct {
	Tab       string `json:"tab"`
	Active    bool   `json:"active"`
	Complete  bool   `json:"complete"`
	HasErrors bool   `json:"hasErrors"`
}

// PricingView производные значения калькулятора цен
type PricingView struct {
	DiscountPercentage int    `json:"discountPercentage"`
	FinalPrice         int64  `json:"finalPrice"`
	AvailableSeats     *int64 `json:"availableSeats,omitempty"`
}

// NoticeView уведомление об автокоррекции поля
type NoticeView struct {
	Level   string `json:"level"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SessionResponse полное состояние сессии черновика
type SessionResponse struct {
	ID          string            `json:"id"`
	Mode        string            `json:"mode"`
	TourID      *string           `json:"tourId,omitempty"`
	ActiveTab   string            `json:"activeTab"`
	Draft       *DraftView        `json:"draft"`
	Tabs        []TabState        `json:"tabs"`
	Pricing     PricingView       `json:"pricing"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Notices     []NoticeView      `json:"notices,omitempty"`
	CanSubmit   bool              `json:"canSubmit"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// FromDomainDraft конвертирует domain черновик в JSON-представление
func FromDomainDraft(d *domain.TourDraft) *DraftView {
	view := &DraftView{
		Title:         d.Title,
		Slug:          d.Slug,
		Image:         d.Image,
		BadgeColor:    d.BadgeColor,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Duration:      d.Duration,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Discount:      d.Discount,
		TotalSeats:    d.TotalSeats,
		SeatsTaken:    d.SeatsTaken,
		Category:      string(d.Category),
		Destinations:  d.Destinations,
		Facilities:    d.Facilities,
		Included:      d.Included,
		Excluded:      d.Excluded,
	}

	if d.Badge != nil {
		badge := string(*d.Badge)
		view.Badge = &badge
	}

	view.Highlights = make([]HighlightView, 0, len(d.Highlights))
	for _, h := range d.Highlights {
		if h.Kind == domain.HighlightPlain {
			view.Highlights = append(view.Highlights, HighlightView{Text: h.Text})
			continue
		}
		view.Highlights = append(view.Highlights, HighlightView{Title: h.Title, Description: h.Description})
	}

	view.Itinerary = make([]ItineraryDayView, 0, len(d.Itinerary))
	for _, day := range d.Itinerary {
		view.Itinerary = append(view.Itinerary, ItineraryDayView{
			Day:        day.Day,
			Title:      day.Title,
			Activities: day.Activities,
		})
	}

	return view
}

// FromDomainSession собирает полный ответ по сессии: представление черновика,
// состояния вкладок, производные цены и накопленные ошибки
func FromDomainSession(s *domain.DraftSession) *SessionResponse {
	resp := &SessionResponse{
		ID:          s.ID,
		Mode:        string(s.Mode),
		TourID:      s.TourID,
		ActiveTab:   string(s.ActiveTab),
		Draft:       FromDomainDraft(s.Draft),
		FieldErrors: s.FieldErrors,
		CanSubmit:   s.ActiveTab.IsTerminal() && domain.SubmitReady(s.Draft),
		UpdatedAt:   s.UpdatedAt,
	}

	resp.Tabs = make([]TabState, 0, len(domain.TabOrder))
	for _, tab := range domain.TabOrder {
		state := TabState{
			Tab:      string(tab),
			Active:   tab == s.ActiveTab,
			Complete: domain.TabComplete(s.Draft, tab),
		}
		for _, field := range domain.TabFields(tab) {
			if _, ok := s.FieldErrors[field]; ok {
				state.HasErrors = true
				break
			}
		}
		resp.Tabs = append(resp.Tabs, state)
	}

	var discount int64
	if s.Draft.Discount != nil {
		discount = *s.Draft.Discount
	}
	base := s.Draft.DiscountBound()
	resp.Pricing = PricingView{
		DiscountPercentage: domain.DiscountPercentage(base, discount),
		FinalPrice:         domain.FinalPrice(base, discount),
		AvailableSeats:     domain.AvailableSeats(s.Draft.TotalSeats, s.Draft.SeatsTaken),
	}

	resp.Notices = make([]NoticeView, 0, len(s.Notices))
	for _, n := range s.Notices {
		resp.Notices = append(resp.Notices, NoticeView{
			Level:   string(n.Level),
			Field:   n.Field,
			Message: n.Message,
		})
	}

	return resp
}
