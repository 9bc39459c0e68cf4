package tourbackend

import (
	"encoding/json"

	"github.com/m04kA/TMS-AdminService/internal/domain"
)

// envelope общий конверт всех ответов бэкенда
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	Error      *APIError       `json:"error,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// APIError структурированная ошибка бэкенда
type APIError struct {
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail ошибка валидации, привязанная к полю
type ErrorDetail struct {
	Path    []string `json:"path,omitempty"`
	Message string   `json:"message"`
}

// Pagination параметры пагинации списочных ответов
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Tour модель тура из бэкенда
// Списочные поля приходят как объекты с id, в отличие от плоского payload
type Tour struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Image         string  `json:"image"`
	Badge         *string `json:"badge,omitempty"`
	BadgeColor    *string `json:"badgeColor,omitempty"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Duration      string  `json:"duration"`
	Price         int64   `json:"price"`
	OriginalPrice *int64  `json:"originalPrice,omitempty"`
	Discount      *int64  `json:"discount,omitempty"`
	SeatsTaken    *int64  `json:"seatsTaken,omitempty"`
	TotalSeats    *int64  `json:"totalSeats,omitempty"`
	Category      string  `json:"category"`

	Destinations []TourDestination `json:"destinations"`
	Facilities   []TourFacility    `json:"facilities"`
	Highlights   []TourHighlight   `json:"highlights"`
	Itinerary    []TourItinerary   `json:"itinerary"`
	Included     []TourItem        `json:"included"`
	Excluded     []TourItem        `json:"excluded"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// TourDestination элемент списка направлений тура
type TourDestination struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
}

// TourFacility элемент списка удобств тура
type TourFacility struct {
	ID       string `json:"id"`
	Facility string `json:"facility"`
}

// TourHighlight элемент списка highlights тура
type TourHighlight struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// TourItinerary день программы тура
type TourItinerary struct {
	ID         string   `json:"id"`
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// TourItem элемент списков included/excluded
type TourItem struct {
	ID   string `json:"id"`
	Item string `json:"item"`
}

// ToursPage страница списка туров с пагинацией
type ToursPage struct {
	Tours      []Tour     `json:"tours"`
	Pagination Pagination `json:"pagination"`
}

// ToursFilter параметры списочного запроса туров
type ToursFilter struct {
	Category  *string
	Search    *string
	MinPrice  *int64
	MaxPrice  *int64
	StartDate *string
	EndDate   *string
	Page      *int
	Limit     *int
}

// CanonicalQuery возвращает каноничное строковое представление фильтра
// Используется синхронизатором как часть ключа кеша
func (f ToursFilter) CanonicalQuery() string {
	return encodeToursFilter(f)
}

// Booking модель бронирования из бэкенда
type Booking struct {
	ID            string  `json:"id"`
	TourID        string  `json:"tourId"`
	CustomerID    string  `json:"customerId"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	TotalAmount   int64   `json:"totalAmount"`
	PaidAmount    int64   `json:"paidAmount"`
	NumberOfSeats int     `json:"numberOfSeats"`
	PaymentProof  *string `json:"paymentProof,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	PaymentDate   *string `json:"paymentDate,omitempty"`
	ConfirmedAt   *string `json:"confirmedAt,omitempty"`
	ConfirmedBy   *string `json:"confirmedBy,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// BookingsPage страница списка бронирований с пагинацией
type BookingsPage struct {
	Bookings   []Booking  `json:"bookings"`
	Pagination Pagination `json:"pagination"`
}

// BookingsFilter параметры списочного запроса бронирований
type BookingsFilter struct {
	Status        *string
	PaymentStatus *string
	Search        *string
	Page          *int
	Limit         *int
}

// CanonicalQuery возвращает каноничное строковое представление фильтра
func (f BookingsFilter) CanonicalQuery() string {
	return encodeBookingsFilter(f)
}

// VerifyPaymentPayload тело запроса подтверждения оплаты
type VerifyPaymentPayload struct {
	PaidAmount    int64   `json:"paidAmount"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// PayloadHighlight highlight в плоском payload создания/обновления тура
type PayloadHighlight struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// PayloadItinerary день программы в плоском payload
type PayloadItinerary struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// TourPayload тело запроса создания/обновления тура
// Списочные поля уже отфильтрованы от пустых значений
type TourPayload struct {
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
	SeatsTaken    *int64             `json:"seatsTaken,omitempty"`
	TotalSeats    *int64             `json:"totalSeats,omitempty"`
	Category      string             `json:"category,omitempty"`
	Destinations  []string           `json:"destinations"`
	Facilities    []string           `json:"facilities"`
	Highlights    []PayloadHighlight `json:"highlights"`
	Itinerary     []PayloadItinerary `json:"itinerary,omitempty"`
	Included      []string           `json:"included"`
	Excluded      []string           `json:"excluded"`
}

// PayloadFromDraft нормализует черновик в payload бэкенда:
// пустые элементы списков отфильтровываются, highlights приводятся
// к форме {title, description?}, дням без номера назначается следующий номер
func PayloadFromDraft(d *domain.TourDraft) *TourPayload {
	p := &TourPayload{
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
		SeatsTaken:    d.SeatsTaken,
		TotalSeats:    d.TotalSeats,
		Category:      string(d.Category),
		Destinations:  domain.FilterBlank(d.Destinations),
		Facilities:    domain.FilterBlank(d.Facilities),
		Included:      domain.FilterBlank(d.Included),
		Excluded:      domain.FilterBlank(d.Excluded),
	}

	if d.Badge != nil {
		badge := string(*d.Badge)
		p.Badge = &badge
	}

	p.Highlights = make([]PayloadHighlight, 0, len(d.Highlights))
	for _, h := range d.FilledHighlights() {
		p.Highlights = append(p.Highlights, payloadHighlight(h))
	}

	nextDay := d.NextItineraryDay()
	for _, day := range d.Itinerary {
		if !day.IsComplete() {
			continue
		}
		n := day.Day
		if n <= 0 {
			n = nextDay
			nextDay++
		}
		p.Itinerary = append(p.Itinerary, PayloadItinerary{
			Day:        n,
			Title:      day.Title,
			Activities: day.FilledActivities(),
		})
	}

	return p
}

// payloadHighlight приводит вариант highlight к форме сериализации
func payloadHighlight(h domain.Highlight) PayloadHighlight {
	if h.Kind == domain.HighlightPlain {
		return PayloadHighlight{Title: h.Text}
	}
	out := PayloadHighlight{Title: h.Title}
	if h.Description != "" {
		desc := h.Description
		out.Description = &desc
	}
	return out
}

// DraftFromTour гидрирует черновик из загруженного тура (режим редактирования)
func DraftFromTour(t *Tour) *domain.TourDraft {
	d := &domain.TourDraft{
		Title:         t.Title,
		Slug:          t.Slug,
		Image:         t.Image,
		BadgeColor:    t.BadgeColor,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		Duration:      t.Duration,
		Price:         t.Price,
		OriginalPrice: t.OriginalPrice,
		Discount:      t.Discount,
		SeatsTaken:    t.SeatsTaken,
		TotalSeats:    t.TotalSeats,
		Category:      domain.TourCategory(t.Category),
	}

	if t.Badge != nil {
		badge := domain.TourBadge(*t.Badge)
		d.Badge = &badge
	}
	if !d.Category.IsValid() {
		d.Category = domain.CategoryRegular
	}

	for _, dest := range t.Destinations {
		d.Destinations = append(d.Destinations, dest.Destination)
	}
	for _, f := range t.Facilities {
		d.Facilities = append(d.Facilities, f.Facility)
	}
	for _, h := range t.Highlights {
		d.Highlights = append(d.Highlights, domain.NewDetailedHighlight(h.Title, h.Description))
	}
	for _, day := range t.Itinerary {
		d.Itinerary = append(d.Itinerary, domain.ItineraryDay{
			Day:        day.Day,
			Title:      day.Title,
			Activities: day.Activities,
		})
	}
	for _, item := range t.Included {
		d.Included = append(d.Included, item.Item)
	}
	for _, item := range t.Excluded {
		d.Excluded = append(d.Excluded, item.Item)
	}

	// Пустая форма всё же должна показывать хотя бы одну строку ввода
	if len(d.Destinations) == 0 {
		d.Destinations = []string{""}
	}
	if len(d.Facilities) == 0 {
		d.Facilities = []string{""}
	}
	if len(d.Included) == 0 {
		d.Included = []string{""}
	}
	if len(d.Highlights) == 0 {
		d.Highlights = []domain.Highlight{domain.NewDetailedHighlight("", "")}
	}

	return d
}
