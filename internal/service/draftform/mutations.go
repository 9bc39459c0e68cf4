package draftform

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m04kA/TMS-AdminService/internal/domain"
	"github.com/m04kA/TMS-AdminService/pkg/ptr"
)

// applyChange применяет изменение одного поля к черновику сессии вместе с
// автокоррекциями: вывод slug из заголовка, подстановка originalPrice,
// ограничение скидки и занятых мест. Уведомления предыдущего изменения
// затираются - клиенту показываются только свежие.
func applyChange(session *domain.DraftSession, field string, raw json.RawMessage) error {
	d := session.Draft
	session.Notices = nil

	switch field {
	case domain.FieldTitle:
		v, err := decodeString(raw)
		if err != nil {
			return err
		}
		d.Title = v
		// slug выводится из заголовка, пока пользователь не трогал его сам
		if !session.SlugTouched && strings.TrimSpace(d.Slug) == "" {
			d.Slug = domain.Slugify(v)
		}

	case domain.FieldSlug:
		v, err := decodeString(raw)
		if err != nil {
			return err
		}
		d.Slug = v
		session.SlugTouched = true

	case domain.FieldImage:
		v, err := decodeString(raw)
		if err != nil {
			return err
		}
		d.Image = v

	case domain.FieldBadge:
		v, err := decodeOptionalString(raw)
		if err != nil {
			return err
		}
		if v == nil {
			d.Badge = nil
			break
		}
		badge := domain.TourBadge(*v)
		if !badge.IsValid() {
			return fmt.Errorf("%w: unknown badge %q", ErrInvalidValue, *v)
		}
		d.Badge = &badge

	case domain.FieldBadgeColor:
		v, err := decodeOptionalString(raw)
		if err != nil {
			return err
		}
		d.BadgeColor = v

	case domain.FieldStartDate:
		v, err := decodeString(raw)
		if err != nil {
			return err
		}
		d.StartDate = v

	case domain.FieldEndDate:
		v, err := decodeString(raw)
		if err != nil {
			return err
		}
		d.EndDate = v

	case domain.FieldDuration:
		v, err := decodeString(raw)
		if err != nil {
			return err
		}
		d.Duration = v

	case domain.FieldCategory:
		v, err := decodeString(raw)
		if err != nil {
			return err
		}
		category := domain.TourCategory(v)
		if !category.IsValid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidValue, v)
		}
		d.Category = category

	case domain.FieldPrice:
		v, err := decodeInt(raw)
		if err != nil {
			return err
		}
		d.Price = v
		// цена подставляется как originalPrice, пока тот пуст
		if v > 0 && (d.OriginalPrice == nil || *d.OriginalPrice == 0) {
			d.OriginalPrice = ptr.Ptr(v)
		}

	case domain.FieldOriginalPrice:
		v, err := decodeOptionalInt(raw)
		if err != nil {
			return err
		}
		// очищенный originalPrice возвращается к текущей цене
		if v == nil && d.Price > 0 {
			v = ptr.Ptr(d.Price)
		}
		d.OriginalPrice = v
		if v != nil && d.Discount != nil && *d.Discount > *v {
			d.Discount = ptr.Ptr(*v)
			session.Notices = append(session.Notices, domain.Notice{
				Level:   domain.NoticeWarning,
				Field:   domain.FieldDiscount,
				Message: fmt.Sprintf("Скидка уменьшена до %d, чтобы не превышать базовую цену", *v),
			})
		}

	case domain.FieldDiscount:
		v, err := decodeOptionalInt(raw)
		if err != nil {
			return err
		}
		if v != nil {
			if bound := d.DiscountBound(); bound > 0 && *v > bound {
				v = ptr.Ptr(bound)
				session.Notices = append(session.Notices, domain.Notice{
					Level:   domain.NoticeWarning,
					Field:   domain.FieldDiscount,
					Message: fmt.Sprintf("Скидка не может превышать базовую цену, установлено %d", bound),
				})
			}
		}
		d.Discount = v

	case domain.FieldTotalSeats:
		v, err := decodeOptionalInt(raw)
		if err != nil {
			return err
		}
		d.TotalSeats = v
		if v != nil && d.SeatsTaken != nil && *d.SeatsTaken > *v {
			d.SeatsTaken = ptr.Ptr(*v)
			session.Notices = append(session.Notices, domain.Notice{
				Level:   domain.NoticeWarning,
				Field:   domain.FieldSeatsTaken,
				Message: fmt.Sprintf("Количество занятых мест уменьшено до %d по общему числу мест", *v),
			})
		}

	case domain.FieldSeatsTaken:
		v, err := decodeOptionalInt(raw)
		if err != nil {
			return err
		}
		if v != nil && d.TotalSeats != nil && *v > *d.TotalSeats {
			v = ptr.Ptr(*d.TotalSeats)
			session.Notices = append(session.Notices, domain.Notice{
				Level:   domain.NoticeError,
				Field:   domain.FieldSeatsTaken,
				Message: fmt.Sprintf("Занятых мест не может быть больше общего числа мест (%d)", *d.TotalSeats),
			})
		}
		d.SeatsTaken = v

	case domain.FieldDestinations:
		v, err := decodeStringList(raw)
		if err != nil {
			return err
		}
		d.Destinations = v

	case domain.FieldFacilities:
		v, err := decodeStringList(raw)
		if err != nil {
			return err
		}
		d.Facilities = v

	case domain.FieldIncluded:
		v, err := decodeStringList(raw)
		if err != nil {
			return err
		}
		d.Included = v

	case domain.FieldExcluded:
		v, err := decodeStringList(raw)
		if err != nil {
			return err
		}
		d.Excluded = v

	case domain.FieldHighlights:
		v, err := decodeHighlights(raw)
		if err != nil {
			return err
		}
		d.Highlights = v

	case domain.FieldItinerary:
		v, err := decodeItinerary(raw)
		if err != nil {
			return err
		}
		d.Itinerary = v

	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

func decodeString(raw json.RawMessage) (string, error) {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("%w: expected string: %v", ErrInvalidValue, err)
	}
	return v, nil
}

func decodeOptionalString(raw json.RawMessage) (*string, error) {
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: expected string or null: %v", ErrInvalidValue, err)
	}
	return v, nil
}

func decodeInt(raw json.RawMessage) (int64, error) {
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%w: expected integer: %v", ErrInvalidValue, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative value %d", ErrInvalidValue, v)
	}
	return v, nil
}

func decodeOptionalInt(raw json.RawMessage) (*int64, error) {
	var v *int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: expected integer or null: %v", ErrInvalidValue, err)
	}
	if v != nil && *v < 0 {
		return nil, fmt.Errorf("%w: negative value %d", ErrInvalidValue, *v)
	}
	return v, nil
}

func decodeStringList(raw json.RawMessage) ([]string, error) {
	var v []string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: expected list of strings: %v", ErrInvalidValue, err)
	}
	return v, nil
}

// highlightInput принимает оба варианта: голую строку или пару заголовок-описание
type highlightInput struct {
	Text        string `json:"text"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func decodeHighlights(raw json.RawMessage) ([]domain.Highlight, error) {
	var inputs []highlightInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return nil, fmt.Errorf("%w: expected list of highlights: %v", ErrInvalidValue, err)
	}

	out := make([]domain.Highlight, 0, len(inputs))
	for _, in := range inputs {
		if in.Text != "" && in.Title == "" && in.Description == "" {
			out = append(out, domain.NewPlainHighlight(in.Text))
			continue
		}
		out = append(out, domain.NewDetailedHighlight(in.Title, in.Description))
	}
	return out, nil
}

type itineraryInput struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

func decodeItinerary(raw json.RawMessage) ([]domain.ItineraryDay, error) {
	var inputs []itineraryInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return nil, fmt.Errorf("%w: expected list of itinerary days: %v", ErrInvalidValue, err)
	}

	// дни без номера нумеруются по порядку после максимального из присланных
	nextDay := 1
	for _, in := range inputs {
		if in.Day >= nextDay {
			nextDay = in.Day + 1
		}
	}

	out := make([]domain.ItineraryDay, 0, len(inputs))
	for _, in := range inputs {
		day := in.Day
		if day <= 0 {
			day = nextDay
			nextDay++
		}
		activities := in.Activities
		if len(activities) == 0 {
			// у дня всегда остаётся хотя бы один слот активности
			activities = []string{""}
		}
		out = append(out, domain.ItineraryDay{
			Day:        day,
			Title:      in.Title,
			Activities: activities,
		})
	}
	return out, nil
}
