package draftform

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/TMS-AdminService/internal/domain"
)

// validateField проверяет одно поле черновика.
// Возвращает текст ошибки или пустую строку, если поле корректно.
func validateField(session *domain.DraftSession, field string, now time.Time) string {
	d := session.Draft

	switch field {
	case domain.FieldTitle:
		title := strings.TrimSpace(d.Title)
		if title == "" {
			return "Укажите название тура"
		}
		if len([]rune(title)) < domain.MinTitleLength {
			return fmt.Sprintf("Название должно быть не короче %d символов", domain.MinTitleLength)
		}
		if len([]rune(title)) > domain.MaxTitleLength {
			return fmt.Sprintf("Название должно быть не длиннее %d символов", domain.MaxTitleLength)
		}

	case domain.FieldSlug:
		slug := strings.TrimSpace(d.Slug)
		if slug == "" {
			return "Укажите slug тура"
		}
		if !domain.IsValidSlug(slug) {
			return "Slug может содержать только строчные латинские буквы, цифры и дефисы"
		}
		if len(slug) < domain.MinSlugLength || len(slug) > domain.MaxSlugLength {
			return fmt.Sprintf("Slug должен быть от %d до %d символов", domain.MinSlugLength, domain.MaxSlugLength)
		}

	case domain.FieldImage:
		if strings.TrimSpace(d.Image) == "" {
			return "Добавьте изображение тура"
		}

	case domain.FieldStartDate:
		start, err := domain.ParseDate(d.StartDate)
		if err != nil {
			return "Укажите дату начала в формате ГГГГ-ММ-ДД"
		}
		// В режиме редактирования неизменённая дата не проверяется на прошлое:
		// уже идущий тур остаётся редактируемым
		if session.Mode == domain.DraftModeEdit && d.StartDate == session.LoadedStartDate {
			return ""
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if start.Before(today) {
			return "Дата начала не может быть в прошлом"
		}

	case domain.FieldEndDate:
		end, err := domain.ParseDate(d.EndDate)
		if err != nil {
			return "Укажите дату окончания в формате ГГГГ-ММ-ДД"
		}
		if start, err := domain.ParseDate(d.StartDate); err == nil && end.Before(start) {
			return "Дата окончания не может быть раньше даты начала"
		}

	case domain.FieldDuration:
		if strings.TrimSpace(d.Duration) == "" {
			return "Укажите продолжительность тура"
		}

	case domain.FieldCategory:
		if !d.Category.IsValid() {
			return "Выберите категорию тура"
		}

	case domain.FieldBadge:
		if d.Badge != nil && !d.Badge.IsValid() {
			return "Неизвестный тип бейджа"
		}

	case domain.FieldPrice:
		if d.Price <= 0 {
			return "Цена должна быть больше нуля"
		}

	case domain.FieldDiscount:
		if d.Discount != nil {
			if bound := d.DiscountBound(); bound > 0 && *d.Discount > bound {
				return "Скидка не может превышать базовую цену"
			}
		}

	case domain.FieldSeatsTaken:
		if d.SeatsTaken != nil && d.TotalSeats != nil && *d.SeatsTaken > *d.TotalSeats {
			return "Занятых мест не может быть больше общего числа мест"
		}

	case domain.FieldDestinations:
		if len(domain.FilterBlank(d.Destinations)) == 0 {
			return "Добавьте хотя бы одно направление"
		}

	case domain.FieldFacilities:
		if len(domain.FilterBlank(d.Facilities)) == 0 {
			return "Добавьте хотя бы одно удобство"
		}

	case domain.FieldIncluded:
		if len(domain.FilterBlank(d.Included)) == 0 {
			return "Добавьте хотя бы один включённый пункт"
		}

	case domain.FieldHighlights:
		if len(d.FilledHighlights()) == 0 {
			return "Добавьте хотя бы одну особенность тура"
		}

	case domain.FieldItinerary:
		if !domain.ItineraryValid(d) {
			return "У каждого дня программы должны быть название и хотя бы одна активность"
		}
	}

	return ""
}

// validateTab прогоняет валидаторы всех полей вкладки и обновляет FieldErrors сессии
func validateTab(session *domain.DraftSession, tab domain.Tab, now time.Time) {
	for _, field := range domain.TabFields(tab) {
		setFieldError(session, field, validateField(session, field, now))
	}
}

func setFieldError(session *domain.DraftSession, field, message string) {
	if message == "" {
		delete(session.FieldErrors, field)
		return
	}
	if session.FieldErrors == nil {
		session.FieldErrors = make(map[string]string)
	}
	session.FieldErrors[field] = message
}

// tabHasErrors проверяет, есть ли у полей вкладки накопленные ошибки
func tabHasErrors(session *domain.DraftSession, tab domain.Tab) bool {
	for _, field := range domain.TabFields(tab) {
		if _, ok := session.FieldErrors[field]; ok {
			return true
		}
	}
	return false
}
