package domain

import "math"

// Чистые функции расчёта производных значений цены и мест.
// Некорректные входы приводятся к безопасным значениям, а не отклоняются:
// валидация происходит выше, в draftform.

// DiscountPercentage возвращает процент скидки round(discount/base*100)
// Возвращает 0, если base не задан; результат не бывает отрицательным
func DiscountPercentage(base, discount int64) int {
	if base <= 0 {
		return 0
	}
	if discount < 0 {
		return 0
	}
	return int(math.Round(float64(discount) / float64(base) * 100))
}

// FinalPrice возвращает итоговую цену после скидки, не меньше нуля
func FinalPrice(base, discount int64) int64 {
	final := base - discount
	if final < 0 {
		return 0
	}
	return final
}

// AvailableSeats возвращает количество свободных мест
// nil, если общее количество мест не задано
func AvailableSeats(total, taken *int64) *int64 {
	if total == nil {
		return nil
	}
	t := *total
	var occupied int64
	if taken != nil && *taken > 0 {
		occupied = *taken
	}
	available := t - occupied
	return &available
}
