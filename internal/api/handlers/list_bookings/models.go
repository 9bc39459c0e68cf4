package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

// ToFilter конвертирует query параметры в фильтр списочного запроса
func ToFilter(query url.Values) (tourbackend.BookingsFilter, error) {
	var filter tourbackend.BookingsFilter

	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := query.Get("paymentStatus"); v != "" {
		filter.PaymentStatus = &v
	}
	if v := query.Get("search"); v != "" {
		filter.Search = &v
	}

	var err error
	if filter.Page, err = optionalInt(query, "page"); err != nil {
		return filter, err
	}
	if filter.Limit, err = optionalInt(query, "limit"); err != nil {
		return filter, err
	}

	return filter, nil
}

func optionalInt(query url.Values, key string) (*int, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &v, nil
}
