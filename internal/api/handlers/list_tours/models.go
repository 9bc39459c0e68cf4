package list_tours

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
)

// ToFilter конвертирует query параметры в фильтр списочного запроса
func ToFilter(query url.Values) (tourbackend.ToursFilter, error) {
	var filter tourbackend.ToursFilter

	if v := query.Get("category"); v != "" {
		filter.Category = &v
	}
	if v := query.Get("search"); v != "" {
		filter.Search = &v
	}

	var err error
	if filter.MinPrice, err = optionalInt64(query, "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = optionalInt64(query, "maxPrice"); err != nil {
		return filter, err
	}

	if v := query.Get("startDate"); v != "" {
		filter.StartDate = &v
	}
	if v := query.Get("endDate"); v != "" {
		filter.EndDate = &v
	}

	if filter.Page, err = optionalInt(query, "page"); err != nil {
		return filter, err
	}
	if filter.Limit, err = optionalInt(query, "limit"); err != nil {
		return filter, err
	}

	return filter, nil
}

func optionalInt64(query url.Values, key string) (*int64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &v, nil
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
