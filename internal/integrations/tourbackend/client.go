package tourbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент REST-бэкенда туров
// Все ответы бэкенда обёрнуты в envelope {success, data, message, pagination}
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда туров
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListTours получает страницу списка туров с фильтрами
func (c *Client) ListTours(ctx context.Context, filter ToursFilter) (*ToursPage, error) {
	env, err := c.do(ctx, http.MethodGet, "/tours"+encodeToursFilter(filter), nil, ErrTourNotFound)
	if err != nil {
		return nil, err
	}

	page := &ToursPage{
		Tours:      []Tour{},
		Pagination: Pagination{Page: 1, Limit: 20},
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &page.Tours); err != nil {
			return nil, fmt.Errorf("%w: failed to decode tours list: %v", ErrInvalidResponse, err)
		}
	}
	if env.Pagination != nil {
		page.Pagination = *env.Pagination
	}
	return page, nil
}

// GetTour получает тур по ID
func (c *Client) GetTour(ctx context.Context, id string) (*Tour, error) {
	env, err := c.do(ctx, http.MethodGet, "/tours/"+url.PathEscape(id), nil, ErrTourNotFound)
	if err != nil {
		return nil, err
	}
	return decodeTour(env.Data)
}

// CreateTour создает тур из нормализованного payload
func (c *Client) CreateTour(ctx context.Context, payload *TourPayload) (*Tour, error) {
	env, err := c.do(ctx, http.MethodPost, "/tours", payload, ErrTourNotFound)
	if err != nil {
		return nil, err
	}
	return decodeTour(env.Data)
}

// UpdateTour обновляет тур по ID
func (c *Client) UpdateTour(ctx context.Context, id string, payload *TourPayload) (*Tour, error) {
	env, err := c.do(ctx, http.MethodPut, "/tours/"+url.PathEscape(id), payload, ErrTourNotFound)
	if err != nil {
		return nil, err
	}
	return decodeTour(env.Data)
}

// DeleteTour удаляет тур по ID
func (c *Client) DeleteTour(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/tours/"+url.PathEscape(id), nil, ErrTourNotFound)
	return err
}

// ListBookings получает страницу списка бронирований
func (c *Client) ListBookings(ctx context.Context, filter BookingsFilter) (*BookingsPage, error) {
	env, err := c.do(ctx, http.MethodGet, "/bookings"+encodeBookingsFilter(filter), nil, ErrBookingNotFound)
	if err != nil {
		return nil, err
	}

	page := &BookingsPage{
		Bookings:   []Booking{},
		Pagination: Pagination{Page: 1, Limit: 20},
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &page.Bookings); err != nil {
			return nil, fmt.Errorf("%w: failed to decode bookings list: %v", ErrInvalidResponse, err)
		}
	}
	if env.Pagination != nil {
		page.Pagination = *env.Pagination
	}
	return page, nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, id string) (*Booking, error) {
	env, err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, ErrBookingNotFound)
	if err != nil {
		return nil, err
	}
	return decodeBooking(env.Data)
}

// VerifyPayment подтверждает оплату бронирования
// Возвращает обновлённое бронирование
func (c *Client) VerifyPayment(ctx context.Context, bookingID string, payload VerifyPaymentPayload) (*Booking, error) {
	env, err := c.do(ctx, http.MethodPost, "/payments/verify/"+url.PathEscape(bookingID), payload, ErrBookingNotFound)
	if err != nil {
		return nil, err
	}
	return decodeBooking(env.Data)
}

// do выполняет запрос и разбирает envelope
// notFound — sentinel, возвращаемый на HTTP 404
func (c *Client) do(ctx context.Context, method, path string, body interface{}, notFound error) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, notFound
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode envelope (status %d): %v",
			ErrInvalidResponse, resp.StatusCode, err)
	}

	// success=false — бэкенд отклонил запрос, data недостоверна
	if !env.Success {
		rejected := &RejectedError{Message: env.Message}
		if env.Error != nil {
			if rejected.Message == "" {
				rejected.Message = env.Error.Message
			}
			rejected.Details = env.Error.Details
		}
		c.log.Warn("Backend rejected %s %s: %s", method, path, rejected.Message)
		return nil, rejected
	}

	return &env, nil
}

func decodeTour(data json.RawMessage) (*Tour, error) {
	var tour Tour
	if err := json.Unmarshal(data, &tour); err != nil {
		return nil, fmt.Errorf("%w: failed to decode tour: %v", ErrInvalidResponse, err)
	}
	return &tour, nil
}

func decodeBooking(data json.RawMessage) (*Booking, error) {
	var booking Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", ErrInvalidResponse, err)
	}
	return &booking, nil
}

func encodeToursFilter(f ToursFilter) string {
	q := url.Values{}
	if f.Category != nil {
		q.Set("category", *f.Category)
	}
	if f.Search != nil {
		q.Set("search", *f.Search)
	}
	if f.MinPrice != nil {
		q.Set("minPrice", strconv.FormatInt(*f.MinPrice, 10))
	}
	if f.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatInt(*f.MaxPrice, 10))
	}
	if f.StartDate != nil {
		q.Set("startDate", *f.StartDate)
	}
	if f.EndDate != nil {
		q.Set("endDate", *f.EndDate)
	}
	if f.Page != nil {
		q.Set("page", strconv.Itoa(*f.Page))
	}
	if f.Limit != nil {
		q.Set("limit", strconv.Itoa(*f.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func encodeBookingsFilter(f BookingsFilter) string {
	q := url.Values{}
	if f.Status != nil {
		q.Set("status", *f.Status)
	}
	if f.PaymentStatus != nil {
		q.Set("paymentStatus", *f.PaymentStatus)
	}
	if f.Search != nil {
		q.Set("search", *f.Search)
	}
	if f.Page != nil {
		q.Set("page", strconv.Itoa(*f.Page))
	}
	if f.Limit != nil {
		q.Set("limit", strconv.Itoa(*f.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
