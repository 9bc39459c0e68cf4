package create_tour

import "fmt"

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	return nil
}
