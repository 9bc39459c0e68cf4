package verify_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TMS-AdminService/internal/api/handlers"
	"github.com/m04kA/TMS-AdminService/internal/api/middleware"
	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
	verifyPayment "github.com/m04kA/TMS-AdminService/internal/usecase/verify_payment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgConfirmationRequired = "требуется подтверждение суммы и счёта получателя"
	msgInvalidInput         = "некорректные данные для верификации оплаты"
)

type Handler struct {
	useCase VerifyPaymentUseCase
	logger  Logger
}

func NewHandler(useCase VerifyPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/verify-payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/verify-payment - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/verify-payment - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/verify-payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, userID))
	if err != nil {
		var rejected *tourbackend.RejectedError
		switch {
		case errors.As(err, &rejected):
			h.logger.Warn("POST /bookings/{id}/verify-payment - Backend rejected: booking_id=%s, message=%s",
				bookingID, rejected.Message)
			handlers.RespondError(w, http.StatusUnprocessableEntity, rejected.Message)

		case errors.Is(err, verifyPayment.ErrConfirmationRequired):
			h.logger.Warn("POST /bookings/{id}/verify-payment - Confirmations missing: booking_id=%s, user_id=%d",
				bookingID, userID)
			handlers.RespondBadRequest(w, msgConfirmationRequired)

		case errors.Is(err, verifyPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/verify-payment - Invalid input: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, verifyPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/verify-payment - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /bookings/{id}/verify-payment - Failed to verify payment: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/verify-payment - Payment verified: booking_id=%s, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, result.Booking)
}
