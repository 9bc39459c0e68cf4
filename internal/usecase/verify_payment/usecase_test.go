package verify_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TMS-AdminService/internal/integrations/tourbackend"
	"github.com/m04kA/TMS-AdminService/internal/service/remotestate"
	"github.com/m04kA/TMS-AdminService/pkg/ptr"
)

type fakeSync struct {
	calls   int
	booking *tourbackend.Booking
	err     error
}

func (f *fakeSync) VerifyPayment(_ context.Context, _ string, _ tourbackend.VerifyPaymentPayload) (*tourbackend.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedRequest() *Request {
	return &Request{
		BookingID:        "11",
		UserID:           1,
		PaidAmount:       150000,
		PaymentMethod:    ptr.Ptr("card"),
		AmountConfirmed:  true,
		AccountConfirmed: true,
	}
}

func TestExecuteSuccess(t *testing.T) {
	sync := &fakeSync{booking: &tourbackend.Booking{ID: "11", PaymentStatus: "verified"}}
	uc := NewUseCase(sync, nopLogger{})

	resp, err := uc.Execute(context.Background(), confirmedRequest())
	require.NoError(t, err)

	assert.Equal(t, "verified", resp.Booking.PaymentStatus)
	assert.Equal(t, 1, sync.calls)
}

func TestExecuteRequiresBothConfirmations(t *testing.T) {
	tests := []struct {
		name    string
		amount  bool
		account bool
	}{
		{name: "нет подтверждения суммы", amount: false, account: true},
		{name: "нет подтверждения счёта", amount: true, account: false},
		{name: "нет обоих подтверждений", amount: false, account: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync := &fakeSync{}
			uc := NewUseCase(sync, nopLogger{})

			req := confirmedRequest()
			req.AmountConfirmed = tt.amount
			req.AccountConfirmed = tt.account

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrConfirmationRequired)
			assert.Equal(t, 0, sync.calls, "без подтверждений запрос не должен уходить на бэкенд")
		})
	}
}

func TestExecutePaidAmountMustBePositive(t *testing.T) {
	sync := &fakeSync{}
	uc := NewUseCase(sync, nopLogger{})

	req := confirmedRequest()
	req.PaidAmount = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, sync.calls)
}

func TestExecuteBookingNotFound(t *testing.T) {
	sync := &fakeSync{err: remotestate.ErrBookingNotFound}
	uc := NewUseCase(sync, nopLogger{})

	_, err := uc.Execute(context.Background(), confirmedRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
