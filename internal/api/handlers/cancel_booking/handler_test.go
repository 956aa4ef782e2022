package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rockm4n/GymMate/internal/api/middleware"
	cancelBooking "github.com/rockm4n/GymMate/internal/usecase/cancel_booking"
)

type fakeUseCase struct {
	err error
	got *cancelBooking.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req *cancelBooking.Request) error {
	u.got = req
	return u.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, useCase *fakeUseCase, userID uuid.UUID, bookingID string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(useCase, nopLogger{}).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/"+bookingID, nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	useCase := &fakeUseCase{}
	userID := uuid.New()
	bookingID := uuid.New()

	rec := doRequest(t, useCase, userID, bookingID.String())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, useCase.got)
	assert.Equal(t, userID, useCase.got.UserID)
	assert.Equal(t, bookingID, useCase.got.BookingID)
}

func TestHandle_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", cancelBooking.ErrBookingNotFound, http.StatusNotFound},
		{"not owner", cancelBooking.ErrUnauthorized, http.StatusForbidden},
		{"too late", cancelBooking.ErrTooLateToCancel, http.StatusConflict},
		{"invalid input", cancelBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tc.err}, uuid.New(), uuid.New().String())
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestHandle_MalformedBookingID(t *testing.T) {
	useCase := &fakeUseCase{}

	rec := doRequest(t, useCase, uuid.New(), "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, useCase.got)
}
