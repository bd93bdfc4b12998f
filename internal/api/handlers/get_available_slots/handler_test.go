package get_available_slots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-ConsultBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ConsultBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*getAvailableSlots.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots?"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{ServiceID: "consult-30", Date: "2024-11-25"}).
		Return(&getAvailableSlots.Response{
			Date:      "2024-11-25",
			ServiceID: "consult-30",
			TimeZone:  "Europe/Moscow",
			Slots: []time.Time{
				time.Date(2024, 11, 25, 10, 0, 0, 0, msk),
				time.Date(2024, 11, 25, 10, 30, 0, 0, msk),
			},
		}, nil)

	rec := doRequest(NewHandler(uc, logger.NewNop()), "serviceId=consult-30&date=2024-11-25")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Europe/Moscow", resp.TimeZone)
	assert.Equal(t, []string{
		"2024-11-25T10:00:00.000+03:00",
		"2024-11-25T10:30:00.000+03:00",
	}, resp.Slots)
	uc.AssertExpectations(t)
}

func TestHandle_EmptySlotsIsArray(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(&getAvailableSlots.Response{Date: "2024-11-23", ServiceID: "consult-30", TimeZone: "Europe/Moscow"}, nil)

	rec := doRequest(NewHandler(uc, logger.NewNop()), "serviceId=consult-30&date=2024-11-23")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing params", getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"bad date", getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{"unknown service", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"gateway", getAvailableSlots.ErrGateway, http.StatusBadGateway},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(NewHandler(uc, logger.NewNop()), "serviceId=x&date=y")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
