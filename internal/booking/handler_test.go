package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) GetAvailability(ctx context.Context, fromStr, toStr string) ([]AvailabilityDay, error) {
	args := m.Called(ctx, fromStr, toStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]AvailabilityDay), args.Error(1)
}

func (m *MockService) CreateBooking(ctx context.Context, req CreateBookingRequest, outline *multipart.FileHeader) (*Booking, error) {
	args := m.Called(ctx, req, outline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockService) GetBooking(ctx context.Context, id int) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc)
	router.GET("/availability", h.GetAvailability)
	router.POST("/book", h.CreateBooking)
	router.GET("/bookings/:id", h.GetBooking)
	return router
}

func bookForm(t *testing.T, data string, withOutline bool) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if data != "" {
		require.NoError(t, writer.WriteField("data", data))
	}
	if withOutline {
		part, err := writer.CreateFormFile("outline", "outline.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("outline"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestGetAvailabilityHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	days := []AvailabilityDay{
		{Date: "2024-03-09", Booked: false},
		{Date: "2024-03-10", Booked: true},
	}
	svc.On("GetAvailability", mock.Anything, "2024-03-09", "2024-03-10").Return(days, nil)

	req := httptest.NewRequest("GET", "/availability?from=2024-03-09&to=2024-03-10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []AvailabilityDay
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, days, got)
}

func TestGetAvailabilityHandlerMissingParams(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	req := httptest.NewRequest("GET", "/availability?from=2024-03-09", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing from/to params")
	svc.AssertNotCalled(t, "GetAvailability")
}

func TestGetAvailabilityHandlerInvalidDate(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("GetAvailability", mock.Anything, "bogus", "2024-03-10").Return(nil, ErrInvalidDate)

	req := httptest.NewRequest("GET", "/availability?from=bogus&to=2024-03-10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	data := `{"startDate":"2024-04-01","endDate":"2024-04-02","technology":"Go","clientName":"Acme Corp","mode":"remote","costPerDay":750}`
	svc.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req CreateBookingRequest) bool {
		return req.StartDate == "2024-04-01" && req.ClientName == "Acme Corp"
	}), mock.Anything).Return(&Booking{ID: 1, Technology: "Go"}, nil)

	body, contentType := bookForm(t, data, true)
	req := httptest.NewRequest("POST", "/book", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Booking created")
}

func TestCreateBookingHandlerConflict(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	data := `{"startDate":"2024-03-11","endDate":"2024-03-15","technology":"Go","clientName":"Acme Corp","mode":"remote","costPerDay":750}`
	svc.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).Return(nil, ErrDateConflict)

	body, contentType := bookForm(t, data, false)
	req := httptest.NewRequest("POST", "/book", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Dates already booked")
}

func TestCreateBookingHandlerMissingData(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	body, contentType := bookForm(t, "", false)
	req := httptest.NewRequest("POST", "/book", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateBooking")
}

func TestCreateBookingHandlerMalformedJSON(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	body, contentType := bookForm(t, `{"startDate": "2024-04-01"`, false)
	req := httptest.NewRequest("POST", "/book", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateBooking")
}

func TestCreateBookingHandlerValidation(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	// clientName missing, costPerDay negative
	data := `{"startDate":"2024-04-01","endDate":"2024-04-02","technology":"Go","mode":"remote","costPerDay":-5}`
	body, contentType := bookForm(t, data, false)
	req := httptest.NewRequest("POST", "/book", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ClientName")
	assert.Contains(t, w.Body.String(), "CostPerDay")
	svc.AssertNotCalled(t, "CreateBooking")
}

func TestGetBookingHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("GetBooking", mock.Anything, 7).Return(&Booking{ID: 7, Technology: "Go", ClientName: "Acme Corp"}, nil)

	req := httptest.NewRequest("GET", "/bookings/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Acme Corp", got.ClientName)
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("GetBooking", mock.Anything, 99).Return(nil, ErrBookingNotFound)

	req := httptest.NewRequest("GET", "/bookings/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Booking not found")
}

func TestGetBookingHandlerInvalidID(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	req := httptest.NewRequest("GET", "/bookings/seven", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetBooking")
}

func TestCreateBookingHandlerInvalidRange(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	data := `{"startDate":"2024-04-05","endDate":"2024-04-02","technology":"Go","clientName":"Acme Corp","mode":"remote","costPerDay":750}`
	svc.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).Return(nil, ErrInvalidDateRange)

	body, contentType := bookForm(t, data, false)
	req := httptest.NewRequest("POST", "/book", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
