package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/ledger"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDispatchService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDispatchService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		NearestHospitalLimit: 5,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func float64Ptr(v float64) *float64 { return &v }

func validDispatchRequest() DispatchRequest {
	return DispatchRequest{
		RequestID:     "req-1",
		UserID:        "user-1",
		UserLocation:  LocationRequest{Latitude: float64Ptr(40.7128), Longitude: float64Ptr(-74.0060)},
		EmergencyType: "cardiac",
	}
}

func TestDispatch_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := validDispatchRequest()
	expected := &models.EmergencyResponse{
		RequestID:            "req-1",
		HospitalID:           "h1",
		HospitalName:         "City General",
		AmbulanceID:          "a1",
		EstimatedArrivalTime: 10,
		Distance:             5.2,
		Status:               models.RequestAssigned,
		Timestamp:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		BlockchainTxID:       "anchor-1",
	}

	mockService.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.EmergencyRequest) (*models.EmergencyResponse, error) {
			assert.Equal(t, "req-1", req.RequestID)
			assert.Equal(t, "user-1", req.UserID)
			assert.Equal(t, 40.7128, req.UserLocation.Latitude)
			assert.Equal(t, -74.0060, req.UserLocation.Longitude)
			assert.Equal(t, models.RequestRequested, req.Status)
			return expected, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/emergencies/dispatch", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.EmergencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, *expected, resp)
}

func TestDispatch_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/emergencies/dispatch", bytes.NewBufferString(`{"user_id": "u"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestDispatch_ValidationError(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(r *DispatchRequest)
		wantMsg string
	}{
		{
			name:    "нет user_id",
			mutate:  func(r *DispatchRequest) { r.UserID = "" },
			wantMsg: "Error:Field validation for 'UserID' failed on the 'required' tag",
		},
		{
			name:    "нет координат",
			mutate:  func(r *DispatchRequest) { r.UserLocation = LocationRequest{} },
			wantMsg: "Error:Field validation for 'Latitude' failed on the 'required' tag",
		},
		{
			name:    "широта вне диапазона",
			mutate:  func(r *DispatchRequest) { r.UserLocation.Latitude = float64Ptr(91) },
			wantMsg: "Error:Field validation for 'Latitude' failed on the 'latitude' tag",
		},
		{
			name:    "нет типа вызова",
			mutate:  func(r *DispatchRequest) { r.EmergencyType = "" },
			wantMsg: "Error:Field validation for 'EmergencyType' failed on the 'required' tag",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

			reqBody := validDispatchRequest()
			tc.mutate(&reqBody)
			bodyBytes, _ := json.Marshal(reqBody)
			w := makeRequest(router, "POST", "/api/v1/emergencies/dispatch", bytes.NewBuffer(bodyBytes))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantMsg)
		})
	}
}

func TestDispatch_ServiceErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"нет больниц", models.ErrNoHospitalsFound, http.StatusNotFound, codeNoHospitalsFound},
		{"нет свободных машин", models.ErrNoAvailableAmbulance, http.StatusNotFound, codeNoAvailableAmbulance},
		{"конфликт назначения", models.ErrAmbulanceConflict, http.StatusConflict, codeAmbulanceConflict},
		{"реестр недоступен", ledger.ErrLedgerUnavailable, http.StatusServiceUnavailable, codeLedgerUnavailable},
		{"реестр отклонил запись", ledger.ErrLedgerRejected, http.StatusBadGateway, codeLedgerRejected},
		{"ошибка записи в хранилище", models.ErrStoreWriteFailed, http.StatusInternalServerError, codeStoreWriteFailed},
		{"неизвестная ошибка", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().
				Dispatch(gomock.Any(), gomock.Any()).
				Return(nil, fmt.Errorf("service: wrapped: %w", tc.err)).
				Times(1)

			bodyBytes, _ := json.Marshal(validDispatchRequest())
			w := makeRequest(router, "POST", "/api/v1/emergencies/dispatch", bytes.NewBuffer(bodyBytes))

			assert.Equal(t, tc.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGetResponse_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := &models.EmergencyResponse{RequestID: "req-1", AmbulanceID: "a1", Status: models.RequestAssigned}

	mockService.EXPECT().GetResponse(gomock.Any(), "req-1").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/req-1/response", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a1", resp.AmbulanceID)
}

func TestGetResponse_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetResponse(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("emergency response missing: %w", models.ErrRecordNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/missing/response", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNearestHospitals_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := []models.HospitalWithDistance{
		{Hospital: &models.Hospital{HospitalID: "h1", Name: "Near"}, Distance: 1.5},
	}

	mockService.EXPECT().
		NearestHospitals(gomock.Any(), models.Location{Latitude: 40.7, Longitude: -74}, 5).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitals/nearest?latitude=40.7&longitude=-74", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.HospitalWithDistance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "h1", resp[0].Hospital.HospitalID)
}

func TestNearestHospitals_CustomLimit(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		NearestHospitals(gomock.Any(), gomock.Any(), 2).
		Return([]models.HospitalWithDistance{}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitals/nearest?latitude=0&longitude=0&limit=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNearestHospitals_InvalidQuery(t *testing.T) {
	testCases := []struct {
		name  string
		query string
	}{
		{"нет координат", ""},
		{"не число", "?latitude=abc&longitude=1"},
		{"широта вне диапазона", "?latitude=95&longitude=1"},
		{"долгота вне диапазона", "?latitude=1&longitude=181"},
		{"некорректный лимит", "?latitude=1&longitude=1&limit=0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().NearestHospitals(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "GET", "/api/v1/hospitals/nearest"+tc.query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAvailableAmbulances_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := []*models.Ambulance{
		{AmbulanceID: "a1", HospitalID: "h1", CurrentStatus: models.AmbulanceAvailable},
	}

	mockService.EXPECT().AvailableAmbulances(gomock.Any(), "h1").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitals/h1/ambulances/available", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Ambulance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "a1", resp[0].AmbulanceID)
}

func TestRegisterHospital_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := RegisterHospitalRequest{
		Name: "City General",
		Location: HospitalLocationRequest{
			Latitude:  float64Ptr(40.7),
			Longitude: float64Ptr(-74),
			City:      "New York",
		},
		Contact:           ContactRequest{Email: "er@city.example"},
		EmergencyCapacity: 10,
	}

	mockService.EXPECT().
		RegisterHospital(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *models.Hospital) (string, error) {
			assert.Equal(t, "City General", h.Name)
			assert.Equal(t, 40.7, h.Location.Latitude)
			assert.Equal(t, "New York", h.Location.City)
			h.HospitalID = "h-generated" // сервис присваивает идентификатор
			return "anchor-1", nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hospitals", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, RegistrationResponse{ID: "h-generated", BlockID: "anchor-1"}, resp)
}

func TestRegisterHospital_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := RegisterHospitalRequest{ // Отсутствуют координаты
		Name: "City General",
	}

	mockService.EXPECT().RegisterHospital(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hospitals", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'required' tag")
}

func TestRegisterHospital_LedgerUnavailable(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := RegisterHospitalRequest{
		Name:     "City General",
		Location: HospitalLocationRequest{Latitude: float64Ptr(1), Longitude: float64Ptr(1)},
	}

	mockService.EXPECT().
		RegisterHospital(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("service: could not anchor hospital: %w", ledger.ErrLedgerUnavailable)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/hospitals", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestListHospitals_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expected := []*models.Hospital{{HospitalID: "h1"}, {HospitalID: "h2"}}

	mockService.EXPECT().ListHospitals(gomock.Any()).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/hospitals", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Hospital
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestRegisterAmbulance_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := RegisterAmbulanceRequest{
		AmbulanceID:        "a1",
		HospitalID:         "h1",
		RegistrationNumber: "AMB-001",
		CurrentLocation:    &LocationRequest{Latitude: float64Ptr(40), Longitude: float64Ptr(-73)},
	}

	mockService.EXPECT().
		RegisterAmbulance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Ambulance) (string, error) {
			assert.Equal(t, "h1", a.HospitalID)
			require.NotNil(t, a.CurrentLocation)
			assert.Equal(t, 40.0, a.CurrentLocation.Latitude)
			return "anchor-2", nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/ambulances", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, RegistrationResponse{ID: "a1", BlockID: "anchor-2"}, resp)
}

func TestRegisterAmbulance_InvalidStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := RegisterAmbulanceRequest{
		HospitalID:         "h1",
		RegistrationNumber: "AMB-001",
		CurrentStatus:      "Parked",
	}

	mockService.EXPECT().RegisterAmbulance(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/ambulances", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'oneof' tag")
}

func TestAnchorRecord_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		AnchorRecord(gomock.Any(), ledger.TagEmergencyResponse, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload []byte) (string, error) {
			assert.JSONEq(t, `{"request_id":"req-1"}`, string(payload))
			return "anchor-3", nil
		}).Times(1)

	body := fmt.Sprintf(`{"tag":%q,"payload":{"request_id":"req-1"}}`, ledger.TagEmergencyResponse)
	w := makeRequest(router, "POST", "/api/v1/ledger/blocks", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AnchorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "anchor-3", resp.AnchorID)
}

func TestAnchorRecord_Rejected(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		AnchorRecord(gomock.Any(), "TAG", gomock.Any()).
		Return("", fmt.Errorf("service: could not anchor record: %w", ledger.ErrLedgerRejected)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/ledger/blocks", bytes.NewBufferString(`{"tag":"TAG","payload":{}}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), codeLedgerRejected)
}

func TestAnchorRecord_MissingTag(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AnchorRecord(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/ledger/blocks", bytes.NewBufferString(`{"payload":{}}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLedgerBlock(t *testing.T) {
	t.Run("найден", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		block := &ledger.Block{Index: 1, Tag: ledger.TagEmergencyResponse, Payload: json.RawMessage(`{}`), Hash: "abc"}
		mockService.EXPECT().GetLedgerBlock(gomock.Any(), "abc").Return(block, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/ledger/blocks/abc", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ledger.Block
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "abc", resp.Hash)
	})

	t.Run("не найден", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().
			GetLedgerBlock(gomock.Any(), "nope").
			Return(nil, fmt.Errorf("service: could not fetch block: %w", ledger.ErrBlockNotFound)).
			Times(1)

		w := makeRequest(router, "GET", "/api/v1/ledger/blocks/nope", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подготовка: два запроса без пополнения
	limiter := NewIPRateLimiter(ctx, rate.Limit(0), 2)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(limiter))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Действие и проверки
	assert.Equal(t, http.StatusOK, makeRequest(router, "GET", "/ping", nil).Code)
	assert.Equal(t, http.StatusOK, makeRequest(router, "GET", "/ping", nil).Code)
	w := makeRequest(router, "GET", "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too many requests")
}

func TestIPRateLimiter_SeparateClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	limiter := NewIPRateLimiter(ctx, rate.Limit(0), 1)

	assert.Same(t, limiter.GetLimiter("10.0.0.1"), limiter.GetLimiter("10.0.0.1"))
	assert.True(t, limiter.GetLimiter("10.0.0.1").Allow())
	assert.False(t, limiter.GetLimiter("10.0.0.1").Allow())
	assert.True(t, limiter.GetLimiter("10.0.0.2").Allow(), "у другого IP свой лимит")
}
