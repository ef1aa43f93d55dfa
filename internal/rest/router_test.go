package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
	barMock "github.com/muhammadchandra19/stock-data/internal/domain/bar/mock"
	"github.com/muhammadchandra19/stock-data/pkg/logger"
	"github.com/muhammadchandra19/stock-data/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (http.Handler, *barMock.MockUsecase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := barMock.NewMockUsecase(ctrl)
	return NewRouter(uc, logger.NewNopLogger(), RouterConfig{}), uc
}

func TestRouter_Welcome(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"message": "Welcome to the Stock Data API. Use /api/stock_data/<symbol> to fetch data."}`,
		rec.Body.String())
}

func TestRouter_LatestBars(t *testing.T) {
	newer := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		path       string
		mockFn     func(uc *barMock.MockUsecase)
		wantStatus int
		wantBody   string
	}{
		{
			name: "bars newest first",
			path: "/api/stock_data/AAPL",
			mockFn: func(uc *barMock.MockUsecase) {
				uc.EXPECT().LatestBars(gomock.Any(), "AAPL").Return([]*barDomain.DailyBar{
					{Symbol: "AAPL", Date: newer, Open: 181.5, High: 183, Low: 180.25, Close: 182, Volume: 55000},
					{Symbol: "AAPL", Date: older, Open: 180, High: 181, Low: 179, Close: 180.5, Volume: 42000},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `[
				{"date":"2025-05-12","open":181.5,"high":183,"low":180.25,"close":182,"volume":55000},
				{"date":"2025-05-11","open":180,"high":181,"low":179,"close":180.5,"volume":42000}
			]`,
		},
		{
			name: "unknown symbol is an empty array",
			path: "/api/stock_data/ZZZZ",
			mockFn: func(uc *barMock.MockUsecase) {
				uc.EXPECT().LatestBars(gomock.Any(), "ZZZZ").Return([]*barDomain.DailyBar{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "nil result still renders an array",
			path: "/api/stock_data/msft",
			mockFn: func(uc *barMock.MockUsecase) {
				uc.EXPECT().LatestBars(gomock.Any(), "msft").Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "storage failure",
			path: "/api/stock_data/AAPL",
			mockFn: func(uc *barMock.MockUsecase) {
				uc.EXPECT().LatestBars(gomock.Any(), "AAPL").Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"connection refused"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, uc := newTestRouter(t)
			tc.mockFn(uc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestRouter_LatestBars_DatesAreCalendarDates(t *testing.T) {
	router, uc := newTestRouter(t)
	uc.EXPECT().LatestBars(gomock.Any(), "NVDA").Return([]*barDomain.DailyBar{
		{Symbol: "NVDA", Date: time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC), Volume: 1},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stock_data/NVDA", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "2025-04-11", body[0]["date"])
	assert.Len(t, body[0], 6)
}

func TestRouter_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router, uc := newTestRouter(t)
		uc.EXPECT().Health(gomock.Any()).Return(&barDomain.HealthReport{
			Healthy: true, Status: "healthy", Version: "PostgreSQL 15.4",
		}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"healthy":true,"status":"healthy","version":"PostgreSQL 15.4"}`, rec.Body.String())
	})

	t.Run("unhealthy", func(t *testing.T) {
		router, uc := newTestRouter(t)
		uc.EXPECT().Health(gomock.Any()).Return(&barDomain.HealthReport{
			Status: "unhealthy", Error: "connection refused",
		}, errors.New("connection refused"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"healthy":false,"status":"unhealthy","error":"connection refused"}`, rec.Body.String())
	})
}

func TestRouter_RequestID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(util.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(util.RequestIDHeader))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(util.RequestIDHeader))
}

func TestRouter_CORS(t *testing.T) {
	router, uc := newTestRouter(t)
	uc.EXPECT().LatestBars(gomock.Any(), "AAPL").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stock_data/AAPL", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/other", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
