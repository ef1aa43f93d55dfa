package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	barMock "github.com/muhammadchandra19/stock-data/internal/domain/bar/mock"
	"github.com/muhammadchandra19/stock-data/pkg/logger"
	logger_mock "github.com/muhammadchandra19/stock-data/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBarHandler_LatestBars_LogsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := barMock.NewMockUsecase(ctrl)
	log := logger_mock.NewMockInterface(ctrl)

	readErr := errors.New("connection refused")
	uc.EXPECT().LatestBars(gomock.Any(), "AAPL").Return(nil, readErr)
	log.EXPECT().ErrorContext(gomock.Any(), readErr, logger.NewField("symbol", "AAPL"))

	req := httptest.NewRequest(http.MethodGet, "/api/stock_data/AAPL", nil)
	req.SetPathValue("symbol", "AAPL")
	rec := httptest.NewRecorder()

	NewBarHandler(uc, log).LatestBars(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"connection refused"}`, rec.Body.String())
}

func TestBarHandler_LatestBars_SuccessDoesNotLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := barMock.NewMockUsecase(ctrl)
	log := logger_mock.NewMockInterface(ctrl)

	uc.EXPECT().LatestBars(gomock.Any(), "GOOGL").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stock_data/GOOGL", nil)
	req.SetPathValue("symbol", "GOOGL")
	rec := httptest.NewRecorder()

	NewBarHandler(uc, log).LatestBars(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
