package rest

import (
	"net/http"

	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
	"github.com/muhammadchandra19/stock-data/pkg/logger"
)

// BarHandler serves the daily bar endpoints.
type BarHandler struct {
	usecase barDomain.Usecase
	logger  logger.Interface
}

// NewBarHandler creates a new BarHandler.
func NewBarHandler(usecase barDomain.Usecase, log logger.Interface) *BarHandler {
	return &BarHandler{
		usecase: usecase,
		logger:  log,
	}
}

// Welcome handles GET /.
func (h *BarHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: WelcomeMessage})
}

// LatestBars handles GET /api/stock_data/{symbol}.
// The symbol is passed through as given; unknown symbols produce an empty array.
func (h *BarHandler) LatestBars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	symbol := r.PathValue("symbol")

	bars, err := h.usecase.LatestBars(ctx, symbol)
	if err != nil {
		h.logger.ErrorContext(ctx, err, logger.NewField("symbol", symbol))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, toBarResponses(bars))
}
