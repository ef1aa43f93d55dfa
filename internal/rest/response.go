package rest

import (
	"encoding/json"
	"net/http"

	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
)

// WelcomeMessage is returned from the root endpoint.
const WelcomeMessage = "Welcome to the Stock Data API. Use /api/stock_data/<symbol> to fetch data."

// BarResponse is the wire form of a daily bar.
type BarResponse struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// MessageResponse carries an informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries the raw message of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toBarResponses(bars []*barDomain.DailyBar) []BarResponse {
	out := make([]BarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, BarResponse{
			Date:   b.Date.Format(barDomain.DateLayout),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
