package bar

import "context"

//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock

// LatestLimit is the maximum number of bars returned for a symbol.
const LatestLimit = 30

// Usecase is the interface for the daily bar read usecase.
type Usecase interface {
	// LatestBars returns up to LatestLimit bars for symbol, newest first.
	LatestBars(ctx context.Context, symbol string) ([]*DailyBar, error)
	// Health reports whether storage is reachable.
	Health(ctx context.Context) (*HealthReport, error)
}

// HealthReport describes storage reachability.
type HealthReport struct {
	Healthy bool   `json:"healthy"`
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}
