package postgresql

import (
	"context"
	"fmt"
	"time"
)

const (
	// StatusHealthy is reported when the database answered both probes.
	StatusHealthy = "healthy"
	// StatusUnhealthy is reported when any probe failed.
	StatusUnhealthy = "unhealthy"
)

// HealthCheck represents database health information
type HealthCheck struct {
	Status       string        `json:"status"`
	ResponseTime time.Duration `json:"response_time"`
	DatabaseName string        `json:"database_name"`
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	Error        string        `json:"error,omitempty"`
	Version      string        `json:"version,omitempty"`
}

// CheckHealth pings the database and reads its server version.
func CheckHealth(ctx context.Context, db PostgreSQLClient) *HealthCheck {
	start := time.Now()

	health := &HealthCheck{
		DatabaseName: db.DatabaseName(),
		Host:         db.Host(),
		Port:         db.Port(),
	}

	if err := db.Ping(ctx); err != nil {
		health.Status = StatusUnhealthy
		health.Error = fmt.Sprintf("ping failed: %v", err)
		health.ResponseTime = time.Since(start)
		return health
	}

	var version string
	if err := db.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		health.Status = StatusUnhealthy
		health.Error = fmt.Sprintf("version query failed: %v", err)
		health.ResponseTime = time.Since(start)
		return health
	}

	health.Version = version
	health.Status = StatusHealthy
	health.ResponseTime = time.Since(start)

	return health
}

// IsHealthy reports whether the health check passed.
func (h *HealthCheck) IsHealthy() bool {
	return h.Status == StatusHealthy
}
