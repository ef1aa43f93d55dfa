package rest

import (
	"context"
	"net/http"

	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
	"github.com/muhammadchandra19/stock-data/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/stock-data/pkg/logger"
	"github.com/rs/cors"
)

// RouterConfig holds options for NewRouter.
type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter wires the API endpoints and middleware.
func NewRouter(usecase barDomain.Usecase, log logger.Interface, config RouterConfig) http.Handler {
	bars := NewBarHandler(usecase, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", bars.Welcome)
	mux.HandleFunc("GET /api/stock_data/{symbol}", bars.LatestBars)

	health := healthcheck.New(func(ctx context.Context) (any, error) {
		return usecase.Health(ctx)
	})

	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	var handler http.Handler = mux
	handler = health.Handler(handler)
	handler = c.Handler(handler)
	handler = AccessLog(log)(handler)
	handler = RequestID(handler)

	return handler
}
