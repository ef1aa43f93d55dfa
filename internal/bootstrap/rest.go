package bootstrap

import (
	"net/http"

	"github.com/muhammadchandra19/stock-data/internal/rest"
)

// Rest is the HTTP surface of the query service.
type Rest struct {
	Router http.Handler
}

// registerRest registers the HTTP router.
func (b *Bootstrap) registerRest() {
	if b.Usecase.BarUsecase == nil {
		return
	}
	var routerCfg rest.RouterConfig
	if b.Config != nil {
		routerCfg.AllowedOrigins = b.Config.API.CORSAllowedOrigins
	}
	b.Rest.Router = rest.NewRouter(b.Usecase.BarUsecase, b.Logger, routerCfg)
}
