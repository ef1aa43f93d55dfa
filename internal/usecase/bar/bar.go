package bar

import (
	"context"

	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
	barInfra "github.com/muhammadchandra19/stock-data/internal/infrastructure/postgresql/bar"
	"github.com/muhammadchandra19/stock-data/pkg/errors"
	"github.com/muhammadchandra19/stock-data/pkg/logger"
	"github.com/muhammadchandra19/stock-data/pkg/postgresql"
)

// Usecase is the read usecase for daily bars. Every call opens its own
// storage connection and closes it before returning.
type Usecase struct {
	connector postgresql.Connector
	logger    logger.Interface
}

// NewUsecase creates a new bar usecase.
func NewUsecase(connector postgresql.Connector, log logger.Interface) *Usecase {
	return &Usecase{
		connector: connector,
		logger:    log,
	}
}

// LatestBars returns up to barDomain.LatestLimit bars for symbol, newest first.
// An unknown symbol yields an empty slice.
func (u *Usecase) LatestBars(ctx context.Context, symbol string) ([]*barDomain.DailyBar, error) {
	db, err := u.connector.Connect(ctx)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer u.close(ctx, db)

	bars, err := barInfra.NewRepository(db, u.logger).Latest(ctx, symbol, barDomain.LatestLimit)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return bars, nil
}

// Health connects once and reports storage reachability.
func (u *Usecase) Health(ctx context.Context) (*barDomain.HealthReport, error) {
	db, err := u.connector.Connect(ctx)
	if err != nil {
		return &barDomain.HealthReport{
			Status: postgresql.StatusUnhealthy,
			Error:  err.Error(),
		}, errors.TracerFromError(err)
	}
	defer u.close(ctx, db)

	check := postgresql.CheckHealth(ctx, db)
	report := &barDomain.HealthReport{
		Healthy: check.IsHealthy(),
		Status:  check.Status,
		Version: check.Version,
		Error:   check.Error,
	}
	if !report.Healthy {
		return report, errors.NewTracer(check.Error)
	}
	return report, nil
}

func (u *Usecase) close(ctx context.Context, db postgresql.PostgreSQLClient) {
	if err := db.Close(ctx); err != nil {
		u.logger.ErrorContext(ctx, errors.Wrapf(err, "close connection"))
	}
}
