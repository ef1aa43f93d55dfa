package generator

import (
	"context"
	"time"

	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
	barInfra "github.com/muhammadchandra19/stock-data/internal/infrastructure/postgresql/bar"
	"github.com/muhammadchandra19/stock-data/pkg/errors"
	"github.com/muhammadchandra19/stock-data/pkg/logger"
	"github.com/muhammadchandra19/stock-data/pkg/util"
)

// Options represents configuration options for the Generator.
type Options struct {
	Symbols         []string
	UpdateInterval  time.Duration
	HistoricalDays  int
	HistoricalStart time.Time
	RealtimeStart   time.Time
	ClampRange      bool
}

// DefaultOptions returns the default generator options.
func DefaultOptions() *Options {
	return &Options{
		Symbols:         []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA"},
		UpdateInterval:  60 * time.Second,
		HistoricalDays:  30,
		HistoricalStart: time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC),
		RealtimeStart:   time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
	}
}

// Option customizes a Generator.
type Option func(*Generator)

// WithTicker replaces the wall-clock ticker driving the real-time loop.
func WithTicker(t Ticker) Option {
	return func(g *Generator) {
		g.ticker = t
	}
}

// Generator clears the bar table, backfills a historical window and then
// writes one new simulated day per tick until its context is cancelled.
type Generator struct {
	repo    barInfra.BarRepository
	options *Options
	logger  logger.Interface
	ticker  Ticker
}

// New creates a new Generator.
func New(repo barInfra.BarRepository, options *Options, log logger.Interface, opts ...Option) *Generator {
	if options == nil {
		options = DefaultOptions()
	}
	g := &Generator{
		repo:    repo,
		options: options,
		logger:  log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run executes the startup clear, the backfill and the real-time loop.
// Failing to clear the table is fatal. Cancellation returns nil.
func (g *Generator) Run(ctx context.Context) error {
	if err := g.repo.DeleteAll(ctx); err != nil {
		return errors.Wrapf(err, "clear existing bars")
	}

	g.backfill(ctx)

	return g.realtime(ctx)
}

func (g *Generator) backfill(ctx context.Context) {
	start := barDomain.Day(g.options.HistoricalStart)
	g.logger.Info("backfilling historical bars",
		logger.NewField("from", start.Format(barDomain.DateLayout)),
		logger.NewField("days", g.options.HistoricalDays),
	)

	for i := range g.options.HistoricalDays {
		if ctx.Err() != nil {
			return
		}
		g.cycle(ctx, start.AddDate(0, 0, i))
	}
}

func (g *Generator) realtime(ctx context.Context) error {
	ticker := g.ticker
	if ticker == nil {
		ticker = NewTicker(g.options.UpdateInterval)
	}
	defer ticker.Stop()

	current := barDomain.Day(g.options.RealtimeStart)
	g.logger.Info("starting real-time updates",
		logger.NewField("from", current.Format(barDomain.DateLayout)),
		logger.NewField("interval", g.options.UpdateInterval.String()),
	)

	for ctx.Err() == nil {
		g.cycle(ctx, current)
		current = current.AddDate(0, 0, 1)

		select {
		case <-ctx.Done():
		case <-ticker.C():
		}
	}

	g.logger.Info("generator stopped", logger.NewField("next_day", current.Format(barDomain.DateLayout)))
	return nil
}

// cycle synthesizes, aggregates and upserts one day across all symbols.
// Storage failures are logged and the caller moves on.
func (g *Generator) cycle(ctx context.Context, day time.Time) {
	ctx = util.WithRequestID(ctx, "")
	log := g.logger.WithFields(logger.NewField("date", day.Format(barDomain.DateLayout)))

	ticks := make([]barDomain.Tick, 0, len(g.options.Symbols))
	for _, symbol := range g.options.Symbols {
		ticks = append(ticks, Synthesize(symbol, day, g.options.ClampRange))
	}
	bars := Aggregate(ticks)

	if err := g.repo.UpsertBatch(ctx, bars); err != nil {
		if ctx.Err() != nil {
			log.Warn("cycle interrupted, bars not saved", logger.NewField("reason", ctx.Err().Error()))
			return
		}
		log.ErrorContext(ctx, err)
		return
	}

	log.InfoContext(ctx, "bars saved", logger.NewField("count", len(bars)))
}
