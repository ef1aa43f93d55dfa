package bootstrap

import (
	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
	barUc "github.com/muhammadchandra19/stock-data/internal/usecase/bar"
	"github.com/muhammadchandra19/stock-data/internal/usecase/generator"
	"github.com/muhammadchandra19/stock-data/pkg/config"
)

// Usecase is the usecase set of the stock-data processes.
type Usecase struct {
	BarUsecase barDomain.Usecase
	Generator  *generator.Generator
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	if b.Connector != nil {
		b.Usecase.BarUsecase = barUc.NewUsecase(b.Connector, b.Logger)
	}
	if b.Repository.BarRepository != nil {
		b.Usecase.Generator = generator.New(b.Repository.BarRepository, GeneratorOptions(b.Config), b.Logger)
	}
}

// GeneratorOptions maps configuration onto generator options.
func GeneratorOptions(cfg *config.Config) *generator.Options {
	if cfg == nil {
		return generator.DefaultOptions()
	}
	g := cfg.Generator
	return &generator.Options{
		Symbols:         g.Symbols,
		UpdateInterval:  g.UpdateInterval,
		HistoricalDays:  g.HistoricalDays,
		HistoricalStart: g.HistoricalStart.Time,
		RealtimeStart:   g.RealtimeStart.Time,
		ClampRange:      g.ClampRange,
	}
}
