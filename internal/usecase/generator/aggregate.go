package generator

import (
	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
)

// Aggregate folds ticks into one bar per (symbol, day). Bars come back in the
// order their first tick appeared.
func Aggregate(ticks []barDomain.Tick) []*barDomain.DailyBar {
	bars := make([]*barDomain.DailyBar, 0, len(ticks))
	index := make(map[barDomain.Key]*barDomain.DailyBar, len(ticks))

	for _, t := range ticks {
		b := &barDomain.DailyBar{Symbol: t.Symbol, Date: barDomain.Day(t.Timestamp)}
		key := b.Key()

		existing, ok := index[key]
		if !ok {
			b.Open, b.High, b.Low, b.Close, b.Volume = t.Open, t.High, t.Low, t.Close, t.Volume
			index[key] = b
			bars = append(bars, b)
			continue
		}

		existing.High = max(existing.High, t.High)
		existing.Low = min(existing.Low, t.Low)
		existing.Close = t.Close
		existing.Volume += t.Volume
	}

	return bars
}
