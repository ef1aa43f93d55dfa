package generator

import (
	"math/rand/v2"
	"time"

	"github.com/cespare/xxhash/v2"
	barDomain "github.com/muhammadchandra19/stock-data/internal/domain/bar"
)

// seedStream is the second PCG word; the first comes from the (symbol, day) hash.
const seedStream = 0x9e3779b97f4a7c15

// Synthesize returns the deterministic synthetic tick for symbol on day.
// The same (symbol, day) always yields the same tick.
//
// high >= open and low <= open always hold. high and low are only widened to
// cover close when clampRange is set.
func Synthesize(symbol string, day time.Time, clampRange bool) barDomain.Tick {
	day = barDomain.Day(day)
	rng := newRand(symbol, day)

	base := 100 + uniform(rng, 50, 200)
	price := base * (1 + rng.NormFloat64()*0.02)
	volume := int64(uniform(rng, 10000, 100000))
	high := price * (1 + uniform(rng, 0, 0.01))
	low := price * (1 - uniform(rng, 0, 0.01))
	closePrice := price * (1 + rng.NormFloat64()*0.005)

	if clampRange {
		high = max(high, closePrice)
		low = min(low, closePrice)
	}

	return barDomain.Tick{
		Symbol:    symbol,
		Timestamp: day,
		Open:      price,
		High:      high,
		Low:       low,
		Close:     closePrice,
		Volume:    volume,
	}
}

func newRand(symbol string, day time.Time) *rand.Rand {
	seed := xxhash.Sum64String(symbol + "|" + day.Format(barDomain.DateLayout))
	return rand.New(rand.NewPCG(seed, seedStream))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
