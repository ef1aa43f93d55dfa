package bar

import (
	"time"
)

// DateLayout is the calendar date format used on the wire and in logs.
const DateLayout = "2006-01-02"

// DailyBar is one symbol's open/high/low/close/volume summary for a calendar day.
// (Symbol, Date) identifies a bar.
type DailyBar struct {
	Symbol string
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Key identifies a DailyBar.
type Key struct {
	Symbol string
	Date   string
}

// Key returns the identity of the bar.
func (b *DailyBar) Key() Key {
	return Key{Symbol: b.Symbol, Date: b.Date.Format(DateLayout)}
}

// Tick is a single synthetic price sample.
type Tick struct {
	Symbol    string
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
