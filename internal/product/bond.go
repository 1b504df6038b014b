package product

import "time"

// Bond is a U.S. Treasury instrument identified by CUSIP.
type Bond struct {
	CUSIP    string
	Ticker   string
	Coupon   float64
	Maturity time.Time
}

// ProductID returns the bond's CUSIP.
func (b Bond) ProductID() string {
	return b.CUSIP
}

var bonds = map[string]Bond{
	"9128283H1": {CUSIP: "9128283H1", Ticker: "US2Y", Coupon: 0.01750, Maturity: date(2019, 11, 30)},
	"9128283L2": {CUSIP: "9128283L2", Ticker: "US3Y", Coupon: 0.01875, Maturity: date(2020, 12, 15)},
	"912828M80": {CUSIP: "912828M80", Ticker: "US5Y", Coupon: 0.02000, Maturity: date(2022, 11, 30)},
	"9128283J7": {CUSIP: "9128283J7", Ticker: "US7Y", Coupon: 0.02125, Maturity: date(2024, 11, 30)},
	"9128283F5": {CUSIP: "9128283F5", Ticker: "US10Y", Coupon: 0.02250, Maturity: date(2027, 12, 15)},
	"912810RZ3": {CUSIP: "912810RZ3", Ticker: "US30Y", Coupon: 0.02750, Maturity: date(2047, 12, 15)},
}

var byTicker = func() map[string]string {
	m := make(map[string]string, len(bonds))
	for cusip, b := range bonds {
		m[b.Ticker] = cusip
	}
	return m
}()

// Lookup returns the reference Bond for a CUSIP. An unknown CUSIP yields
// the zero Bond and downstream proceeds.
func Lookup(cusip string) Bond {
	return bonds[cusip]
}

// CUSIPByTicker resolves a ticker like "US10Y" to its CUSIP.
func CUSIPByTicker(ticker string) (string, bool) {
	cusip, ok := byTicker[ticker]
	return cusip, ok
}

// All returns every reference bond in maturity order.
func All() []Bond {
	out := make([]Bond, 0, len(bonds))
	for _, ticker := range []string{"US2Y", "US3Y", "US5Y", "US7Y", "US10Y", "US30Y"} {
		out = append(out, bonds[byTicker[ticker]])
	}
	return out
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
