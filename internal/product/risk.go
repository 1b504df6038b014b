package product

import "github.com/shopspring/decimal"

// Bucket names a sector grouping of products for risk roll-up.
type Bucket string

const (
	BucketFrontEnd Bucket = "FrontEnd"
	BucketLongEnd  Bucket = "LongEnd"
)

var pv01 = map[string]decimal.Decimal{
	"9128283H1": decimal.RequireFromString("0.01948992"),
	"9128283L2": decimal.RequireFromString("0.02865304"),
	"912828M80": decimal.RequireFromString("0.04581119"),
	"9128283J7": decimal.RequireFromString("0.06127718"),
	"9128283F5": decimal.RequireFromString("0.08161449"),
	"912810RZ3": decimal.RequireFromString("0.15013155"),
}

// PV01 returns the per-unit PV01 for a CUSIP, zero when unknown.
func PV01(cusip string) decimal.Decimal {
	return pv01[cusip]
}

// DefaultBuckets partitions the reference products into the standard
// front-end and long-end sectors.
func DefaultBuckets() map[Bucket][]string {
	return map[Bucket][]string{
		BucketFrontEnd: {"9128283H1", "9128283L2", "912828M80"},
		BucketLongEnd:  {"9128283J7", "9128283F5", "912810RZ3"},
	}
}
