package booking

import (
	"strconv"

	"github.com/shopspring/decimal"

	"main/internal/product"
	"main/internal/soa"
)

// PV01 is the dollar risk of a product position for a one-basis-point
// yield move.
type PV01 struct {
	Product  product.Bond
	Value    decimal.Decimal
	Quantity int64
}

// Strings projects the risk for historical output.
func (r PV01) Strings() []string {
	return []string{
		r.Product.ProductID(),
		r.Value.String(),
		strconv.FormatInt(r.Quantity, 10),
	}
}

// BucketedRisk is the summed risk of a named product bucket.
type BucketedRisk struct {
	Bucket product.Bucket
	Value  decimal.Decimal
}

var _ soa.Service[string, PV01] = (*RiskService)(nil)

// RiskService maintains per-product PV01 and per-bucket roll-ups.
type RiskService struct {
	soa.Store[string, PV01]
	buckets map[product.Bucket][]string
	rollup  map[product.Bucket]decimal.Decimal
}

// NewRiskService creates a risk service over the given bucket
// partition. A nil partition uses the default sectors.
func NewRiskService(buckets map[product.Bucket][]string) *RiskService {
	if buckets == nil {
		buckets = product.DefaultBuckets()
	}
	return &RiskService{
		Store:   soa.NewStore[string, PV01](),
		buckets: buckets,
		rollup:  make(map[product.Bucket]decimal.Decimal, len(buckets)),
	}
}

// GetData returns the current risk for a product.
func (s *RiskService) GetData(productID string) PV01 {
	return s.Get(productID)
}

// OnMessage stores the risk, refreshes bucket roll-ups, and dispatches
// an add event.
func (s *RiskService) OnMessage(r PV01) {
	id := r.Product.ProductID()
	s.Put(id, r)
	for bucket, members := range s.buckets {
		for _, member := range members {
			if member == id {
				s.rollup[bucket] = s.sumBucket(members)
				break
			}
		}
	}
	s.DispatchAdd(r)
}

// AddPosition recomputes the product's PV01 from its aggregate
// position.
func (s *RiskService) AddPosition(p Position) {
	id := p.Product.ProductID()
	aggregate := p.Aggregate()
	abs := aggregate
	if abs < 0 {
		abs = -abs
	}

	s.OnMessage(PV01{
		Product:  p.Product,
		Value:    product.PV01(id).Mul(decimal.NewFromInt(abs)),
		Quantity: aggregate,
	})
}

// GetBucketedRisk returns the summed risk over a bucket's members.
func (s *RiskService) GetBucketedRisk(bucket product.Bucket) BucketedRisk {
	return BucketedRisk{Bucket: bucket, Value: s.rollup[bucket]}
}

func (s *RiskService) sumBucket(members []string) decimal.Decimal {
	sum := decimal.Zero
	for _, member := range members {
		if r, ok := s.Lookup(member); ok {
			sum = sum.Add(r.Value)
		}
	}
	return sum
}

// PositionListener feeds position updates into the risk service.
type PositionListener struct {
	service *RiskService
}

// NewPositionListener creates the position-to-risk binding.
func NewPositionListener(service *RiskService) *PositionListener {
	return &PositionListener{service: service}
}

func (l *PositionListener) ProcessAdd(p Position)  { l.service.AddPosition(p) }
func (l *PositionListener) ProcessUpdate(Position) {}
func (l *PositionListener) ProcessRemove(Position) {}
