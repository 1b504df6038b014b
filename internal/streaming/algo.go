package streaming

import (
	"main/internal/marketdata"
	"main/internal/pricing"
	"main/internal/soa"
)

// Visible size tiers the algo alternates between. Hidden is always
// twice the visible size.
var defaultTiers = [2]int64{1_000_000, 2_000_000}

var (
	_ soa.Service[string, PriceStream]   = (*AlgoService)(nil)
	_ soa.ServiceListener[pricing.Price] = (*PricingListener)(nil)
)

// AlgoService builds a streaming quote from each incoming price.
type AlgoService struct {
	soa.Store[string, PriceStream]
	tiers [2]int64
	count uint64
}

// NewAlgoService creates an algo streaming service. Zero tiers fall
// back to the 1M/2M defaults.
func NewAlgoService(tiers [2]int64) *AlgoService {
	if tiers[0] <= 0 || tiers[1] <= 0 {
		tiers = defaultTiers
	}
	return &AlgoService{Store: soa.NewStore[string, PriceStream](), tiers: tiers}
}

// GetData returns the current stream for a product.
func (s *AlgoService) GetData(productID string) PriceStream {
	return s.Get(productID)
}

// OnMessage stores the stream and dispatches an add event.
func (s *AlgoService) OnMessage(ps PriceStream) {
	s.Put(ps.Product.ProductID(), ps)
	s.DispatchAdd(ps)
}

// PublishPrice builds a stream around the price's mid. The visible
// size alternates between the two tiers on every call.
func (s *AlgoService) PublishPrice(p pricing.Price) {
	visible := s.tiers[s.count%2]
	s.count++

	half := p.Spread / 2.0
	s.OnMessage(PriceStream{
		Product: p.Product,
		Bid: PriceStreamOrder{
			Price:           p.Mid - half,
			VisibleQuantity: visible,
			HiddenQuantity:  2 * visible,
			Side:            marketdata.SideBid,
		},
		Offer: PriceStreamOrder{
			Price:           p.Mid + half,
			VisibleQuantity: visible,
			HiddenQuantity:  2 * visible,
			Side:            marketdata.SideOffer,
		},
	})
}

// PricingListener feeds prices from the pricing service into the algo.
type PricingListener struct {
	service *AlgoService
}

// NewPricingListener creates the pricing-to-algo-streaming binding.
func NewPricingListener(service *AlgoService) *PricingListener {
	return &PricingListener{service: service}
}

func (l *PricingListener) ProcessAdd(p pricing.Price)  { l.service.PublishPrice(p) }
func (l *PricingListener) ProcessUpdate(pricing.Price) {}
func (l *PricingListener) ProcessRemove(pricing.Price) {}
