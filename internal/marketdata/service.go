package marketdata

import "main/internal/soa"

// DefaultBookDepth is the per-side depth of ingested order books.
const DefaultBookDepth = 5

var _ soa.Service[string, OrderBook] = (*Service)(nil)

// Service stores the latest order book per product.
type Service struct {
	soa.Store[string, OrderBook]
	depth int
}

// NewService creates a market data service with the given book depth.
// A non-positive depth falls back to DefaultBookDepth.
func NewService(depth int) *Service {
	if depth <= 0 {
		depth = DefaultBookDepth
	}
	return &Service{Store: soa.NewStore[string, OrderBook](), depth: depth}
}

// BookDepth returns the per-side depth of ingested books.
func (s *Service) BookDepth() int {
	return s.depth
}

// GetData returns the current order book for a product.
func (s *Service) GetData(productID string) OrderBook {
	return s.Get(productID)
}

// OnMessage stores the book and dispatches an add event. Listeners
// receive the raw book; aggregation is an explicit call.
func (s *Service) OnMessage(b OrderBook) {
	s.Put(b.Product.ProductID(), b)
	s.DispatchAdd(b)
}

// BestBidOffer returns the top of the stored book for a product.
func (s *Service) BestBidOffer(productID string) BidOffer {
	return s.Get(productID).BestBidOffer()
}

// AggregateDepth returns a new aggregated book for a product. The
// stored book is not mutated.
func (s *Service) AggregateDepth(productID string) OrderBook {
	return s.Get(productID).Aggregate()
}
