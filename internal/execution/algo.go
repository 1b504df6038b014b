package execution

import (
	"main/internal/ident"
	"main/internal/marketdata"
	"main/internal/soa"
)

// DefaultSpreadThreshold is the widest top-of-book spread the algo
// will cross, 1/128 of a point.
const DefaultSpreadThreshold = 1.0 / 128.0

var (
	_ soa.Service[string, ExecutionOrder]       = (*AlgoService)(nil)
	_ soa.ServiceListener[marketdata.OrderBook] = (*BookListener)(nil)
)

// AlgoService crosses the market whenever the top-of-book spread is
// within the threshold, alternating sides between triggers.
type AlgoService struct {
	soa.Store[string, ExecutionOrder]
	ids       *ident.Generator
	threshold float64
	count     uint64
}

// NewAlgoService creates an algo execution service. A non-positive
// threshold falls back to DefaultSpreadThreshold.
func NewAlgoService(ids *ident.Generator, threshold float64) *AlgoService {
	if threshold <= 0 {
		threshold = DefaultSpreadThreshold
	}
	return &AlgoService{
		Store:     soa.NewStore[string, ExecutionOrder](),
		ids:       ids,
		threshold: threshold,
	}
}

// GetData returns the last cross for a product.
func (s *AlgoService) GetData(productID string) ExecutionOrder {
	return s.Get(productID)
}

// OnMessage stores the order and dispatches an add event.
func (s *AlgoService) OnMessage(o ExecutionOrder) {
	s.Put(o.Product.ProductID(), o)
	s.DispatchAdd(o)
}

// ExecuteBook evaluates a book update. When the spread is within the
// threshold it crosses at the bid or offer, alternating per trigger,
// and emits a MARKET order. The counter advances only when a cross
// fires.
func (s *AlgoService) ExecuteBook(b marketdata.OrderBook) {
	top := b.BestBidOffer()
	if top.Offer.Price-top.Bid.Price > s.threshold {
		return
	}

	side := marketdata.SideBid
	price := top.Bid.Price
	quantity := top.Bid.Quantity
	if s.count%2 == 1 {
		side = marketdata.SideOffer
		price = top.Offer.Price
		quantity = top.Offer.Quantity
	}
	s.count++

	s.OnMessage(ExecutionOrder{
		Product:         b.Product,
		Side:            side,
		OrderID:         s.ids.Next(),
		Type:            OrderTypeMarket,
		Price:           price,
		VisibleQuantity: quantity,
		HiddenQuantity:  0,
	})
}

// BookListener feeds order books from market data into the algo.
type BookListener struct {
	service *AlgoService
}

// NewBookListener creates the market-data-to-algo-execution binding.
func NewBookListener(service *AlgoService) *BookListener {
	return &BookListener{service: service}
}

func (l *BookListener) ProcessAdd(b marketdata.OrderBook)  { l.service.ExecuteBook(b) }
func (l *BookListener) ProcessUpdate(marketdata.OrderBook) {}
func (l *BookListener) ProcessRemove(marketdata.OrderBook) {}
