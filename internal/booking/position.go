package booking

import (
	"strconv"

	"main/internal/product"
	"main/internal/soa"
)

// Position is the signed quantity held per book for a product.
type Position struct {
	Product   product.Bond
	Positions map[Book]int64
}

// Aggregate sums the position over all books.
func (p Position) Aggregate() int64 {
	var total int64
	for _, q := range p.Positions {
		total += q
	}
	return total
}

// Strings projects the position for historical output: product, one
// quantity per book in round-robin order, then the aggregate.
func (p Position) Strings() []string {
	out := []string{p.Product.ProductID()}
	for _, book := range Books {
		out = append(out, string(book), strconv.FormatInt(p.Positions[book], 10))
	}
	return append(out, strconv.FormatInt(p.Aggregate(), 10))
}

var _ soa.Service[string, Position] = (*PositionService)(nil)

// PositionService maintains the per-book position per product.
type PositionService struct {
	soa.Store[string, Position]
}

// NewPositionService creates an empty position service.
func NewPositionService() *PositionService {
	return &PositionService{Store: soa.NewStore[string, Position]()}
}

// GetData returns the current position for a product.
func (s *PositionService) GetData(productID string) Position {
	return s.Get(productID)
}

// OnMessage stores the position and dispatches an add event.
func (s *PositionService) OnMessage(p Position) {
	s.Put(p.Product.ProductID(), p)
	s.DispatchAdd(p)
}

// AddTrade applies a trade's signed quantity to the product's book
// position and dispatches the updated position.
func (s *PositionService) AddTrade(t Trade) {
	id := t.Product.ProductID()
	pos, ok := s.Lookup(id)
	if !ok {
		pos = Position{Product: t.Product, Positions: make(map[Book]int64, len(Books))}
	}

	delta := t.Quantity
	if t.Side == SideSell {
		delta = -delta
	}
	pos.Positions[t.Book] += delta

	s.OnMessage(pos)
}

// TradeListener feeds booked trades into the position service.
type TradeListener struct {
	service *PositionService
}

// NewTradeListener creates the trade-booking-to-position binding.
func NewTradeListener(service *PositionService) *TradeListener {
	return &TradeListener{service: service}
}

func (l *TradeListener) ProcessAdd(t Trade)  { l.service.AddTrade(t) }
func (l *TradeListener) ProcessUpdate(Trade) {}
func (l *TradeListener) ProcessRemove(Trade) {}
