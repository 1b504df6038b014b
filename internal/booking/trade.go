// Package booking books trades into positions and rolls risk up by
// sector bucket.
package booking

import (
	"main/internal/product"
	"main/internal/soa"
)

// Side of a trade.
type Side uint16

const (
	SideUnknown Side = iota
	SideBuy
	SideSell
)

// ParseSide converts "BUY"/"SELL" text.
func ParseSide(s string) (Side, bool) {
	switch s {
	case "BUY":
		return SideBuy, true
	case "SELL":
		return SideSell, true
	default:
		return SideUnknown, false
	}
}

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// Book is the sub-account a trade is recorded under.
type Book string

const (
	BookTRSY1 Book = "TRSY1"
	BookTRSY2 Book = "TRSY2"
	BookTRSY3 Book = "TRSY3"
)

// Books lists the trading books in round-robin order.
var Books = []Book{BookTRSY1, BookTRSY2, BookTRSY3}

// Trade is an executed trade for a product.
type Trade struct {
	Product  product.Bond
	TradeID  string
	Price    float64
	Book     Book
	Quantity int64
	Side     Side
}

var _ soa.Service[string, Trade] = (*TradeBookingService)(nil)

// TradeBookingService ingests trades and fans them out to positions.
// Books are assigned round-robin per product, regardless of any book
// carried on the incoming trade.
type TradeBookingService struct {
	soa.Store[string, Trade]
	booked map[string]uint64
}

// NewTradeBookingService creates an empty trade booking service.
func NewTradeBookingService() *TradeBookingService {
	return &TradeBookingService{
		Store:  soa.NewStore[string, Trade](),
		booked: make(map[string]uint64),
	}
}

// GetData returns the trade stored under a trade ID.
func (s *TradeBookingService) GetData(tradeID string) Trade {
	return s.Get(tradeID)
}

// OnMessage books the trade.
func (s *TradeBookingService) OnMessage(t Trade) {
	s.BookTrade(t)
}

// BookTrade assigns the product's next round-robin book, stores the
// trade by trade ID, and dispatches an add event.
func (s *TradeBookingService) BookTrade(t Trade) {
	id := t.Product.ProductID()
	t.Book = Books[s.booked[id]%uint64(len(Books))]
	s.booked[id]++

	s.Put(t.TradeID, t)
	s.DispatchAdd(t)
}
