// Package marketdata ingests order books and exposes top-of-book and
// aggregated depth views.
package marketdata

import (
	"math"

	"main/internal/product"
)

// Side of a market data order.
type Side uint16

const (
	SideUnknown Side = iota
	SideBid
	SideOffer
)

// ParseSide converts "BID"/"OFFER" text.
func ParseSide(s string) (Side, bool) {
	switch s {
	case "BID":
		return SideBid, true
	case "OFFER":
		return SideOffer, true
	default:
		return SideUnknown, false
	}
}

func (s Side) String() string {
	switch s {
	case SideBid:
		return "BID"
	case SideOffer:
		return "OFFER"
	default:
		return "UNKNOWN"
	}
}

// Order is one market data entry at a price level. Immutable.
type Order struct {
	Price    float64
	Quantity int64
	Side     Side
}

// BidOffer is the top of book.
type BidOffer struct {
	Bid   Order
	Offer Order
}

// OrderBook holds the bid and offer stacks for a product.
type OrderBook struct {
	Product    product.Bond
	BidStack   []Order
	OfferStack []Order
}

// BestBidOffer scans the stacks for the highest bid and lowest offer.
func (b OrderBook) BestBidOffer() BidOffer {
	bid := Order{Price: math.Inf(-1), Side: SideBid}
	for _, o := range b.BidStack {
		if o.Price > bid.Price {
			bid = o
		}
	}

	offer := Order{Price: math.Inf(1), Side: SideOffer}
	for _, o := range b.OfferStack {
		if o.Price < offer.Price {
			offer = o
		}
	}

	return BidOffer{Bid: bid, Offer: offer}
}

// Aggregate collapses duplicate price levels per side by summing
// quantities. It builds a new book and leaves the receiver untouched;
// output price order is unspecified.
func (b OrderBook) Aggregate() OrderBook {
	return OrderBook{
		Product:    b.Product,
		BidStack:   aggregateSide(b.BidStack, SideBid),
		OfferStack: aggregateSide(b.OfferStack, SideOffer),
	}
}

func aggregateSide(stack []Order, side Side) []Order {
	levels := make(map[float64]int64, len(stack))
	order := make([]float64, 0, len(stack))
	for _, o := range stack {
		if _, ok := levels[o.Price]; !ok {
			order = append(order, o.Price)
		}
		levels[o.Price] += o.Quantity
	}

	out := make([]Order, 0, len(levels))
	for _, price := range order {
		out = append(out, Order{Price: price, Quantity: levels[price], Side: side})
	}
	return out
}
