// Package streaming turns prices into two-sided quotes with tiered
// sizes and publishes them downstream.
package streaming

import (
	"strconv"

	"main/internal/fractional"
	"main/internal/marketdata"
	"main/internal/product"
)

// PriceStreamOrder is one side of a published stream.
type PriceStreamOrder struct {
	Price           float64
	VisibleQuantity int64
	HiddenQuantity  int64
	Side            marketdata.Side
}

// PriceStream is a two-sided streaming quote for a product.
type PriceStream struct {
	Product product.Bond
	Bid     PriceStreamOrder
	Offer   PriceStreamOrder
}

// Strings projects the stream for historical output.
func (ps PriceStream) Strings() []string {
	return []string{
		ps.Product.ProductID(),
		fractional.Format(ps.Bid.Price),
		strconv.FormatInt(ps.Bid.VisibleQuantity, 10),
		strconv.FormatInt(ps.Bid.HiddenQuantity, 10),
		fractional.Format(ps.Offer.Price),
		strconv.FormatInt(ps.Offer.VisibleQuantity, 10),
		strconv.FormatInt(ps.Offer.HiddenQuantity, 10),
	}
}
