// Package pricing ingests mid/spread quotes per product.
package pricing

import (
	"main/internal/fractional"
	"main/internal/product"
	"main/internal/soa"
)

// Price is a two-sided quote expressed as mid and bid/offer spread.
// The spread is never negative.
type Price struct {
	Product product.Bond
	Mid     float64
	Spread  float64
}

// Strings projects the price for historical output.
func (p Price) Strings() []string {
	return []string{
		p.Product.ProductID(),
		fractional.Format(p.Mid),
		fractional.Format(p.Spread),
	}
}

var _ soa.Service[string, Price] = (*Service)(nil)

// Service stores the latest Price per product.
type Service struct {
	soa.Store[string, Price]
}

// NewService creates an empty pricing service.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, Price]()}
}

// GetData returns the current price for a product.
func (s *Service) GetData(productID string) Price {
	return s.Get(productID)
}

// OnMessage stores the price and dispatches an add event.
func (s *Service) OnMessage(p Price) {
	s.Put(p.Product.ProductID(), p)
	s.DispatchAdd(p)
}
