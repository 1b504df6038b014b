package booking

import (
	"main/internal/execution"
	"main/internal/ident"
	"main/internal/marketdata"
)

// ExecutionListener converts executed orders into trades for booking.
// A crossed bid becomes a BUY, a crossed offer a SELL; the quantity is
// the order's visible plus hidden size.
type ExecutionListener struct {
	service *TradeBookingService
	ids     *ident.Generator
}

// NewExecutionListener creates the execution-to-trade-booking binding.
func NewExecutionListener(service *TradeBookingService, ids *ident.Generator) *ExecutionListener {
	return &ExecutionListener{service: service, ids: ids}
}

func (l *ExecutionListener) ProcessAdd(o execution.ExecutionOrder) {
	side := SideSell
	if o.Side == marketdata.SideBid {
		side = SideBuy
	}
	l.service.BookTrade(Trade{
		Product:  o.Product,
		TradeID:  l.ids.Next(),
		Price:    o.Price,
		Quantity: o.VisibleQuantity + o.HiddenQuantity,
		Side:     side,
	})
}

func (l *ExecutionListener) ProcessUpdate(execution.ExecutionOrder) {}
func (l *ExecutionListener) ProcessRemove(execution.ExecutionOrder) {}
