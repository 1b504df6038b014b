package execution

import "main/internal/soa"

var _ soa.Service[string, ExecutionOrder] = (*Service)(nil)

// Service stores execution orders and publishes them downstream.
type Service struct {
	soa.Store[string, ExecutionOrder]
}

// NewService creates an empty execution service.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, ExecutionOrder]()}
}

// GetData returns the current order for a product.
func (s *Service) GetData(productID string) ExecutionOrder {
	return s.Get(productID)
}

// OnMessage stores the order without dispatching. Downstream emission
// happens through ExecuteOrder.
func (s *Service) OnMessage(o ExecutionOrder) {
	s.Put(o.Product.ProductID(), o)
}

// ExecuteOrder stores the order and dispatches an add event.
func (s *Service) ExecuteOrder(o ExecutionOrder) {
	s.Put(o.Product.ProductID(), o)
	s.DispatchAdd(o)
}

// AlgoListener bridges crossed orders from the algo service into the
// execution service.
type AlgoListener struct {
	service *Service
}

// NewAlgoListener creates the algo-execution-to-execution binding.
func NewAlgoListener(service *Service) *AlgoListener {
	return &AlgoListener{service: service}
}

func (l *AlgoListener) ProcessAdd(o ExecutionOrder) {
	l.service.OnMessage(o)
	l.service.ExecuteOrder(o)
}

func (l *AlgoListener) ProcessUpdate(ExecutionOrder) {}
func (l *AlgoListener) ProcessRemove(ExecutionOrder) {}
