package streaming

import "main/internal/soa"

var _ soa.Service[string, PriceStream] = (*Service)(nil)

// Service stores streams and publishes them downstream.
type Service struct {
	soa.Store[string, PriceStream]
}

// NewService creates an empty streaming service.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, PriceStream]()}
}

// GetData returns the current stream for a product.
func (s *Service) GetData(productID string) PriceStream {
	return s.Get(productID)
}

// OnMessage stores the stream without dispatching. Downstream emission
// happens through PublishPrice.
func (s *Service) OnMessage(ps PriceStream) {
	s.Put(ps.Product.ProductID(), ps)
}

// PublishPrice stores the stream and dispatches an add event.
func (s *Service) PublishPrice(ps PriceStream) {
	s.Put(ps.Product.ProductID(), ps)
	s.DispatchAdd(ps)
}

// AlgoListener bridges streams from the algo service downstream.
type AlgoListener struct {
	service *Service
}

// NewAlgoListener creates the algo-streaming-to-streaming binding.
func NewAlgoListener(service *Service) *AlgoListener {
	return &AlgoListener{service: service}
}

func (l *AlgoListener) ProcessAdd(ps PriceStream) { l.service.PublishPrice(ps) }
func (l *AlgoListener) ProcessUpdate(PriceStream) {}
func (l *AlgoListener) ProcessRemove(PriceStream) {}
