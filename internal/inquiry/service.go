package inquiry

import (
	"errors"

	"main/internal/soa"
)

var ErrUnknownInquiry = errors.New("inquiry not found")

var _ soa.Service[string, Inquiry] = (*Service)(nil)

// Service runs the inquiry state machine. A RECEIVED inquiry is stored
// and round-tripped through the connector, which flips it to QUOTED
// and re-enters OnMessage exactly once; the QUOTED pass completes to
// DONE and dispatches. Terminal states pass through without dispatch.
type Service struct {
	soa.Store[string, Inquiry]
	connector *Connector
}

// NewService creates an inquiry service with its bidirectional
// connector attached.
func NewService() *Service {
	s := &Service{Store: soa.NewStore[string, Inquiry]()}
	s.connector = &Connector{service: s}
	return s
}

// Connector returns the service's bidirectional connector.
func (s *Service) Connector() *Connector {
	return s.connector
}

// GetData returns the inquiry stored under an inquiry ID.
func (s *Service) GetData(inquiryID string) Inquiry {
	return s.Get(inquiryID)
}

// OnMessage advances the inquiry state machine.
func (s *Service) OnMessage(q Inquiry) {
	switch q.State {
	case StateReceived:
		s.Put(q.InquiryID, q)
		s.connector.Publish(q)
	case StateQuoted:
		q.State = StateDone
		s.Put(q.InquiryID, q)
		s.DispatchAdd(q)
	default:
		// Terminal states leave the store untouched and dispatch nothing.
	}
}

// SendQuote rewrites the stored price for an inquiry and dispatches an
// add event.
func (s *Service) SendQuote(inquiryID string, price float64) error {
	q, ok := s.Lookup(inquiryID)
	if !ok {
		return ErrUnknownInquiry
	}
	q.Price = price
	s.Put(inquiryID, q)
	s.DispatchAdd(q)
	return nil
}

// RejectInquiry marks an inquiry REJECTED without dispatching.
func (s *Service) RejectInquiry(inquiryID string) error {
	q, ok := s.Lookup(inquiryID)
	if !ok {
		return ErrUnknownInquiry
	}
	q.State = StateRejected
	s.Put(inquiryID, q)
	return nil
}
