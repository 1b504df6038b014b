// Package inquiry runs the client inquiry quoting workflow.
package inquiry

import (
	"strconv"

	"main/internal/booking"
	"main/internal/fractional"
	"main/internal/product"
)

// State of an inquiry. Done, Rejected, and CustomerRejected are
// terminal.
type State uint16

const (
	StateUnknown State = iota
	StateReceived
	StateQuoted
	StateDone
	StateRejected
	StateCustomerRejected
)

// ParseState converts inquiry state text.
func ParseState(s string) (State, bool) {
	switch s {
	case "RECEIVED":
		return StateReceived, true
	case "QUOTED":
		return StateQuoted, true
	case "DONE":
		return StateDone, true
	case "REJECTED":
		return StateRejected, true
	case "CUSTOMER_REJECTED":
		return StateCustomerRejected, true
	default:
		return StateUnknown, false
	}
}

func (s State) String() string {
	switch s {
	case StateReceived:
		return "RECEIVED"
	case StateQuoted:
		return "QUOTED"
	case StateDone:
		return "DONE"
	case StateRejected:
		return "REJECTED"
	case StateCustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the state ends the inquiry lifecycle.
func (s State) Terminal() bool {
	switch s {
	case StateDone, StateRejected, StateCustomerRejected:
		return true
	default:
		return false
	}
}

// Inquiry is a client inquiry. Keyed on inquiry ID, not product.
type Inquiry struct {
	InquiryID string
	Product   product.Bond
	Side      booking.Side
	Quantity  int64
	Price     float64
	State     State
}

// Strings projects the inquiry for historical output.
func (q Inquiry) Strings() []string {
	return []string{
		q.InquiryID,
		q.Product.ProductID(),
		q.Side.String(),
		strconv.FormatInt(q.Quantity, 10),
		fractional.Format(q.Price),
		q.State.String(),
	}
}
