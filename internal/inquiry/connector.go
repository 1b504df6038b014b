package inquiry

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/booking"
	"main/internal/fractional"
	"main/internal/product"
	"main/internal/soa"
)

var _ soa.Connector[Inquiry] = (*Connector)(nil)

// Connector ingests inquiry rows and round-trips quotes back into the
// service. Publish is the quoting leg: it flips a RECEIVED inquiry to
// QUOTED and re-enters the service once.
type Connector struct {
	service *Service
}

// Publish quotes a RECEIVED inquiry back into the service.
func (c *Connector) Publish(q Inquiry) {
	if q.State != StateReceived {
		return
	}
	q.State = StateQuoted
	c.service.OnMessage(q)
}

// Subscribe reads rows (inquiryId, productId, side, quantity, price,
// state) until EOF. Rows with an unknown state string are rejected.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}

		q, ok := parseRow(row)
		if !ok {
			logs.Warnf("reject malformed inquiry row %d: %s", line, row)
			continue
		}
		c.service.OnMessage(q)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read inquiries")
	}
	return nil
}

func parseRow(row string) (Inquiry, bool) {
	cells := strings.Split(row, ",")
	if len(cells) != 6 {
		return Inquiry{}, false
	}
	side, ok := booking.ParseSide(strings.TrimSpace(cells[2]))
	if !ok {
		return Inquiry{}, false
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(cells[3]), 10, 64)
	if err != nil {
		return Inquiry{}, false
	}
	price, err := fractional.Parse(strings.TrimSpace(cells[4]))
	if err != nil {
		return Inquiry{}, false
	}
	state, ok := ParseState(strings.TrimSpace(cells[5]))
	if !ok {
		return Inquiry{}, false
	}
	return Inquiry{
		InquiryID: strings.TrimSpace(cells[0]),
		Product:   product.Lookup(strings.TrimSpace(cells[1])),
		Side:      side,
		Quantity:  quantity,
		Price:     price,
		State:     state,
	}, true
}
