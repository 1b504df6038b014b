package booking

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/fractional"
	"main/internal/product"
	"main/internal/soa"
)

var _ soa.Connector[Trade] = (*Connector)(nil)

// Connector ingests trade rows (productId, tradeId, price, book,
// quantity, side) into a TradeBookingService.
type Connector struct {
	service *TradeBookingService
}

// NewConnector creates a subscribe-only trade booking connector.
func NewConnector(service *TradeBookingService) *Connector {
	return &Connector{service: service}
}

// Publish is a no-op, the trade booking connector is subscribe-only.
func (c *Connector) Publish(Trade) {}

// Subscribe reads rows until EOF and pushes each trade into the
// service. Malformed rows are skipped with a warning.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}

		trade, ok := parseRow(row)
		if !ok {
			logs.Warnf("skip malformed trade row %d: %s", line, row)
			continue
		}
		c.service.OnMessage(trade)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read trades")
	}
	return nil
}

func parseRow(row string) (Trade, bool) {
	cells := strings.Split(row, ",")
	if len(cells) != 6 {
		return Trade{}, false
	}
	price, err := fractional.Parse(strings.TrimSpace(cells[2]))
	if err != nil {
		return Trade{}, false
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(cells[4]), 10, 64)
	if err != nil {
		return Trade{}, false
	}
	side, ok := ParseSide(strings.TrimSpace(cells[5]))
	if !ok {
		return Trade{}, false
	}
	return Trade{
		Product:  product.Lookup(strings.TrimSpace(cells[0])),
		TradeID:  strings.TrimSpace(cells[1]),
		Price:    price,
		Book:     Book(strings.TrimSpace(cells[3])),
		Quantity: quantity,
		Side:     side,
	}, true
}
