package pricing

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/product"
	"main/internal/soa"
)

var _ soa.Connector[Price] = (*Connector)(nil)

// Connector ingests price rows (productId, bid, offer) into a Service.
type Connector struct {
	service *Service
}

// NewConnector creates a subscribe-only pricing connector.
func NewConnector(service *Service) *Connector {
	return &Connector{service: service}
}

// Publish is a no-op, the pricing connector is subscribe-only.
func (c *Connector) Publish(Price) {}

// Subscribe reads rows until EOF and pushes each price into the service.
// Malformed rows are skipped with a warning.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}

		price, ok := parseRow(row)
		if !ok {
			logs.Warnf("skip malformed price row %d: %s", line, row)
			continue
		}
		c.service.OnMessage(price)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read prices")
	}
	return nil
}

func parseRow(row string) (Price, bool) {
	cells := strings.Split(row, ",")
	if len(cells) != 3 {
		return Price{}, false
	}
	bid, err := strconv.ParseFloat(strings.TrimSpace(cells[1]), 64)
	if err != nil {
		return Price{}, false
	}
	offer, err := strconv.ParseFloat(strings.TrimSpace(cells[2]), 64)
	if err != nil {
		return Price{}, false
	}
	if offer < bid {
		return Price{}, false
	}
	return Price{
		Product: product.Lookup(strings.TrimSpace(cells[0])),
		Mid:     (bid + offer) / 2.0,
		Spread:  offer - bid,
	}, true
}
