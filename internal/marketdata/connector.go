package marketdata

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

var _ soa.Connector[OrderBook] = (*Connector)(nil)

// Connector ingests market data rows (productId, price, quantity, side).
// Every 2*depth consecutive rows form one order book, depth bids then
// depth offers for a product.
type Connector struct {
	service *Service
}

// NewConnector creates a subscribe-only market data connector.
func NewConnector(service *Service) *Connector {
	return &Connector{service: service}
}

// Publish is a no-op, the market data connector is subscribe-only.
func (c *Connector) Publish(OrderBook) {}

// Subscribe reads rows until EOF, assembling order books of the
// service's depth and pushing each complete book into the service.
// Malformed rows are skipped with a warning.
func (c *Connector) Subscribe(r io.Reader) error {
	group := c.service.BookDepth() * 2

	var (
		bidStack   []Order
		offerStack []Order
		productID  string
		count      int
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}

		id, order, ok := parseRow(row)
		if !ok {
			logs.Warnf("skip malformed market data row %d: %s", line, row)
			continue
		}

		productID = id
		switch order.Side {
		case SideBid:
			bidStack = append(bidStack, order)
		case SideOffer:
			offerStack = append(offerStack, order)
		}

		count++
		if count == group {
			c.service.OnMessage(OrderBook{
				Product:    product.Lookup(productID),
				BidStack:   bidStack,
				OfferStack: offerStack,
			})
			count = 0
			bidStack = nil
			offerStack = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read market data")
	}
	return nil
}

func parseRow(row string) (string, Order, bool) {
	cells := strings.Split(row, ",")
	if len(cells) != 4 {
		return "", Order{}, false
	}
	price, err := fractional.Parse(strings.TrimSpace(cells[1]))
	if err != nil {
		return "", Order{}, false
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(cells[2]), 10, 64)
	if err != nil {
		return "", Order{}, false
	}
	side, ok := ParseSide(strings.TrimSpace(cells[3]))
	if !ok {
		return "", Order{}, false
	}
	return strings.TrimSpace(cells[0]), Order{Price: price, Quantity: quantity, Side: side}, true
}
