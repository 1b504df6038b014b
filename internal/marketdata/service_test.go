package marketdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureListener struct {
	added []OrderBook
}

func (l *captureListener) ProcessAdd(b OrderBook)  { l.added = append(l.added, b) }
func (l *captureListener) ProcessUpdate(OrderBook) {}
func (l *captureListener) ProcessRemove(OrderBook) {}

func TestSubscribeGroupsRowsIntoBooks(t *testing.T) {
	service := NewService(2)
	capture := &captureListener{}
	service.AddListener(capture)

	rows := strings.Join([]string{
		"9128283F5,99-310,1000000,BID",
		"9128283F5,99-300,2000000,BID",
		"9128283F5,100-000,1000000,OFFER",
		"9128283F5,100-010,2000000,OFFER",
		"9128283H1,99-315,3000000,BID",
		"9128283H1,99-310,4000000,BID",
		"9128283H1,100-002,3000000,OFFER",
		"9128283H1,100-010,4000000,OFFER",
	}, "\n")
	require.NoError(t, NewConnector(service).Subscribe(strings.NewReader(rows)))

	require.Len(t, capture.added, 2)
	first := capture.added[0]
	assert.Equal(t, "9128283F5", first.Product.ProductID())
	require.Len(t, first.BidStack, 2)
	require.Len(t, first.OfferStack, 2)

	top := service.BestBidOffer("9128283H1")
	assert.Equal(t, 99.0+31.0/32.0+5.0/256.0, top.Bid.Price)
	assert.Equal(t, 100.0+2.0/256.0, top.Offer.Price)
}

func TestOnMessageDispatchesRawBook(t *testing.T) {
	service := NewService(0)
	assert.Equal(t, DefaultBookDepth, service.BookDepth())

	capture := &captureListener{}
	service.AddListener(capture)

	book := OrderBook{
		BidStack: []Order{
			{Price: 100.0, Quantity: 10, Side: SideBid},
			{Price: 100.0, Quantity: 15, Side: SideBid},
		},
	}
	service.OnMessage(book)

	// Listeners see the raw, non-aggregated stacks.
	require.Len(t, capture.added, 1)
	assert.Len(t, capture.added[0].BidStack, 2)

	// Aggregation is explicit and pure.
	aggregated := service.AggregateDepth("")
	assert.Len(t, aggregated.BidStack, 1)
	assert.Len(t, service.GetData("").BidStack, 2)
}

func TestSubscribeSkipsMalformedRows(t *testing.T) {
	service := NewService(1)
	capture := &captureListener{}
	service.AddListener(capture)

	rows := strings.Join([]string{
		"9128283F5,99-310,1000000,SIDEWAYS",
		"9128283F5,99-310,1000000,BID",
		"9128283F5,100-000,1000000,OFFER",
	}, "\n")
	require.NoError(t, NewConnector(service).Subscribe(strings.NewReader(rows)))

	require.Len(t, capture.added, 1)
}
