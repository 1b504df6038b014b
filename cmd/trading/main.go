package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/yanun0323/logs"

	"main/internal/booking"
	"main/internal/execution"
	"main/internal/histdata"
	"main/internal/ident"
	"main/internal/inquiry"
	"main/internal/marketdata"
	"main/internal/ops"
	"main/internal/pricing"
	"main/internal/streaming"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	dataDir := flag.String("data-dir", "", "Input directory override")
	outDir := flag.String("out-dir", "", "Historical output directory override")
	flag.Parse()

	if err := run(*configPath, *dataDir, *outDir); err != nil {
		log.Fatalf("trading pipeline failed: %v", err)
	}
}

func run(configPath, dataDir, outDir string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.PricesPath = filepath.Join(dataDir, filepath.Base(cfg.PricesPath))
		cfg.MarketDataPath = filepath.Join(dataDir, filepath.Base(cfg.MarketDataPath))
		cfg.TradesPath = filepath.Join(dataDir, filepath.Base(cfg.TradesPath))
		cfg.InquiriesPath = filepath.Join(dataDir, filepath.Base(cfg.InquiriesPath))
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}

	ids := ident.NewGenerator(0)

	pricingService := pricing.NewService()
	marketDataService := marketdata.NewService(cfg.BookDepth)
	algoStreaming := streaming.NewAlgoService(cfg.VisibleTiers)
	streamingService := streaming.NewService()
	algoExecution := execution.NewAlgoService(ids, cfg.SpreadThreshold)
	executionService := execution.NewService()
	tradeBooking := booking.NewTradeBookingService()
	positionService := booking.NewPositionService()
	riskService := booking.NewRiskService(cfg.Buckets)
	inquiryService := inquiry.NewService()

	sinks, err := openSinks(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer sinks.closeAll()

	// Wiring, leaves first: sinks, then inter-service bindings.
	streamingService.AddListener(histdata.NewListener[streaming.PriceStream](sinks.streams))
	executionService.AddListener(histdata.NewListener[execution.ExecutionOrder](sinks.executions))
	positionService.AddListener(histdata.NewListener[booking.Position](sinks.positions))
	riskService.AddListener(histdata.NewListener[booking.PV01](sinks.risk))
	inquiryService.AddListener(histdata.NewListener[inquiry.Inquiry](sinks.inquiries))

	pricingService.AddListener(streaming.NewPricingListener(algoStreaming))
	algoStreaming.AddListener(streaming.NewAlgoListener(streamingService))
	marketDataService.AddListener(execution.NewBookListener(algoExecution))
	algoExecution.AddListener(execution.NewAlgoListener(executionService))
	if cfg.BookExecutedTrades {
		executionService.AddListener(booking.NewExecutionListener(tradeBooking, ids))
	}
	tradeBooking.AddListener(booking.NewTradeListener(positionService))
	positionService.AddListener(booking.NewPositionListener(riskService))

	// Drain each ingress to EOF in order; every row fully propagates
	// before the next is read.
	if err := drain(cfg.PricesPath, pricing.NewConnector(pricingService).Subscribe); err != nil {
		return err
	}
	if err := drain(cfg.MarketDataPath, marketdata.NewConnector(marketDataService).Subscribe); err != nil {
		return err
	}
	if err := drain(cfg.TradesPath, booking.NewConnector(tradeBooking).Subscribe); err != nil {
		return err
	}
	if err := drain(cfg.InquiriesPath, inquiryService.Connector().Subscribe); err != nil {
		return err
	}

	logs.Infof("pipeline complete: %d prices, %d books, %d trades, %d inquiries",
		pricingService.Len(), marketDataService.Len(), tradeBooking.Len(), inquiryService.Len())
	return nil
}

func loadConfig(path string) (ops.Loaded, error) {
	if path == "" {
		return ops.Default(), nil
	}
	return ops.Load(path)
}

func drain(path string, subscribe func(io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	logs.Infof("ingesting %s", path)
	return subscribe(file)
}

type sinkSet struct {
	streams    *histdata.Writer
	executions *histdata.Writer
	positions  *histdata.Writer
	risk       *histdata.Writer
	inquiries  *histdata.Writer
}

func openSinks(dir string) (*sinkSet, error) {
	s := &sinkSet{}
	for _, sink := range []struct {
		name   string
		target **histdata.Writer
	}{
		{"streaming.txt", &s.streams},
		{"executions.txt", &s.executions},
		{"positions.txt", &s.positions},
		{"risk.txt", &s.risk},
		{"allinquiries.txt", &s.inquiries},
	} {
		w, err := histdata.NewWriter(filepath.Join(dir, sink.name))
		if err != nil {
			s.closeAll()
			return nil, err
		}
		*sink.target = w
	}
	return s, nil
}

func (s *sinkSet) closeAll() {
	for _, w := range []*histdata.Writer{s.streams, s.executions, s.positions, s.risk, s.inquiries} {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil {
			logs.Errorf("close sink: %+v", err)
		}
	}
}
