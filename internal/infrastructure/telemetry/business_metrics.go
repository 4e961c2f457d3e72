package telemetry

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// ErrMeterNil is returned when metrics are constructed without a meter
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// Transaction directions used as the direction attribute
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// StockProvider reports the quantity on hand per country for the
// periodic stock gauge.
type StockProvider interface {
	StockByCountry(ctx context.Context) (map[string]int64, error)
}

// BusinessMetrics records inventory movements and admin logins, and
// periodically samples stock on hand.
type BusinessMetrics struct {
	logger *zap.Logger

	transactionsTotal  *Counter
	unitsMovedTotal    *Counter
	loginAttemptsTotal *Counter
	stockOnHand        *Gauge

	stockProvider StockProvider
	stopChan      chan struct{}
	stopOnce      sync.Once
	startOnce     sync.Once
	wg            sync.WaitGroup
}

// NewBusinessMetrics registers the business instruments on meter.
// stockProvider may be nil, in which case no stock gauge is collected.
func NewBusinessMetrics(meter metric.Meter, stockProvider StockProvider, logger *zap.Logger) (*BusinessMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		logger:        logger,
		stockProvider: stockProvider,
		stopChan:      make(chan struct{}),
	}

	var err error
	if bm.transactionsTotal, err = NewCounter(meter,
		"inventory_transactions_total", "Inventory transactions recorded", "{transactions}"); err != nil {
		return nil, err
	}
	if bm.unitsMovedTotal, err = NewCounter(meter,
		"inventory_units_moved_total", "Absolute units moved by inventory transactions", "{units}"); err != nil {
		return nil, err
	}
	if bm.loginAttemptsTotal, err = NewCounter(meter,
		"admin_login_attempts_total", "Admin token requests by outcome", "{attempts}"); err != nil {
		return nil, err
	}
	if bm.stockOnHand, err = NewGauge(meter,
		"inventory_stock_on_hand", "Units on hand summed per country", "{units}"); err != nil {
		return nil, err
	}

	return bm, nil
}

// RecordTransaction counts one transaction of delta units in country
func (bm *BusinessMetrics) RecordTransaction(ctx context.Context, country string, delta int) {
	direction := DirectionInbound
	units := int64(delta)
	if delta < 0 {
		direction = DirectionOutbound
		units = -units
	}

	attrs := []attribute.KeyValue{AttrCountry.String(country), AttrDirection.String(direction)}
	bm.transactionsTotal.Inc(ctx, attrs...)
	bm.unitsMovedTotal.Add(ctx, units, attrs...)
}

// RecordLogin counts a token request
func (bm *BusinessMetrics) RecordLogin(ctx context.Context, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	bm.loginAttemptsTotal.Inc(ctx, AttrOutcome.String(outcome))
}

// StartPeriodicCollection samples stock on hand every interval until Stop.
// Only the first call starts the collector.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	if bm.stockProvider == nil {
		return
	}
	if interval <= 0 {
		interval = time.Minute
	}

	bm.startOnce.Do(func() {
		bm.wg.Add(1)
		go bm.runCollection(ctx, interval)
	})
}

func (bm *BusinessMetrics) runCollection(ctx context.Context, interval time.Duration) {
	defer bm.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bm.CollectStock(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-bm.stopChan:
			return
		case <-ticker.C:
			bm.CollectStock(ctx)
		}
	}
}

// CollectStock records the stock gauge once
func (bm *BusinessMetrics) CollectStock(ctx context.Context) {
	if bm.stockProvider == nil {
		return
	}

	stock, err := bm.stockProvider.StockByCountry(ctx)
	if err != nil {
		bm.logger.Warn("Failed to collect stock metrics", zap.Error(err))
		return
	}
	for country, units := range stock {
		bm.stockOnHand.Record(ctx, units, AttrCountry.String(country))
	}
}

// Stop ends periodic collection. Safe to call multiple times.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
	bm.wg.Wait()
}
