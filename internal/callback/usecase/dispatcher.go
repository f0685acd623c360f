// Package usecase implements the callback dispatcher: the entry point invoked
// once per inbound case event, running the applicable handlers in priority
// band order.
package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/allisson/caseflow/internal/callback/domain"
	"github.com/allisson/caseflow/internal/metrics"
)

// metricsDomain labels dispatch metrics.
const metricsDomain = "callback"

// Dispatcher runs registered handlers against inbound case events.
type Dispatcher interface {
	Dispatch(ctx context.Context, event *domain.CaseEvent) error
}

// CallbackDispatcher implements Dispatcher over an ordered handler registry.
type CallbackDispatcher struct {
	handlers []domain.EventHandler
	metrics  metrics.BusinessMetrics
	logger   *slog.Logger
}

// NewCallbackDispatcher creates a dispatcher over the given handlers. The
// handlers are ordered by priority band; registration order is preserved
// within a band but carries no guarantee.
func NewCallbackDispatcher(
	handlers []domain.EventHandler,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *CallbackDispatcher {
	ordered := make([]domain.EventHandler, len(handlers))
	copy(ordered, handlers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})

	return &CallbackDispatcher{
		handlers: ordered,
		metrics:  businessMetrics,
		logger:   logger,
	}
}

// Dispatch asks each handler, in ascending priority band order, whether it
// applies and invokes the ones that do. A CanHandle error or a handler
// failure aborts dispatch immediately; there is no retry and no cross-handler
// transaction, so earlier handlers' side effects stand.
func (d *CallbackDispatcher) Dispatch(ctx context.Context, event *domain.CaseEvent) error {
	start := time.Now()

	for _, handler := range d.handlers {
		applies, err := handler.CanHandle(event)
		if err != nil {
			d.recordDispatch(ctx, start, "error")
			return err
		}
		if !applies {
			continue
		}

		d.logger.Info("running handler",
			slog.String("event_type", string(event.EventType)),
			slog.String("priority", handler.Priority().String()),
			slog.Int64("case_id", event.CaseID()),
		)

		if err := handler.Handle(ctx, event); err != nil {
			d.logger.Error("handler failed",
				slog.String("event_type", string(event.EventType)),
				slog.Int64("case_id", event.CaseID()),
				slog.Any("error", err),
			)
			d.recordDispatch(ctx, start, "error")
			return err
		}
	}

	d.recordDispatch(ctx, start, "success")
	return nil
}

func (d *CallbackDispatcher) recordDispatch(ctx context.Context, start time.Time, status string) {
	d.metrics.RecordOperation(ctx, metricsDomain, "dispatch", status)
	d.metrics.RecordDuration(ctx, metricsDomain, "dispatch", time.Since(start), status)
}
