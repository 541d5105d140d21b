package checkout

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"ceybyte/terminal/internal/api"
	"ceybyte/terminal/internal/cache"
	"ceybyte/terminal/internal/domain"
	"ceybyte/terminal/internal/xid"
)

// SalesAPI is the slice of the backend client submission needs.
type SalesAPI interface {
	CreateSale(ctx context.Context, req domain.SaleCreateRequest) api.Result[domain.SaleResponse]
	PrintReceipt(ctx context.Context, saleID int) api.Result[domain.MessageResponse]
}

// Outcome describes what happened to a submitted sale. Exactly one of Sale
// and Queued is set. PrintNote is informational: a completed sale with a
// failed print is still a completed sale.
type Outcome struct {
	Sale      *domain.SaleResponse
	Queued    bool
	QueueID   string
	PrintNote string
}

type Submitter struct {
	sales SalesAPI
	queue cache.OfflineCache
	log   *zap.SugaredLogger

	// Print controls whether a receipt print is requested after each sale.
	Print bool
}

func NewSubmitter(sales SalesAPI, queue cache.OfflineCache, log *zap.SugaredLogger) *Submitter {
	return &Submitter{sales: sales, queue: queue, log: log, Print: true}
}

// Submit validates and sends the sale. A transport-level failure queues the
// sale locally for a later flush instead of failing; a backend rejection
// (validation, credit limit) is returned to the cashier as an error.
func (s *Submitter) Submit(ctx context.Context, cart *Cart, payment Payment) (Outcome, error) {
	if err := cart.Validate(payment); err != nil {
		return Outcome{}, err
	}
	req := cart.Request(payment)

	result := s.sales.CreateSale(ctx, req)
	if result.IsNetworkError() {
		queued := cache.QueuedSale{
			ID:       xid.New("SALE"),
			Request:  req,
			QueuedAt: time.Now(),
		}
		if err := s.queue.QueueSale(ctx, queued); err != nil {
			return Outcome{}, errors.New("backend unreachable and offline queue failed: " + err.Error())
		}
		s.log.Infow("sale queued offline", "queue_id", queued.ID, "items", len(req.Items))
		return Outcome{Queued: true, QueueID: queued.ID}, nil
	}
	if !result.Success {
		return Outcome{}, errors.New(result.Error)
	}

	sale := result.Data
	outcome := Outcome{Sale: &sale}
	if s.Print {
		if printed := s.sales.PrintReceipt(ctx, sale.ID); !printed.Success {
			// Never fail the sale over the printer.
			outcome.PrintNote = "receipt print failed: " + printed.Error
			s.log.Warnw("receipt print failed", "sale_id", sale.ID, "error", printed.Error)
		}
	}
	return outcome, nil
}

// FlushPending replays queued sales in FIFO order. It stops at the first
// retryable failure (transport error or 5xx) so ordering is preserved and
// nothing is lost while the backend is degraded; only a definitive rejection
// (4xx) drops the sale from the queue, since retrying it cannot succeed.
func (s *Submitter) FlushPending(ctx context.Context) (int, error) {
	pending, err := s.queue.PendingSales(ctx)
	if err != nil {
		return 0, err
	}
	submitted := 0
	for _, queued := range pending {
		result := s.sales.CreateSale(ctx, queued.Request)
		if result.Retryable() {
			if !result.IsNetworkError() {
				s.log.Warnw("backend degraded, keeping sale queued", "queue_id", queued.ID, "error", result.Error)
			}
			return submitted, nil
		}
		if err := s.queue.DeleteQueuedSale(ctx, queued.ID); err != nil {
			return submitted, err
		}
		if !result.Success {
			s.log.Warnw("queued sale rejected by backend", "queue_id", queued.ID, "error", result.Error)
			continue
		}
		submitted++
		s.log.Infow("queued sale submitted", "queue_id", queued.ID, "receipt", result.Data.ReceiptNumber)
	}
	return submitted, nil
}
