package cashier

import (
	"context"
	"errors"

	"lendpool/core"
	"lendpool/worker"

	"github.com/fox-one/pkg/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Cashier drains the queued transfers produced by settled liquidations.
// Transfers only exist for ledger mutations that already committed, so the
// external token interaction always trails the internal state.
type Cashier struct {
	worker.TickWorker
	transferStore core.ITransferStore
	walletService core.IWalletService
	cfg           Config
}

// Config cashier config
type Config struct {
	Batch    int   `json:"batch" valid:"required"`
	Capacity int64 `json:"capacity" valid:"required"`
}

// New new cashier
func New(
	transferStore core.ITransferStore,
	walletService core.IWalletService,
	cfg Config,
) *Cashier {
	if cfg.Batch <= 0 {
		cfg.Batch = 100
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = 1
	}

	return &Cashier{
		transferStore: transferStore,
		walletService: walletService,
		cfg:           cfg,
	}
}

// Run run worker
func (w *Cashier) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Cashier) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "cashier")

	transfers, err := w.transferStore.Top(ctx, w.cfg.Batch)
	if err != nil {
		log.WithError(err).Errorln("transfers.Top")
		return err
	}

	if len(transfers) == 0 {
		return errors.New("EOF")
	}

	sem := semaphore.NewWeighted(w.cfg.Capacity)
	g, ctx := errgroup.WithContext(ctx)
	for _, transfer := range transfers {
		transfer := transfer

		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		g.Go(func() error {
			defer sem.Release(1)
			return w.handleTransfer(ctx, transfer)
		})
	}

	return g.Wait()
}

func (w *Cashier) handleTransfer(ctx context.Context, transfer *core.Transfer) error {
	log := logger.FromContext(ctx).WithField("worker", "cashier")

	if err := w.walletService.Transfer(ctx, transfer); err != nil {
		return err
	}

	if err := w.transferStore.Delete(ctx, nil, transfer.ID); err != nil {
		log.WithError(err).Errorln("transfers.Delete", transfer.TraceID)
		return err
	}

	return nil
}
