package liquidator

import (
	"context"
	"time"

	"lendpool/core"
	"lendpool/pkg/lendpool"
	"lendpool/worker"

	"github.com/fox-one/pkg/logger"
)

// Worker scans borrowers and surfaces liquidatable accounts for keepers
type Worker struct {
	worker.TickWorker
	userReserveStore core.IUserReserveStore
	accountService   core.IAccountService
}

// New new liquidator worker
func New(userReserveStore core.IUserReserveStore, accountService core.IAccountService) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Delay:    time.Minute,
			ErrDelay: time.Minute,
		},
		userReserveStore: userReserveStore,
		accountService:   accountService,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "liquidator")

	users, err := w.userReserveStore.Users(ctx)
	if err != nil {
		log.WithError(err).Errorln("userReserves.Users")
		return err
	}

	for _, user := range users {
		snapshot, err := w.accountService.ComputeAccountSnapshot(ctx, user)
		if err != nil {
			log.WithError(err).Errorln("computeAccountSnapshot", user)
			continue
		}

		if lendpool.Liquidatable(snapshot.HealthFactor) {
			log.WithFields(map[string]interface{}{
				"user":          user,
				"health_factor": snapshot.HealthFactor,
				"debt_value":    snapshot.TotalDebtValue,
			}).Infoln("account liquidatable")
		}
	}

	return nil
}
