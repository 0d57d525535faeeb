package priceoracle

import (
	"context"
	"time"

	"lendpool/core"
	"lendpool/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
)

const checkpointKey = "price_sync_checkpoint"

// Worker refreshes the cached reserve prices used by the read views
type Worker struct {
	worker.TickWorker
	reserveStore  core.IReserveStore
	priceService  core.IPriceOracleService
	propertyStore property.Store
}

// New new price oracle worker
func New(reserveStore core.IReserveStore, priceService core.IPriceOracleService, propertyStore property.Store) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Delay:    10 * time.Second,
			ErrDelay: 10 * time.Second,
		},
		reserveStore:  reserveStore,
		priceService:  priceService,
		propertyStore: propertyStore,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "priceoracle")

	reserves, err := w.reserveStore.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("reserves.All")
		return err
	}

	now := time.Now()
	for _, reserve := range reserves {
		if !reserve.IsActive {
			continue
		}

		price, err := w.priceService.GetPrice(ctx, reserve.AssetID)
		if err != nil {
			log.WithError(err).Errorln("oracle.GetPrice", reserve.Symbol)
			continue
		}

		if price.Equal(reserve.Price) {
			continue
		}

		reserve.Price = price
		reserve.PriceUpdatedAt = now
		if err := w.reserveStore.Update(ctx, nil, reserve); err != nil {
			log.WithError(err).Errorln("reserves.Update", reserve.Symbol)
			return err
		}
	}

	if err := w.propertyStore.Save(ctx, checkpointKey, now.Unix()); err != nil {
		log.WithError(err).Errorln("property.Save", checkpointKey)
		return err
	}

	return nil
}
