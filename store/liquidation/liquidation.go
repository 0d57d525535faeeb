package liquidation

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store/db"
)

type eventStore struct {
	db *db.DB
}

// New new liquidation event store
func New(db *db.DB) core.ILiquidationEventStore {
	return &eventStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		if err := db.Update().Model(core.LiquidationEvent{}).AutoMigrate(core.LiquidationEvent{}).Error; err != nil {
			return err
		}

		if err := db.Update().Model(core.FeeLiquidationEvent{}).AutoMigrate(core.FeeLiquidationEvent{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *eventStore) Create(ctx context.Context, tx *db.DB, event *core.LiquidationEvent) error {
	if tx == nil {
		tx = s.db
	}
	return tx.Update().Create(event).Error
}

func (s *eventStore) CreateFee(ctx context.Context, tx *db.DB, event *core.FeeLiquidationEvent) error {
	if tx == nil {
		tx = s.db
	}
	return tx.Update().Create(event).Error
}

func (s *eventStore) List(ctx context.Context, limit int) ([]*core.LiquidationEvent, error) {
	var events []*core.LiquidationEvent
	if err := s.db.View().Limit(limit).Order("id desc").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (s *eventStore) ListByUser(ctx context.Context, userID string, limit int) ([]*core.LiquidationEvent, error) {
	var events []*core.LiquidationEvent
	err := s.db.View().Where("user_id=?", userID).
		Limit(limit).Order("id desc").Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}
