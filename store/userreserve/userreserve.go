package userreserve

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type userReserveStore struct {
	db *db.DB
}

// New new user reserve store
func New(db *db.DB) core.IUserReserveStore {
	return &userReserveStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.UserReserve{})
		if err := tx.AutoMigrate(core.UserReserve{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *userReserveStore) Save(ctx context.Context, tx *db.DB, userReserve *core.UserReserve) error {
	if tx == nil {
		tx = s.db
	}
	return tx.Update().Create(userReserve).Error
}

func (s *userReserveStore) Find(ctx context.Context, userID, assetID string) (*core.UserReserve, error) {
	var userReserve core.UserReserve
	err := s.db.View().Where("user_id=? and asset_id=?", userID, assetID).First(&userReserve).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.UserReserve{UserID: userID, AssetID: assetID}, nil
		}
		return nil, err
	}

	return &userReserve, nil
}

func (s *userReserveStore) FindByUser(ctx context.Context, userID string) ([]*core.UserReserve, error) {
	var userReserves []*core.UserReserve
	if err := s.db.View().Where("user_id=?", userID).Find(&userReserves).Error; err != nil {
		return nil, err
	}
	return userReserves, nil
}

func (s *userReserveStore) FindByAsset(ctx context.Context, assetID string) ([]*core.UserReserve, error) {
	var userReserves []*core.UserReserve
	if err := s.db.View().Where("asset_id=?", assetID).Find(&userReserves).Error; err != nil {
		return nil, err
	}
	return userReserves, nil
}

func (s *userReserveStore) Users(ctx context.Context) ([]string, error) {
	var users []string
	rows, err := s.db.View().Model(core.UserReserve{}).
		Select("distinct user_id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user string
		if err := rows.Scan(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (s *userReserveStore) CountOfBorrowers(ctx context.Context, assetID string) (int64, error) {
	var count int64
	err := s.db.View().Model(core.UserReserve{}).
		Where("asset_id=? and (principal_stable_debt > 0 or principal_variable_debt > 0)", assetID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (s *userReserveStore) Update(ctx context.Context, tx *db.DB, userReserve *core.UserReserve) error {
	if tx == nil {
		tx = s.db
	}

	version := userReserve.Version
	userReserve.Version++
	if userReserve.ID == 0 {
		return tx.Update().Create(userReserve).Error
	}

	// column map so fields dropping to zero are written out
	updates := map[string]interface{}{
		"collateral_balance":      userReserve.CollateralBalance,
		"principal_stable_debt":   userReserve.PrincipalStableDebt,
		"principal_variable_debt": userReserve.PrincipalVariableDebt,
		"stable_borrow_rate":      userReserve.StableBorrowRate,
		"variable_borrow_index":   userReserve.VariableBorrowIndex,
		"stable_rate_updated_at":  userReserve.StableRateUpdatedAt,
		"origination_fee":         userReserve.OriginationFee,
		"used_as_collateral":      userReserve.UsedAsCollateral,
		"version":                 userReserve.Version,
	}

	return tx.Update().Model(core.UserReserve{}).
		Where("id=? and version=?", userReserve.ID, version).
		Updates(updates).Error
}
