package oracle

import (
	"context"
	"fmt"
	"time"

	"lendpool/core"
	"lendpool/pkg/resthttp"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Config oracle service config
type Config struct {
	EndPoint string        `json:"end_point"`
	Expiry   time.Duration `json:"expiry"`
}

type priceOracleService struct {
	cfg   Config
	cache gcache.Cache
	sf    singleflight.Group
}

// New new price oracle service
func New(cfg Config) core.IPriceOracleService {
	if cfg.Expiry <= 0 {
		cfg.Expiry = 10 * time.Second
	}

	return &priceOracleService{
		cfg:   cfg,
		cache: gcache.New(512).LRU().Build(),
	}
}

func (s *priceOracleService) GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	if v, err := s.cache.Get(assetID); err == nil {
		if price, ok := v.(decimal.Decimal); ok {
			return price, nil
		}
	}

	v, err, _ := s.sf.Do(assetID, func() (interface{}, error) {
		return s.fetchPrice(ctx, assetID)
	})
	if err != nil {
		return decimal.Zero, err
	}

	return v.(decimal.Decimal), nil
}

func (s *priceOracleService) fetchPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	log := logger.FromContext(ctx).WithField("service", "oracle")

	var body struct {
		Price decimal.Decimal `json:"price"`
	}

	url := fmt.Sprintf("%s/prices/%s", s.cfg.EndPoint, assetID)
	resp, err := resthttp.Request(ctx).SetResult(&body).Get(url)
	if err != nil {
		log.WithError(err).Errorln("oracle request failed", assetID)
		return decimal.Zero, core.ErrOracleUnavailable
	}

	if !resp.IsSuccess() || !body.Price.IsPositive() {
		log.Errorln("oracle returned no usable price", assetID, resp.StatusCode())
		return decimal.Zero, core.ErrOracleUnavailable
	}

	_ = s.cache.SetWithExpire(assetID, body.Price, s.cfg.Expiry)
	return body.Price, nil
}
