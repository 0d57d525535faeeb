package wallet

import (
	"context"
	"fmt"

	"lendpool/core"
	"lendpool/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
)

// Config wallet service config
type Config struct {
	EndPoint string `json:"end_point"`
}

type walletService struct {
	cfg Config
}

// New new wallet service backed by the external settlement endpoint.
// Transfers are idempotent on trace id at the receiving side.
func New(cfg Config) core.IWalletService {
	return &walletService{cfg: cfg}
}

func (s *walletService) Transfer(ctx context.Context, transfer *core.Transfer) error {
	log := logger.FromContext(ctx).WithField("service", "wallet")

	url := fmt.Sprintf("%s/transfers", s.cfg.EndPoint)
	resp, err := resthttp.Request(ctx).SetBody(transfer).Post(url)
	if err != nil {
		log.WithError(err).Errorln("settlement request failed", transfer.TraceID)
		return err
	}

	if !resp.IsSuccess() {
		err := fmt.Errorf("settlement rejected: %d", resp.StatusCode())
		log.WithError(err).Errorln("transfer", transfer.TraceID)
		return err
	}

	return nil
}
