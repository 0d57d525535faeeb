package core

import (
	"github.com/fox-one/pkg/store/db"
)

// Config lendpool config
type Config struct {
	App        App        `json:"app"`
	DB         db.Config  `json:"db"`
	Oracle     Oracle     `json:"oracle"`
	Settlement Settlement `json:"settlement"`
}

// App app config
type App struct {
	// destination receiving fee collateral from liquidations
	FeeCollectorID string `json:"fee_collector_id"`
	Location       string `json:"location"`
}

// Oracle price oracle config
type Oracle struct {
	EndPoint string `json:"end_point"`
}

// Settlement external token transfer endpoint config
type Settlement struct {
	EndPoint string `json:"end_point"`
}
