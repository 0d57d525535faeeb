package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"lendpool/core"
	"lendpool/handler/render"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

type liquidateBody struct {
	CollateralAssetID   string          `json:"collateral_asset_id"`
	DebtAssetID         string          `json:"debt_asset_id"`
	UserID              string          `json:"user_id"`
	LiquidatorID        string          `json:"liquidator_id"`
	Amount              decimal.Decimal `json:"amount"`
	ReceiveReceiptToken bool            `json:"receive_receipt_token"`
}

func liquidateHandler(liquidationService core.ILiquidationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body liquidateBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			render.BadRequest(w, errors.New("invalid request body"))
			return
		}

		if !govalidator.IsUUID(body.CollateralAssetID) ||
			!govalidator.IsUUID(body.DebtAssetID) ||
			!govalidator.IsUUID(body.UserID) ||
			!govalidator.IsUUID(body.LiquidatorID) {
			render.BadRequest(w, errors.New("invalid asset or user id"))
			return
		}

		result, err := liquidationService.Liquidate(r.Context(), &core.LiquidationRequest{
			CollateralAssetID:   body.CollateralAssetID,
			DebtAssetID:         body.DebtAssetID,
			UserID:              body.UserID,
			LiquidatorID:        body.LiquidatorID,
			Amount:              body.Amount,
			ReceiveReceiptToken: body.ReceiveReceiptToken,
		})
		if err != nil {
			if code, ok := err.(core.ErrorCode); ok {
				render.Error(w, http.StatusBadRequest, code, err)
				return
			}
			render.InternalError(w, err)
			return
		}

		render.JSON(w, result)
	}
}
