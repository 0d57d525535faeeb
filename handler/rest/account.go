package rest

import (
	"errors"
	"net/http"

	"lendpool/core"
	"lendpool/handler/render"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi"
	"github.com/spf13/cast"
)

func accountSnapshotHandler(accountService core.IAccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := chi.URLParam(r, "user")
		if !govalidator.IsUUID(user) {
			render.BadRequest(w, errors.New("invalid user id"))
			return
		}

		snapshot, err := accountService.ComputeAccountSnapshot(r.Context(), user)
		if err != nil {
			if code, ok := err.(core.ErrorCode); ok {
				render.Error(w, http.StatusServiceUnavailable, code, err)
				return
			}
			render.InternalError(w, err)
			return
		}

		render.JSON(w, snapshot)
	}
}

func liquidationsHandler(eventStore core.ILiquidationEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := cast.ToInt(r.URL.Query().Get("limit"))
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		var (
			events []*core.LiquidationEvent
			err    error
		)
		if user := r.URL.Query().Get("user"); user != "" {
			if !govalidator.IsUUID(user) {
				render.BadRequest(w, errors.New("invalid user id"))
				return
			}
			events, err = eventStore.ListByUser(r.Context(), user, limit)
		} else {
			events, err = eventStore.List(r.Context(), limit)
		}

		if err != nil {
			render.InternalError(w, err)
			return
		}

		render.JSON(w, render.H{"liquidations": events})
	}
}
