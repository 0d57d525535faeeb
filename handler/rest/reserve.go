package rest

import (
	"errors"
	"net/http"
	"time"

	"lendpool/core"
	"lendpool/handler/render"
	"lendpool/handler/views"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi"
)

func allReservesHandler(reserveStore core.IReserveStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reserves, err := reserveStore.All(r.Context())
		if err != nil {
			render.InternalError(w, err)
			return
		}

		items := make([]views.ReserveView, 0, len(reserves))
		for _, reserve := range reserves {
			items = append(items, views.NewReserveView(reserve))
		}

		render.JSON(w, render.H{"reserves": items})
	}
}

func reserveHandler(reserveStore core.IReserveStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asset := chi.URLParam(r, "asset")
		if !govalidator.IsUUID(asset) {
			render.BadRequest(w, errors.New("invalid asset id"))
			return
		}

		reserve, err := reserveStore.Find(r.Context(), asset)
		if err != nil {
			render.NotFoundRequest(w, core.ErrReserveNotFound)
			return
		}

		render.JSON(w, views.NewReserveView(reserve))
	}
}

func userReserveHandler(reserveStore core.IReserveStore, userReserveStore core.IUserReserveStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asset := chi.URLParam(r, "asset")
		user := chi.URLParam(r, "user")
		if !govalidator.IsUUID(asset) || !govalidator.IsUUID(user) {
			render.BadRequest(w, errors.New("invalid asset or user id"))
			return
		}

		reserve, err := reserveStore.Find(r.Context(), asset)
		if err != nil {
			render.NotFoundRequest(w, core.ErrReserveNotFound)
			return
		}

		userReserve, err := userReserveStore.Find(r.Context(), user, asset)
		if err != nil {
			render.InternalError(w, err)
			return
		}

		render.JSON(w, views.NewUserReserveView(userReserve, reserve, time.Now()))
	}
}
