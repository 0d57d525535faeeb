package rest

import (
	"errors"
	"net/http"

	"lendpool/core"
	"lendpool/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	reserveStore core.IReserveStore,
	userReserveStore core.IUserReserveStore,
	eventStore core.ILiquidationEventStore,
	accountService core.IAccountService,
	liquidationService core.ILiquidationService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/reserves", allReservesHandler(reserveStore))
	router.Get("/reserves/{asset}", reserveHandler(reserveStore))
	router.Get("/users/{user}/snapshot", accountSnapshotHandler(accountService))
	router.Get("/users/{user}/reserves/{asset}", userReserveHandler(reserveStore, userReserveStore))
	router.Get("/liquidations", liquidationsHandler(eventStore))
	router.Post("/liquidations", liquidateHandler(liquidationService))

	return router
}
