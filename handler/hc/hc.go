package hc

import (
	"net/http"
	"time"

	"lendpool/core"
	"lendpool/handler/render"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Handle handle hc request
func Handle(ver string, reserveStore core.IReserveStore) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(ver, reserveStore))
	return r
}

func handle(version string, reserveStore core.IReserveStore) http.HandlerFunc {
	b := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := time.Since(b).Truncate(time.Millisecond)

		reserves, err := reserveStore.All(r.Context())
		if err != nil {
			render.Error(w, http.StatusServiceUnavailable, core.ErrUnknown, err)
			return
		}

		active := 0
		for _, reserve := range reserves {
			if reserve.IsActive {
				active++
			}
		}

		render.JSON(w, render.H{
			"uptime":          uptime.String(),
			"version":         version,
			"reserves":        len(reserves),
			"active_reserves": active,
		})
	}
}
