package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/webcrm-console/models"
)

// Init builds the router. Every pattern is lower case; see lowerCasePath.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		lowerCasePath,
		h.withTraceID,
		h.withLogging,
		h.withRateLimit,
		middleware.Compress(5, "application/json"),
	)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/token", h.token)
		r.Get("/version", h.version)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/process/getsummary", h.processSummary)

		r.Get("/customers/getgrid", h.customersGrid)
		r.Get("/customers/fetchcustomer/{id}", h.fetchCustomer)
		r.Get("/customers/summary/{id}", h.customerSummary)

		r.Get("/destinations/fetchnotconfirmed", h.notConfirmedDestinations)
		r.Post("/destinations/confirm/{id}", h.decide(models.CategoryDestinations, models.DecisionConfirm))
		r.Post("/destinations/dismiss/{id}", h.decide(models.CategoryDestinations, models.DecisionDismiss))
		r.Get("/destinations/getdifference/{id}", h.difference(models.CategoryDestinations))
		r.Get("/destinations/fetchbycustomer/{id}", h.destinationsByCustomer)
		r.Get("/destinations/fetchbyid/{id}", h.destinationByID)
		r.Post("/destinations/create", h.createDestination)
		r.Put("/destinations/update", h.updateDestination)
		r.Delete("/destinations/delete/{id}", h.deleteDestination)
		r.Get("/typedestination/getdestinationtypes", h.destinationTypes)

		r.Get("/references/fetchnotconfirmed", h.notConfirmedReferences)
		r.Post("/references/confirm/{id}", h.decide(models.CategoryReferences, models.DecisionConfirm))
		r.Post("/references/dismiss/{id}", h.decide(models.CategoryReferences, models.DecisionDismiss))
		r.Get("/references/getdifference/{id}", h.difference(models.CategoryReferences))
		r.Get("/references/fetchbycustomer/{id}", h.referencesByCustomer)
		r.Get("/references/fetchbyid/{id}", h.referenceByID)
		r.Post("/references/create", h.createReference)
		r.Put("/references/update", h.updateReference)
		r.Delete("/references/delete/{id}", h.deleteReference)
	})

	router.NotFound(CheckHTTPMethod)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

// lowerCasePath routes on the lower-cased request path. The URL itself is
// left untouched for logging.
func lowerCasePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			path := r.URL.RawPath
			if path == "" {
				path = r.URL.Path
			}
			rctx.RoutePath = strings.ToLower(path)
		}
		next.ServeHTTP(w, r)
	})
}

func idParam(r *http.Request) models.ID {
	return models.ID(chi.URLParam(r, "id"))
}
