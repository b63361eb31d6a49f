package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maxviazov/offer-catalog-service/internal/service"
)

// Services groups the use cases exposed over HTTP. Nil members leave their routes unmounted.
type Services struct {
	Offers     service.OfferService
	Venues     service.VenueService
	PageStrips service.PageStripService
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, repo Pinger, svcs Services) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		if svcs.Offers != nil {
			NewOfferHandler(svcs.Offers).Register(api)
		}
		if svcs.Venues != nil {
			NewVenueHandler(svcs.Venues).Register(api)
		}
		if svcs.PageStrips != nil {
			NewPaginationHandler(svcs.PageStrips).Register(api)
		}
	}
}
