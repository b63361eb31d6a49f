package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/offer-catalog-service/internal/service"
	"github.com/maxviazov/offer-catalog-service/pkg/response"
)

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler { return &VenueHandler{svc: svc} }

func (h *VenueHandler) Register(r *gin.RouterGroup) {
	r.GET(OffererVenuePath, h.listByOfferer)
}

// listByOfferer feeds the venue select of the offer filters.
func (h *VenueHandler) listByOfferer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("offerer_id"), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "offerer_id", Message: "must be a valid integer"}}))
		return
	}
	opts, err := h.svc.ListVenueOptions(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"venues": opts})
}
