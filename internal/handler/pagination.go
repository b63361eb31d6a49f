package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/offer-catalog-service/internal/pagination"
	"github.com/maxviazov/offer-catalog-service/internal/service"
	"github.com/maxviazov/offer-catalog-service/pkg/response"
)

// PaginationHandler serves page strips for arbitrary (current, total) pairs.
type PaginationHandler struct {
	svc service.PageStripService
}

func NewPaginationHandler(svc service.PageStripService) *PaginationHandler {
	return &PaginationHandler{svc: svc}
}

func (h *PaginationHandler) Register(r *gin.RouterGroup) {
	r.GET(PaginationPath, h.strip)
}

type stripResponse struct {
	pagination.Strip
	Label string `json:"label"`
}

func (h *PaginationHandler) strip(c *gin.Context) {
	var ferrs []service.FieldError
	readInt := func(key string) int {
		raw := c.Query(key)
		if raw == "" {
			ferrs = append(ferrs, service.FieldError{Field: key, Message: "is required"})
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			ferrs = append(ferrs, service.FieldError{Field: key, Message: "must be an integer"})
		}
		return n
	}
	current := readInt("current")
	total := readInt("total")
	if len(ferrs) > 0 {
		response.WriteError(c, service.NewInvalidInputError(ferrs))
		return
	}

	strip, err := h.svc.Build(current, total)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, stripResponse{Strip: strip, Label: strip.Label()})
}
