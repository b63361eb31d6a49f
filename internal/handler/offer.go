package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/offer-catalog-service/internal/query"
	"github.com/maxviazov/offer-catalog-service/internal/service"
	"github.com/maxviazov/offer-catalog-service/pkg/response"
)

// ExportFilename is suggested to browsers downloading the CSV export.
const ExportFilename = "offres.csv"

var exportHeader = []string{
	"id", "nom", "isbn", "lieu", "adresse", "categorie", "statut", "creation", "date_evenement", "stock",
}

type OfferHandler struct {
	svc service.OfferService
}

func NewOfferHandler(svc service.OfferService) *OfferHandler { return &OfferHandler{svc: svc} }

func (h *OfferHandler) Register(r *gin.RouterGroup) {
	r.GET(OffersPath, h.list)
	// Static segment wins over the wildcard in gin's tree.
	r.GET(OfferExportPath, h.export)
	r.GET(OffersPath+"/:offer_id", h.getByID)
}

// parseFilters reads the localized query keys; bad keys come back as field errors.
func parseFilters(c *gin.Context) (query.OfferFilters, bool) {
	f, err := query.Parse(c.Request.URL.Query())
	if err != nil {
		response.WriteError(c, service.InvalidQuery(err))
		return f, false
	}
	return f, true
}

func (h *OfferHandler) list(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}
	page, err := h.svc.ListOffers(c.Request.Context(), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, page)
}

func (h *OfferHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("offer_id"), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	offer, err := h.svc.GetOffer(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, offer)
}

// export writes the page the list is currently showing, same filters, same page.
func (h *OfferHandler) export(c *gin.Context) {
	f, ok := parseFilters(c)
	if !ok {
		return
	}
	page, err := h.svc.ListOffers(c.Request.Context(), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportHeader)
	for _, o := range page.Offers {
		date := ""
		if o.BeginningDate != nil {
			date = o.BeginningDate.Format(time.DateOnly)
		}
		_ = w.Write([]string{
			strconv.FormatInt(o.ID, 10),
			o.Name,
			o.ISBN,
			o.VenueName,
			o.VenueAddress,
			o.CategoryID,
			string(o.Status),
			string(o.CreationMode),
			date,
			strconv.Itoa(o.Stocks),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		// headers are gone; keep the failure visible to middleware
		_ = c.Error(err)
	}
}
