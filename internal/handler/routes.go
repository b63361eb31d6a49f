package handler

// APIV1Prefix is the canonical base path for public HTTP API v1.
const APIV1Prefix = "/api/v1"

// Paths below are relative to APIV1Prefix.
const (
	OffersPath       = "/offers"
	OfferExportPath  = OffersPath + "/export.csv"
	PaginationPath   = "/pagination"
	OffererVenuePath = "/offerers/:offerer_id/venues"
)
