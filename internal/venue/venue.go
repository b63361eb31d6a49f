// Package venue formats venues for lists and selects.
package venue

import (
	"strings"

	"github.com/maxviazov/offer-catalog-service/internal/model"
)

// VirtualSuffix marks venues that only carry digital offers.
const VirtualSuffix = " (Offre numérique)"

// DisplayName prefers the public name over the legal one.
func DisplayName(v model.Venue) string {
	name := strings.TrimSpace(v.PublicName)
	if name == "" {
		name = strings.TrimSpace(v.Name)
	}
	if v.IsVirtual {
		return name + VirtualSuffix
	}
	return name
}

// Address renders "street, postal city", dropping whatever is missing.
// Virtual venues have no address.
func Address(v model.Venue) string {
	if v.IsVirtual {
		return ""
	}
	locality := strings.TrimSpace(strings.Join(nonEmpty(v.PostalCode, v.City), " "))
	return strings.Join(nonEmpty(v.Street, locality), ", ")
}

func nonEmpty(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
