package services

import (
	"log"

	"github.com/cintasign/hse-portal/internal/models"
)

// ResolveBrand returns the tenant tag for a caller. The stored profile field is
// canonical; the request cookie is only a pre-authentication hint. The result
// is always a member of the fixed tenant set, never empty.
func ResolveBrand(profileBrand *string, cookieBrand string) string {
	if profileBrand != nil && *profileBrand != "" {
		if models.IsKnownBrand(*profileBrand) {
			return *profileBrand
		}
		log.Printf("Warning: unknown profile brand %q, coercing to %q", *profileBrand, models.DefaultBrand)
		return models.DefaultBrand
	}

	if cookieBrand != "" {
		if models.IsKnownBrand(cookieBrand) {
			return cookieBrand
		}
		log.Printf("Warning: unknown brand cookie %q, coercing to %q", cookieBrand, models.DefaultBrand)
	}

	return models.DefaultBrand
}
