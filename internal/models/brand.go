package models

// Tenant tags for the two organizations the portal serves. Legacy rows with an
// empty brand read as the default tenant.
const (
	BrandCintasign  = "cintasign"
	BrandBellTimber = "belltimber"

	DefaultBrand = BrandCintasign
)

// KnownBrands is the closed allow-list of tenant tags.
var KnownBrands = []string{BrandCintasign, BrandBellTimber}

// IsKnownBrand reports whether brand is one of the fixed tenant tags.
func IsKnownBrand(brand string) bool {
	for _, b := range KnownBrands {
		if brand == b {
			return true
		}
	}
	return false
}
