package services_test

import (
	"testing"

	"github.com/cintasign/hse-portal/internal/models"
	"github.com/cintasign/hse-portal/internal/services"
)

func strPtr(s string) *string {
	return &s
}

// TestResolveBrand tests the profile/cookie precedence and the allow-list coercion
func TestResolveBrand(t *testing.T) {
	tests := []struct {
		name         string
		profileBrand *string
		cookieBrand  string
		expected     string
	}{
		{"profile wins over cookie", strPtr(models.BrandBellTimber), models.BrandCintasign, models.BrandBellTimber},
		{"valid cookie used when profile empty", nil, models.BrandBellTimber, models.BrandBellTimber},
		{"unknown profile coerces to default", strPtr("acme"), "", models.DefaultBrand},
		{"unknown cookie coerces to default", nil, "acme", models.DefaultBrand},
		{"nothing set yields default", nil, "", models.DefaultBrand},
		{"empty profile falls back to cookie", strPtr(""), models.BrandBellTimber, models.BrandBellTimber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ResolveBrand(tt.profileBrand, tt.cookieBrand)
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
