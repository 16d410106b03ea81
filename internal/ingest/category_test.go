package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spendlens/internal/domain"
	"spendlens/internal/ingest"
)

func TestAssignCategoryKeywordRules(t *testing.T) {
	cases := []struct {
		vendor string
		want   string
	}{
		{"Acme Software Ltd", domain.CategorySoftware},
		{"Global Tech Partners", domain.CategorySoftware},
		{"Acme Hardware Co", domain.CategoryHardware},
		{"Precision Equipment AG", domain.CategoryHardware},
		{"Bright Consulting", domain.CategoryConsulting},
		{"Northstar Advisory", domain.CategoryConsulting},
		{"Velocity Marketing", domain.CategoryMarketing},
		{"Metro Media House", domain.CategoryMarketing},
		{"Central Office Depot", domain.CategoryOfficeSupplies},
		{"SOFTWARE HEAVEN", domain.CategorySoftware},
	}

	for _, tc := range cases {
		t.Run(tc.vendor, func(t *testing.T) {
			assert.Equal(t, tc.want, ingest.AssignCategory(tc.vendor))
		})
	}
}

func TestAssignCategoryHashFallback(t *testing.T) {
	// "AB" sums to 131, and 131 mod 6 picks index 5.
	assert.Equal(t, domain.Categories[5], ingest.AssignCategory("AB"))

	// The fallback is stable per name.
	first := ingest.AssignCategory("Zeta Partners GmbH")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ingest.AssignCategory("Zeta Partners GmbH"))
	}
	assert.Contains(t, domain.Categories, first)
}
