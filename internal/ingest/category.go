package ingest

import (
	"strings"

	"spendlens/internal/domain"
)

// categoryRules maps vendor-name keywords to categories. Rules are checked
// in order; the first match wins.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{domain.CategorySoftware, []string{"software", "tech", "digital"}},
	{domain.CategoryHardware, []string{"hardware", "computer", "equipment"}},
	{domain.CategoryConsulting, []string{"consult", "advisory"}},
	{domain.CategoryMarketing, []string{"marketing", "media", "advertis"}},
	{domain.CategoryOfficeSupplies, []string{"office", "supplies"}},
}

// AssignCategory derives a spend category from the vendor name. Keyword
// matching is case-insensitive; names matching no rule get a stable
// pseudo-random pick from the fixed category list, hashed from the name's
// character codes. The whole function is deterministic per name.
func AssignCategory(vendorName string) string {
	lower := strings.ToLower(vendorName)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}

	sum := 0
	for _, r := range vendorName {
		sum += int(r)
	}
	return domain.Categories[sum%len(domain.Categories)]
}
