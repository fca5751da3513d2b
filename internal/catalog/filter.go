package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/VeloraJewelry/storefront_api/internal/models"
)

// collator performs locale-aware, case-insensitive name comparison for the
// name sort orders. Collators are not safe for concurrent use, so Apply
// constructs one per call; at catalog scale that cost is irrelevant.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// Apply filters and orders the product list according to spec. It is pure:
// the input slice and its products are never mutated, and the same spec on
// the same input always yields the same output.
func Apply(products []models.Product, spec models.FilterSpec) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(&p, spec) {
			out = append(out, p)
		}
	}
	sortProducts(out, spec.SortKey)
	return out
}

// matches is the AND of the four filter dimensions. Unset dimensions pass
// everything.
func matches(p *models.Product, spec models.FilterSpec) bool {
	if spec.Category != "" && spec.Category != models.CategoryAll && !p.InCategory(spec.Category) {
		return false
	}
	if !matchesSearch(p, spec.Search) {
		return false
	}
	// Products without a resolvable price are never excluded on price.
	if spec.MaxPrice > 0 && p.BasePrice != nil && *p.BasePrice > spec.MaxPrice {
		return false
	}
	for optionName, choices := range spec.SelectedOptionChoices {
		if len(choices) == 0 {
			continue
		}
		if !declaresAnyChoice(p, optionName, choices) {
			return false
		}
	}
	return true
}

// matchesSearch does a case-insensitive substring match over the product name
// and its description reduced to plain text.
func matchesSearch(p *models.Product, search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(StripHTML(p.Description)), needle)
}

// declaresAnyChoice reports whether the product declares the option and at
// least one of the wanted choices under it.
func declaresAnyChoice(p *models.Product, optionName string, wanted []string) bool {
	for _, opt := range p.Options {
		if opt.Name != optionName {
			continue
		}
		for _, c := range opt.Choices {
			for _, w := range wanted {
				if c.Name == w {
					return true
				}
			}
		}
		return false
	}
	return false
}

// sortProducts orders the slice in place with a stable sort so that ties keep
// their prior relative order. Unknown sort keys leave the input order as-is.
func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortNameAsc:
		col := newCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	case models.SortNameDesc:
		col := newCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) > 0
		})
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return effectivePrice(&products[i]) < effectivePrice(&products[j])
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return effectivePrice(&products[i]) > effectivePrice(&products[j])
		})
	}
}

// effectivePrice treats a missing price as zero for ordering purposes.
func effectivePrice(p *models.Product) float64 {
	if p.BasePrice == nil {
		return 0
	}
	return *p.BasePrice
}
