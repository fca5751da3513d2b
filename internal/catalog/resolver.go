package catalog

import "github.com/VeloraJewelry/storefront_api/internal/models"

// SelectionState classifies a shopper's in-progress selection against a
// product's declared options and variants.
type SelectionState string

const (
	// SelectionIncomplete means at least one declared option has no choice yet.
	SelectionIncomplete SelectionState = "incomplete"
	// SelectionInvalid means every option is chosen but no variant matches.
	// Well-formed variant data never produces this, but upstream catalogs do.
	SelectionInvalid SelectionState = "invalid"
	// SelectionValid means the selection resolves to exactly one variant.
	SelectionValid SelectionState = "valid"
)

// IsChoiceAvailable reports whether choosing choiceName for optionName keeps
// the selection satisfiable: true iff at least one variant matches the current
// selection with optionName forced to choiceName. Options absent from that
// hypothetical selection are unconstrained. Unknown option or choice names
// fail closed to false; this runs on render paths and must never panic.
func IsChoiceAvailable(p *models.Product, sel models.Selection, optionName, choiceName string) bool {
	if p == nil || !declaresChoice(p, optionName, choiceName) {
		return false
	}

	hypothetical := make(models.Selection, len(sel)+1)
	for k, v := range sel {
		hypothetical[k] = v
	}
	hypothetical[optionName] = choiceName

	for i := range p.Variants {
		if variantMatches(&p.Variants[i], hypothetical) {
			return true
		}
	}
	return false
}

// ResolveVariant returns the variant whose pairs match the selection on every
// declared option, or nil when the selection is incomplete or matches nothing.
// Variants are disjoint by construction; if upstream data violates that, the
// first match in declared order wins.
func ResolveVariant(p *models.Product, sel models.Selection) *models.Variant {
	if p == nil || !AllOptionsSelected(p, sel) {
		return nil
	}
	for i := range p.Variants {
		if variantMatches(&p.Variants[i], sel) {
			return &p.Variants[i]
		}
	}
	return nil
}

// AllOptionsSelected reports whether the selection has an entry for every
// declared option name. It does not check that the entry is a declared choice.
func AllOptionsSelected(p *models.Product, sel models.Selection) bool {
	for _, opt := range p.Options {
		if _, ok := sel[opt.Name]; !ok {
			return false
		}
	}
	return true
}

// ClassifySelection returns the three-way selection state the detail view
// distinguishes: incomplete, complete-but-invalid, complete-and-valid.
func ClassifySelection(p *models.Product, sel models.Selection) SelectionState {
	if !AllOptionsSelected(p, sel) {
		return SelectionIncomplete
	}
	if ResolveVariant(p, sel) == nil {
		return SelectionInvalid
	}
	return SelectionValid
}

// DisplayPrice returns the price to show for the product given a possibly-nil
// resolved variant: the variant's price when resolved, else the base price.
// Products with no price at all display as zero.
func DisplayPrice(p *models.Product, v *models.Variant) float64 {
	if v != nil {
		return v.Price
	}
	if p.BasePrice != nil {
		return *p.BasePrice
	}
	return 0
}

// CompareAtPrice returns the struck-through reference price, or nil when none
// should be shown. It is always the product-level compare-at price, never a
// variant price, and is shown only when strictly greater than the displayed
// price.
func CompareAtPrice(p *models.Product, displayed float64) *float64 {
	if p.CompareAtPrice != nil && *p.CompareAtPrice > displayed {
		return p.CompareAtPrice
	}
	return nil
}

// IsOnSale reports whether the product should carry sale styling. Explicit
// promotional ribbons win; without one, the price comparison decides.
func IsOnSale(p *models.Product) bool {
	if len(p.Ribbons) > 0 {
		return true
	}
	return p.BasePrice != nil && p.CompareAtPrice != nil && *p.CompareAtPrice > *p.BasePrice
}

// variantMatches reports whether the variant agrees with every option
// constrained by the selection. Options the selection does not mention are
// unconstrained.
func variantMatches(v *models.Variant, sel models.Selection) bool {
	for _, pair := range v.Pairs {
		if want, ok := sel[pair.OptionName]; ok && want != pair.ChoiceName {
			return false
		}
	}
	return true
}

// declaresChoice reports whether the product declares optionName with
// choiceName among its choices.
func declaresChoice(p *models.Product, optionName, choiceName string) bool {
	for _, opt := range p.Options {
		if opt.Name != optionName {
			continue
		}
		for _, c := range opt.Choices {
			if c.Name == choiceName {
				return true
			}
		}
		return false
	}
	return false
}
