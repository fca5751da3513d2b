package wixstores

import (
	"github.com/VeloraJewelry/storefront_api/internal/catalog"
	"github.com/VeloraJewelry/storefront_api/internal/models"
)

// categoryAccessors lists every historical field that may carry category
// membership, in the order they are checked. A product belongs to the union
// of whatever all of them return; upstream exports are inconsistent about
// which field is populated.
var categoryAccessors = []func(*RawProduct) []string{
	func(p *RawProduct) []string { return p.CollectionIDs },
	func(p *RawProduct) []string {
		ids := make([]string, 0, len(p.Collections))
		for _, c := range p.Collections {
			ids = append(ids, c.ID)
		}
		return ids
	},
	func(p *RawProduct) []string { return p.CategoryIDs },
}

// AdaptProducts converts a batch of upstream products.
func AdaptProducts(raw []RawProduct) []models.Product {
	out := make([]models.Product, 0, len(raw))
	for i := range raw {
		out = append(out, AdaptProduct(&raw[i]))
	}
	return out
}

// AdaptProduct converts one upstream product into the catalog model.
func AdaptProduct(raw *RawProduct) models.Product {
	p := models.Product{
		ID:          raw.ID,
		Name:        raw.Name,
		Slug:        raw.Slug,
		Description: adaptDescription(raw),
		Options:     adaptOptions(raw.ProductOptions),
		CategoryIDs: adaptCategoryIDs(raw),
		Images:      adaptImages(&raw.Media),
		Ribbons:     adaptRibbons(raw),
	}
	p.Variants = adaptVariants(raw.Variants, p.Options)
	p.BasePrice, p.CompareAtPrice = adaptPrices(raw, p.Variants)
	return p
}

// AdaptCollections converts upstream collections into categories.
func AdaptCollections(raw []RawCollection) []models.Category {
	out := make([]models.Category, 0, len(raw))
	for _, c := range raw {
		out = append(out, models.Category{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return out
}

// adaptDescription reduces whichever description form the payload carries to
// plain-or-HTML text. Rich node trees are flattened up front so the filter
// engine only ever sees strings.
func adaptDescription(raw *RawProduct) string {
	if len(raw.DescriptionRich) > 0 {
		return catalog.FlattenRichText(raw.DescriptionRich)
	}
	return raw.Description
}

func adaptCategoryIDs(raw *RawProduct) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, accessor := range categoryAccessors {
		for _, id := range accessor(raw) {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func adaptOptions(raw []RawOption) []models.Option {
	out := make([]models.Option, 0, len(raw))
	for _, o := range raw {
		opt := models.Option{Name: o.Name}
		for _, c := range o.Choices {
			name := c.Description
			if name == "" {
				name = c.Value
			}
			opt.Choices = append(opt.Choices, models.Choice{ID: c.Value, Name: name})
		}
		out = append(out, opt)
	}
	return out
}

// adaptVariants orders each variant's pairs by declared option order so that
// downstream matching never depends on upstream map iteration.
func adaptVariants(raw []RawVariant, options []models.Option) []models.Variant {
	out := make([]models.Variant, 0, len(raw))
	for _, rv := range raw {
		v := models.Variant{ID: rv.ID, InStock: rv.Stock.InStock}
		if rv.Variant.PriceData != nil {
			v.Price = currentPrice(rv.Variant.PriceData)
		}
		for _, opt := range options {
			if choice, ok := rv.Choices[opt.Name]; ok {
				v.Pairs = append(v.Pairs, models.OptionPair{OptionName: opt.Name, ChoiceName: choice})
			}
		}
		out = append(out, v)
	}
	return out
}

// adaptPrices derives the product's base price (minimum current price across
// variants, else the product-level price) and the compare-at reference price.
func adaptPrices(raw *RawProduct, variants []models.Variant) (base, compareAt *float64) {
	for i := range variants {
		price := variants[i].Price
		if price <= 0 {
			continue
		}
		if base == nil || price < *base {
			base = &variants[i].Price
		}
	}

	// priceData is the current shape; fall back to the legacy price field.
	pd := raw.PriceData
	if pd == nil {
		pd = raw.Price
	}
	if pd == nil {
		return base, nil
	}

	if base == nil {
		current := currentPrice(pd)
		base = &current
	}
	if pd.DiscountedPrice != nil && *pd.DiscountedPrice < pd.Price {
		listPrice := pd.Price
		compareAt = &listPrice
	}
	return base, compareAt
}

// currentPrice is the price the shopper pays right now: the discounted price
// when a discount is active, the list price otherwise.
func currentPrice(pd *RawPriceData) float64 {
	if pd.DiscountedPrice != nil && *pd.DiscountedPrice > 0 && *pd.DiscountedPrice < pd.Price {
		return *pd.DiscountedPrice
	}
	return pd.Price
}

func adaptImages(media *RawMedia) []string {
	var urls []string
	if media.MainMedia != nil && media.MainMedia.Image != nil && media.MainMedia.Image.URL != "" {
		urls = append(urls, media.MainMedia.Image.URL)
	}
	for _, item := range media.Items {
		if item.Image == nil || item.Image.URL == "" {
			continue
		}
		// the main image is usually repeated in the gallery list
		if len(urls) > 0 && urls[0] == item.Image.URL {
			continue
		}
		urls = append(urls, item.Image.URL)
	}
	return urls
}

func adaptRibbons(raw *RawProduct) []string {
	var out []string
	for _, r := range raw.Ribbons {
		if r.Text != "" {
			out = append(out, r.Text)
		}
	}
	if len(out) == 0 && raw.Ribbon != "" {
		out = append(out, raw.Ribbon)
	}
	return out
}
