package models

import "time"

// SortKey enumerates the supported catalog sort orders.
type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// CategoryAll is the sentinel category id meaning "no category constraint".
const CategoryAll = "all"

// Choice is a single selectable value of an option axis (e.g. "Gold").
type Choice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Option is a named configurable axis of a product (e.g. "Color") together
// with its declared choices, in display order.
type Option struct {
	Name    string   `json:"name"`
	Choices []Choice `json:"choices"`
}

// OptionPair binds one option name to one chosen choice name.
type OptionPair struct {
	OptionName string `json:"optionName"`
	ChoiceName string `json:"choiceName"`
}

// Variant is a purchasable combination of exactly one choice per declared
// option, carrying its own price and stock flag.
type Variant struct {
	ID      string       `json:"id"`
	Pairs   []OptionPair `json:"pairs"`
	Price   float64      `json:"price"`
	InStock bool         `json:"inStock"`
}

// Product is a catalog entry adapted from the commerce platform payload.
// Prices are pointers because upstream data may omit them entirely; a product
// without a resolvable price is still displayable and filterable.
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug,omitempty"`
	Description    string    `json:"description"`
	BasePrice      *float64  `json:"basePrice,omitempty"`
	CompareAtPrice *float64  `json:"compareAtPrice,omitempty"`
	Options        []Option  `json:"options,omitempty"`
	Variants       []Variant `json:"variants,omitempty"`
	CategoryIDs    []string  `json:"categoryIds,omitempty"`
	Images         []string  `json:"images,omitempty"`
	Ribbons        []string  `json:"ribbons,omitempty"`
}

// InCategory reports whether the product belongs to the given category id.
func (p *Product) InCategory(categoryID string) bool {
	for _, id := range p.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// Category is a commerce-platform collection. The storefront only reads it.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Selection maps option names to the chosen choice name. It is built
// incrementally as the shopper clicks choices and is never persisted.
type Selection map[string]string

// FilterSpec describes how to narrow and order the product list.
// Zero values impose no constraint: empty category (or "all"), empty search,
// MaxPrice <= 0, and empty choice sets all pass everything.
type FilterSpec struct {
	Category              string              `json:"category"`
	Search                string              `json:"search"`
	MaxPrice              float64             `json:"maxPrice"`
	SelectedOptionChoices map[string][]string `json:"selectedOptionChoices"`
	SortKey               SortKey             `json:"sortKey"`
}

// Snapshot is one immutable fetch of the full catalog. Consumers must treat
// its contents as read-only; a refresh replaces the snapshot wholesale.
type Snapshot struct {
	Products   []Product
	Categories []Category
	FetchedAt  time.Time
}

// ProductByID returns the product with the given id, or nil.
func (s *Snapshot) ProductByID(id string) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}
