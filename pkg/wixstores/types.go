package wixstores

import "github.com/VeloraJewelry/storefront_api/internal/models"

// queryRequest is the shared paged-query envelope for the read API.
type queryRequest struct {
	Query struct {
		Paging struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		} `json:"paging"`
	} `json:"query"`
}

type queryProductsResponse struct {
	Products     []RawProduct `json:"products"`
	TotalResults int          `json:"totalResults"`
}

type queryCollectionsResponse struct {
	Collections []RawCollection `json:"collections"`
}

// RawProduct is the upstream product payload. The platform has changed shape
// over the years, so several fields exist in more than one historical form;
// the adapter checks each in order rather than trusting any single one.
type RawProduct struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug,omitempty"`
	Description     string            `json:"description,omitempty"`
	DescriptionRich []models.RichNode `json:"descriptionRich,omitempty"`

	Price     *RawPriceData `json:"price,omitempty"`     // legacy shape
	PriceData *RawPriceData `json:"priceData,omitempty"` // current shape

	Ribbon  string      `json:"ribbon,omitempty"`
	Ribbons []RawRibbon `json:"ribbons,omitempty"`

	Media          RawMedia     `json:"media"`
	ProductOptions []RawOption  `json:"productOptions,omitempty"`
	Variants       []RawVariant `json:"variants,omitempty"`

	// Category membership has appeared under all three of these names.
	CollectionIDs []string       `json:"collectionIds,omitempty"`
	Collections   []RawColMember `json:"collections,omitempty"`
	CategoryIDs   []string       `json:"categoryIds,omitempty"`
}

// RawPriceData carries the list price and, when a discount is active, the
// discounted price the shopper actually pays.
type RawPriceData struct {
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
}

type RawRibbon struct {
	Text string `json:"text"`
}

type RawMedia struct {
	MainMedia *RawMediaItem  `json:"mainMedia,omitempty"`
	Items     []RawMediaItem `json:"items,omitempty"`
}

type RawMediaItem struct {
	Image *RawImage `json:"image,omitempty"`
}

type RawImage struct {
	URL string `json:"url"`
}

type RawOption struct {
	Name    string      `json:"name"`
	Choices []RawChoice `json:"choices"`
}

type RawChoice struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// RawVariant maps option names to the chosen value under "choices"; price and
// stock live in nested objects.
type RawVariant struct {
	ID      string            `json:"id"`
	Choices map[string]string `json:"choices"`
	Variant struct {
		PriceData *RawPriceData `json:"priceData,omitempty"`
	} `json:"variant"`
	Stock struct {
		InStock bool `json:"inStock"`
	} `json:"stock"`
}

// RawColMember is the object form of collection membership.
type RawColMember struct {
	ID string `json:"id"`
}

// RawCollection is a collection from the collections query.
type RawCollection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}
