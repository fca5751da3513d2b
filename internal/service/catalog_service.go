package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/VeloraJewelry/storefront_api/internal/catalog"
	"github.com/VeloraJewelry/storefront_api/internal/models"
	"github.com/VeloraJewelry/storefront_api/internal/utils"
	"github.com/VeloraJewelry/storefront_api/pkg/wixstores"
)

// CatalogFetcher is the slice of the commerce client the catalog service
// needs. Tests substitute a fake.
type CatalogFetcher interface {
	QueryProducts(ctx context.Context) ([]wixstores.RawProduct, error)
	QueryCollections(ctx context.Context) ([]wixstores.RawCollection, error)
}

// CatalogService owns the in-memory catalog snapshot and the pure query
// operations over it.
type CatalogService struct {
	fetcher CatalogFetcher
	store   *catalog.Store
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(fetcher CatalogFetcher, store *catalog.Store) *CatalogService {
	return &CatalogService{fetcher: fetcher, store: store}
}

// Refresh fetches the catalog from the commerce platform, adapts it and swaps
// it in wholesale. On failure the previous snapshot stays in place.
func (s *CatalogService) Refresh(ctx context.Context) error {
	rawProducts, err := s.fetcher.QueryProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}
	rawCollections, err := s.fetcher.QueryCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch collections: %w", err)
	}

	snap := &models.Snapshot{
		Products:   wixstores.AdaptProducts(rawProducts),
		Categories: wixstores.AdaptCollections(rawCollections),
		FetchedAt:  time.Now(),
	}
	s.store.Swap(snap)

	log.Info().
		Int("products", len(snap.Products)).
		Int("categories", len(snap.Categories)).
		Msg("Catalog snapshot refreshed")
	return nil
}

// ListProducts applies the filter spec to the current snapshot.
func (s *CatalogService) ListProducts(spec models.FilterSpec) ([]models.Product, error) {
	snap := s.store.Load()
	if snap == nil {
		return nil, utils.ErrCatalogUnavailable
	}
	return catalog.Apply(snap.Products, spec), nil
}

// Categories returns the category list of the current snapshot.
func (s *CatalogService) Categories() ([]models.Category, error) {
	snap := s.store.Load()
	if snap == nil {
		return nil, utils.ErrCatalogUnavailable
	}
	return snap.Categories, nil
}

// GetProduct returns one product by id.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	snap := s.store.Load()
	if snap == nil {
		return nil, utils.ErrCatalogUnavailable
	}
	p := snap.ProductByID(id)
	if p == nil {
		return nil, utils.ErrProductNotFound
	}
	return p, nil
}

// ChoiceAvailability is the per-choice reachability matrix for a product
// under the given partial selection, used to grey out impossible choices.
type ChoiceAvailability map[string]map[string]bool

// Availability computes the reachability of every declared choice given the
// current selection.
func (s *CatalogService) Availability(productID string, sel models.Selection) (ChoiceAvailability, error) {
	p, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	matrix := make(ChoiceAvailability, len(p.Options))
	for _, opt := range p.Options {
		row := make(map[string]bool, len(opt.Choices))
		for _, c := range opt.Choices {
			row[c.Name] = catalog.IsChoiceAvailable(p, sel, opt.Name, c.Name)
		}
		matrix[opt.Name] = row
	}
	return matrix, nil
}

// ResolveResult is the detail-panel payload for a selection: its three-way
// state plus the resolved variant and the prices to display.
type ResolveResult struct {
	State          catalog.SelectionState `json:"state"`
	Variant        *models.Variant        `json:"variant,omitempty"`
	DisplayPrice   float64                `json:"displayPrice"`
	CompareAtPrice *float64               `json:"compareAtPrice,omitempty"`
	InStock        bool                   `json:"inStock"`
	OnSale         bool                   `json:"onSale"`
}

// Resolve classifies the selection against the product and derives the
// displayed and compare-at prices.
func (s *CatalogService) Resolve(productID string, sel models.Selection) (*ResolveResult, error) {
	p, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	variant := catalog.ResolveVariant(p, sel)
	displayed := catalog.DisplayPrice(p, variant)

	res := &ResolveResult{
		State:          catalog.ClassifySelection(p, sel),
		Variant:        variant,
		DisplayPrice:   displayed,
		CompareAtPrice: catalog.CompareAtPrice(p, displayed),
		OnSale:         catalog.IsOnSale(p),
	}
	if variant != nil {
		res.InStock = variant.InStock
	}
	return res, nil
}

// LastFetched returns when the current snapshot was taken, zero if none.
func (s *CatalogService) LastFetched() time.Time {
	if snap := s.store.Load(); snap != nil {
		return snap.FetchedAt
	}
	return time.Time{}
}
