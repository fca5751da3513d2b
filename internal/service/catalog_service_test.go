package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeloraJewelry/storefront_api/internal/catalog"
	"github.com/VeloraJewelry/storefront_api/internal/models"
	"github.com/VeloraJewelry/storefront_api/internal/utils"
	"github.com/VeloraJewelry/storefront_api/pkg/wixstores"
)

type fakeCatalogFetcher struct {
	products    []wixstores.RawProduct
	collections []wixstores.RawCollection
	err         error
}

func (f *fakeCatalogFetcher) QueryProducts(context.Context) ([]wixstores.RawProduct, error) {
	return f.products, f.err
}

func (f *fakeCatalogFetcher) QueryCollections(context.Context) ([]wixstores.RawCollection, error) {
	return f.collections, f.err
}

func fetcherFixture() *fakeCatalogFetcher {
	ring := wixstores.RawProduct{
		ID:            "ring-aurora",
		Name:          "Aurora Ring",
		CollectionIDs: []string{"rings"},
		PriceData:     &wixstores.RawPriceData{Price: 95},
		ProductOptions: []wixstores.RawOption{
			{Name: "Color", Choices: []wixstores.RawChoice{{Value: "Gold"}, {Value: "Silver"}}},
			{Name: "Size", Choices: []wixstores.RawChoice{{Value: "6"}, {Value: "7"}}},
		},
	}
	for _, v := range []struct {
		id      string
		color   string
		size    string
		price   float64
		inStock bool
	}{
		{"v1", "Gold", "6", 100, true},
		{"v2", "Gold", "7", 110, false},
		{"v3", "Silver", "6", 95, true},
	} {
		rv := wixstores.RawVariant{ID: v.id, Choices: map[string]string{"Color": v.color, "Size": v.size}}
		rv.Variant.PriceData = &wixstores.RawPriceData{Price: v.price}
		rv.Stock.InStock = v.inStock
		ring.Variants = append(ring.Variants, rv)
	}

	pendant := wixstores.RawProduct{
		ID:            "pendant-luna",
		Name:          "Luna Pendant",
		CollectionIDs: []string{"necklaces"},
		PriceData:     &wixstores.RawPriceData{Price: 450},
	}

	return &fakeCatalogFetcher{
		products: []wixstores.RawProduct{ring, pendant},
		collections: []wixstores.RawCollection{
			{ID: "rings", Name: "Rings", Slug: "rings"},
			{ID: "necklaces", Name: "Necklaces", Slug: "necklaces"},
		},
	}
}

func refreshedService(t *testing.T) *CatalogService {
	t.Helper()
	svc := NewCatalogService(fetcherFixture(), catalog.NewStore())
	require.NoError(t, svc.Refresh(context.Background()))
	return svc
}

func TestCatalogService_UnavailableBeforeFirstRefresh(t *testing.T) {
	svc := NewCatalogService(fetcherFixture(), catalog.NewStore())

	_, err := svc.ListProducts(models.FilterSpec{})
	assert.ErrorIs(t, err, utils.ErrCatalogUnavailable)

	_, err = svc.Categories()
	assert.ErrorIs(t, err, utils.ErrCatalogUnavailable)

	assert.True(t, svc.LastFetched().IsZero())
}

func TestCatalogService_RefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	fetcher := fetcherFixture()
	svc := NewCatalogService(fetcher, catalog.NewStore())
	require.NoError(t, svc.Refresh(context.Background()))

	fetcher.err = errors.New("upstream down")
	assert.Error(t, svc.Refresh(context.Background()))

	products, err := svc.ListProducts(models.FilterSpec{})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_ListProducts(t *testing.T) {
	svc := refreshedService(t)

	products, err := svc.ListProducts(models.FilterSpec{Category: "rings"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Aurora Ring", products[0].Name)

	products, err = svc.ListProducts(models.FilterSpec{MaxPrice: 200, SortKey: models.SortPriceAsc})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Aurora Ring", products[0].Name)
}

func TestCatalogService_GetProduct(t *testing.T) {
	svc := refreshedService(t)

	p, err := svc.GetProduct("pendant-luna")
	require.NoError(t, err)
	assert.Equal(t, "Luna Pendant", p.Name)

	_, err = svc.GetProduct("missing")
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestCatalogService_Availability(t *testing.T) {
	svc := refreshedService(t)

	matrix, err := svc.Availability("ring-aurora", models.Selection{"Color": "Silver"})
	require.NoError(t, err)
	assert.False(t, matrix["Size"]["7"], "no Silver+7 variant")
	assert.True(t, matrix["Size"]["6"])
	assert.True(t, matrix["Color"]["Gold"], "switching color stays possible")
}

func TestCatalogService_Resolve(t *testing.T) {
	svc := refreshedService(t)

	t.Run("valid selection", func(t *testing.T) {
		res, err := svc.Resolve("ring-aurora", models.Selection{"Color": "Silver", "Size": "6"})
		require.NoError(t, err)
		assert.Equal(t, catalog.SelectionValid, res.State)
		require.NotNil(t, res.Variant)
		assert.Equal(t, 95.0, res.DisplayPrice)
		assert.True(t, res.InStock)
	})

	t.Run("incomplete selection falls back to base price", func(t *testing.T) {
		res, err := svc.Resolve("ring-aurora", models.Selection{"Color": "Gold"})
		require.NoError(t, err)
		assert.Equal(t, catalog.SelectionIncomplete, res.State)
		assert.Nil(t, res.Variant)
		assert.Equal(t, 95.0, res.DisplayPrice)
		assert.False(t, res.InStock)
	})

	t.Run("complete but unavailable combination", func(t *testing.T) {
		res, err := svc.Resolve("ring-aurora", models.Selection{"Color": "Silver", "Size": "7"})
		require.NoError(t, err)
		assert.Equal(t, catalog.SelectionInvalid, res.State)
		assert.Nil(t, res.Variant)
	})
}
