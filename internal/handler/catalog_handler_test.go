package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeloraJewelry/storefront_api/internal/catalog"
	"github.com/VeloraJewelry/storefront_api/internal/models"
	"github.com/VeloraJewelry/storefront_api/internal/service"
)

// envelope mirrors the response wrapper for decoding in tests.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func fixtureSnapshot() *models.Snapshot {
	price := func(v float64) *float64 { return &v }
	return &models.Snapshot{
		Products: []models.Product{
			{
				ID:        "p-ring",
				Name:      "Aurora Ring",
				Slug:      "aurora-ring",
				BasePrice: price(95),
				Options: []models.Option{
					{Name: "Color", Choices: []models.Choice{{Name: "Gold"}, {Name: "Silver"}}},
				},
				Variants: []models.Variant{
					{ID: "v-gold", Pairs: []models.OptionPair{{OptionName: "Color", ChoiceName: "Gold"}}, Price: 110, InStock: true},
					{ID: "v-silver", Pairs: []models.OptionPair{{OptionName: "Color", ChoiceName: "Silver"}}, Price: 95, InStock: false},
				},
				CategoryIDs: []string{"rings"},
			},
			{
				ID:          "p-pendant",
				Name:        "Luna Pendant",
				Slug:        "luna-pendant",
				BasePrice:   price(240),
				CategoryIDs: []string{"necklaces"},
			},
		},
		Categories: []models.Category{
			{ID: "rings", Name: "Rings", Slug: "rings"},
			{ID: "necklaces", Name: "Necklaces", Slug: "necklaces"},
		},
		FetchedAt: time.Now(),
	}
}

// newCatalogRouter wires the handler against an in-memory snapshot. The read
// endpoints never touch the fetcher, so nil is fine there.
func newCatalogRouter(snap *models.Snapshot) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := catalog.NewStore()
	if snap != nil {
		store.Swap(snap)
	}
	h := NewCatalogHandler(service.NewCatalogService(nil, store))

	router := gin.New()
	router.GET("/v1/catalog/products", h.GetProducts)
	router.GET("/v1/catalog/products/:id", h.GetProduct)
	router.POST("/v1/catalog/products/:id/resolve", h.ResolveSelection)
	router.POST("/v1/catalog/products/:id/availability", h.GetAvailability)
	router.GET("/v1/catalog/categories", h.GetCategories)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGetProducts_BeforeFirstRefresh(t *testing.T) {
	router := newCatalogRouter(nil)

	w, env := doRequest(t, router, http.MethodGet, "/v1/catalog/products", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CATALOG_UNAVAILABLE", env.Error.Code)
}

func TestGetProducts_FilterAndSort(t *testing.T) {
	router := newCatalogRouter(fixtureSnapshot())

	_, env := doRequest(t, router, http.MethodGet, "/v1/catalog/products?sort=price-desc", "")

	var data struct {
		Products []models.Product `json:"products"`
		Total    int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Equal(t, 2, data.Total)
	assert.Equal(t, "Luna Pendant", data.Products[0].Name)
	assert.Equal(t, "Aurora Ring", data.Products[1].Name)
}

func TestGetProducts_CategoryFilter(t *testing.T) {
	router := newCatalogRouter(fixtureSnapshot())

	_, env := doRequest(t, router, http.MethodGet, "/v1/catalog/products?category=necklaces", "")

	var data struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Products, 1)
	assert.Equal(t, "p-pendant", data.Products[0].ID)
}

func TestGetProducts_ChoiceParam(t *testing.T) {
	router := newCatalogRouter(fixtureSnapshot())

	_, env := doRequest(t, router, http.MethodGet, "/v1/catalog/products?choice=Color:Gold", "")

	var data struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Products, 1)
	assert.Equal(t, "p-ring", data.Products[0].ID)
}

func TestGetProducts_InvalidMaxPrice(t *testing.T) {
	router := newCatalogRouter(fixtureSnapshot())

	for _, q := range []string{"maxPrice=abc", "maxPrice=-5"} {
		w, env := doRequest(t, router, http.MethodGet, "/v1/catalog/products?"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		require.NotNil(t, env.Error, q)
		assert.Equal(t, "INVALID_FILTER", env.Error.Code, q)
	}
}

func TestGetProducts_MalformedChoiceParam(t *testing.T) {
	router := newCatalogRouter(fixtureSnapshot())

	w, env := doRequest(t, router, http.MethodGet, "/v1/catalog/products?choice=ColorGold", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_FILTER", env.Error.Code)
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newCatalogRouter(fixtureSnapshot())

	w, env := doRequest(t, router, http.MethodGet, "/v1/catalog/products/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
}

func TestGetCategories(t *testing.T) {
	router := newCatalogRouter(fixtureSnapshot())

	w, env := doRequest(t, router, http.MethodGet, "/v1/catalog/categories", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Categories []models.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Categories, 2)
}

func TestResolveSelection(t *testing.T) {
	router := newCatalogRouter(fixtureSnapshot())

	w, env := doRequest(t, router, http.MethodPost, "/v1/catalog/products/p-ring/resolve",
		`{"selection":{"Color":"Gold"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Result service.ResolveResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, catalog.SelectionValid, data.Result.State)
	require.NotNil(t, data.Result.Variant)
	assert.Equal(t, "v-gold", data.Result.Variant.ID)
	assert.Equal(t, 110.0, data.Result.DisplayPrice)
	assert.True(t, data.Result.InStock)
}

func TestResolveSelection_BadBody(t *testing.T) {
	router := newCatalogRouter(fixtureSnapshot())

	w, env := doRequest(t, router, http.MethodPost, "/v1/catalog/products/p-ring/resolve", `{"selection":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_SELECTION", env.Error.Code)
}

func TestGetAvailability(t *testing.T) {
	router := newCatalogRouter(fixtureSnapshot())

	w, env := doRequest(t, router, http.MethodPost, "/v1/catalog/products/p-ring/availability",
		`{"selection":{}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Availability service.ChoiceAvailability `json:"availability"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Availability["Color"]["Gold"])
	assert.True(t, data.Availability["Color"]["Silver"])
}
