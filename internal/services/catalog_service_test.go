package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eagleeyes/storefront/internal/models"
	repo "github.com/eagleeyes/storefront/internal/repository"
)

func productIDs(ps []models.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestListProducts(t *testing.T) {
	f := newFixture(t, testConfig())

	tests := []struct {
		name string
		q    ProductQuery
		want []string
	}{
		{name: "price ascending", q: ProductQuery{Sort: SortPriceAsc}, want: []string{"p3", "p1", "p6", "p4", "p2", "p5"}},
		{name: "price descending", q: ProductQuery{Sort: SortPriceDesc}, want: []string{"p5", "p2", "p4", "p6", "p1", "p3"}},
		{name: "category", q: ProductQuery{Category: "Solar Energy", Sort: SortPriceAsc}, want: []string{"p2", "p5"}},
		{name: "all category", q: ProductQuery{Category: AllCategories, MaxPrice: 300000, Sort: SortPriceAsc}, want: []string{"p3", "p1"}},
		{name: "search ignores case", q: ProductQuery{Search: "SOLAR", Sort: SortPriceAsc}, want: []string{"p2", "p5"}},
		{name: "nothing matches", q: ProductQuery{Search: "drone"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productIDs(f.catalog.ListProducts(tt.q)))
		})
	}
}

func TestListProducts_NameSort(t *testing.T) {
	f := newFixture(t, testConfig())
	ps := f.catalog.ListProducts(ProductQuery{Sort: SortNameAsc})
	require.Len(t, ps, 6)
	assert.Equal(t, "10kWh Solar Battery", ps[0].Name)
	assert.Equal(t, "Smart Video Doorbell", ps[len(ps)-1].Name)
}

func TestCategoriesAndMaxPrice(t *testing.T) {
	f := newFixture(t, testConfig())
	assert.Equal(t, []string{"All", "Security", "Solar Energy", "General Security"}, f.catalog.ProductCategories())
	assert.Equal(t, int64(12000000), f.catalog.MaxProductPrice())
}

func TestCartable(t *testing.T) {
	f := newFixture(t, testConfig())

	item, err := f.catalog.Cartable(models.KindCourse, "c2")
	require.NoError(t, err)
	assert.Equal(t, int64(750000), item.UnitPrice())

	_, err = f.catalog.Cartable(models.KindBlogPost, "b1")
	require.ErrorIs(t, err, ErrUnknownKind)

	item, err = f.catalog.Cartable(models.KindProduct, "nope")
	require.ErrorIs(t, err, repo.ErrNotFound)
	assert.Nil(t, item)
}

func TestStockLabel(t *testing.T) {
	assert.Equal(t, "50 in stock", StockLabel(models.Product{Stock: 50}))
	assert.Equal(t, "Out of stock", StockLabel(models.Product{}))
}
