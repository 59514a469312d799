package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eagleeyes/storefront/internal/models"
	repo "github.com/eagleeyes/storefront/internal/repository"
)

const AllCategories = "All"

type ProductSort string

const (
	SortNameAsc   ProductSort = "name-asc"
	SortNameDesc  ProductSort = "name-desc"
	SortPriceAsc  ProductSort = "price-asc"
	SortPriceDesc ProductSort = "price-desc"
)

// ProductQuery filters the store listing. Zero values match everything.
type ProductQuery struct {
	Category string
	Search   string
	MaxPrice int64
	Sort     ProductSort
}

// CatalogService answers the read side of the store, training and blog pages.
type CatalogService struct {
	products repo.Collection[models.Product]
	courses  repo.Collection[models.Course]
	posts    repo.Collection[models.BlogPost]
}

func NewCatalogService(p repo.Collection[models.Product], c repo.Collection[models.Course], b repo.Collection[models.BlogPost]) *CatalogService {
	return &CatalogService{products: p, courses: c, posts: b}
}

func (s *CatalogService) ListProducts(q ProductQuery) []models.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	var out []models.Product
	for _, p := range s.products.List() {
		if q.Category != "" && q.Category != AllCategories && p.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch q.Sort {
		case SortPriceAsc:
			return out[i].Price < out[j].Price
		case SortPriceDesc:
			return out[i].Price > out[j].Price
		case SortNameDesc:
			return strings.ToLower(out[i].Name) > strings.ToLower(out[j].Name)
		default:
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		}
	})
	return out
}

// ProductCategories is "All" followed by each category in first-seen order.
func (s *CatalogService) ProductCategories() []string {
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, p := range s.products.List() {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

func (s *CatalogService) MaxProductPrice() int64 {
	var highest int64
	for _, p := range s.products.List() {
		if p.Price > highest {
			highest = p.Price
		}
	}
	return highest
}

func (s *CatalogService) GetProduct(id string) (models.Product, error) {
	return s.products.Get(id)
}

func (s *CatalogService) ListCourses() []models.Course { return s.courses.List() }

func (s *CatalogService) GetCourse(id string) (models.Course, error) { return s.courses.Get(id) }

func (s *CatalogService) ListBlogPosts() []models.BlogPost { return s.posts.List() }

func (s *CatalogService) GetBlogPost(id string) (models.BlogPost, error) { return s.posts.Get(id) }

// Cartable looks up the live catalog record that a cart line would snapshot.
func (s *CatalogService) Cartable(kind models.RecordKind, id string) (models.Cartable, error) {
	var (
		item models.Cartable
		err  error
	)
	switch kind {
	case models.KindProduct:
		item, err = s.products.Get(id)
	case models.KindCourse:
		item, err = s.courses.Get(id)
	default:
		return nil, fmt.Errorf("%w: %q cannot go in a cart", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// StockLabel is the availability line shown on a product.
func StockLabel(p models.Product) string {
	if p.Stock > 0 {
		return fmt.Sprintf("%d in stock", p.Stock)
	}
	return "Out of stock"
}
