package usecase_test

import (
	"sort"
	"strings"

	"github.com/tu-usuario/tienda-catalogo/internal/domain/catalog"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/entity"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. fakeProductRepo
// honra la semántica completa de ProductQuery (scope, búsqueda, precio,
// exclusión, orden y tope) para poder verificar propiedades de extremo a
// extremo sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products  []*entity.Product
	nextID    int64
	lastQuery repository.ProductQuery
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: products}
	for _, p := range products {
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(q repository.ProductQuery) ([]*entity.Product, error) {
	r.lastQuery = q
	var out []*entity.Product
	for _, p := range r.products {
		if !q.Scope.Contains(p.CategoryID) {
			continue
		}
		if q.Search != "" {
			s := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(p.Name), s) &&
				!strings.Contains(strings.ToLower(p.Description), s) {
				continue
			}
		}
		if q.PriceMin != nil && p.Price.LessThan(*q.PriceMin) {
			continue
		}
		if q.PriceMax != nil && !p.Price.LessThan(*q.PriceMax) {
			continue
		}
		if q.ExcludeID != 0 && p.ID == q.ExcludeID {
			continue
		}
		out = append(out, p)
	}
	if q.SortBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			if q.Order == catalog.OrderDesc {
				return productLess(q.SortBy, out[j], out[i])
			}
			return productLess(q.SortBy, out[i], out[j])
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func productLess(f catalog.SortField, a, b *entity.Product) bool {
	switch f {
	case catalog.SortPrice:
		return a.Price.LessThan(b.Price)
	case catalog.SortSold:
		return a.Sold < b.Sold
	case catalog.SortName:
		return a.Name < b.Name
	default:
		return a.DateCreated.Before(b.DateCreated)
	}
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			clone := *p
			r.products[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: categories}
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ListByParent(parentID int64) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListRoots() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.ParentID == 0 {
			out = append(out, c)
		}
	}
	return out, nil
}
