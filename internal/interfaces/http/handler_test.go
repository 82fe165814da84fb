package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-catalogo/internal/application/usecase"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/catalog"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/entity"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/repository"
	apphttp "github.com/tu-usuario/tienda-catalogo/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: app Fiber completa con repositorios en memoria, para
// verificar el contrato HTTP (códigos de estado y forma de los cuerpos).
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta el router completo sobre los repos dados.
func buildTestApp(products *fakeProductRepo, categories *fakeCategoryRepo, uploadDir string) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC: usecase.NewCatalogUseCase(products, categories),
		ProductUC: usecase.NewProductUseCase(products, categories),
		UploadDir: uploadDir,
	})
	return app
}

// buildStoreApp app con el catálogo de prueba estándar: Ropa (raíz) con
// Camisas y Pantalones, Libros (raíz sin hijas) y ocho productos.
func buildStoreApp(t *testing.T) (*fiber.App, *fakeProductRepo) {
	t.Helper()
	products, categories := seedCatalog()
	return buildTestApp(products, categories, t.TempDir()), products
}

func seedCatalog() (*fakeProductRepo, *fakeCategoryRepo) {
	categories := newFakeCategoryRepo(
		&entity.Category{ID: 1, Name: "Ropa"},
		&entity.Category{ID: 2, Name: "Camisas", ParentID: 1},
		&entity.Category{ID: 3, Name: "Pantalones", ParentID: 1},
		&entity.Category{ID: 4, Name: "Libros"},
	)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mk := func(id int64, name, desc string, cat int64, price int64, sold int) *entity.Product {
		return &entity.Product{
			ID:          id,
			Name:        name,
			Description: desc,
			Price:       decimal.NewFromInt(price),
			Sold:        sold,
			DateCreated: base.Add(time.Duration(id) * time.Hour),
			CategoryID:  cat,
		}
	}
	products := newFakeProductRepo(
		mk(1, "Camisa blanca", "algodón clásico", 2, 10, 5),
		mk(2, "Pantalón azul", "mezclilla", 3, 60, 20),
		mk(3, "Camisa negra", "camisa de vestir", 2, 120, 8),
		mk(4, "Novela policiaca", "tapa blanda", 4, 30, 50),
		mk(5, "Camisa roja", "manga corta", 2, 45, 2),
		mk(6, "Pantalón corto", "para verano", 3, 80, 15),
		mk(7, "Chaqueta", "impermeable", 1, 200, 1),
		mk(8, "Atlas mundial", "edición ilustrada", 4, 60, 1),
	)
	return products, categories
}

// doGet lanza una petición GET y devuelve la respuesta.
func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doJSON lanza una petición con cuerpo JSON.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON de la respuesta en out.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// bodyString devuelve el cuerpo como texto (para asserts de mensajes).
func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// productJSON subconjunto de campos del producto que verifican los tests.
type productJSON struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Photo    string `json:"photo"`
	Category int64  `json:"category"`
}

func productIDs(list []productJSON) []int64 {
	out := make([]int64, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria (mismo contrato que los adaptadores de PostgreSQL)
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
	nextID   int64
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
