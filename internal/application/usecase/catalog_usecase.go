package usecase

import (
	"github.com/tu-usuario/tienda-catalogo/internal/application/dto"
	"github.com/tu-usuario/tienda-catalogo/internal/domain"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/catalog"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/entity"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/repository"
)

// Valores por defecto del listado principal y tope de relacionados.
const (
	defaultListLimit = 6
	relatedLimit     = 3
)

// CatalogUseCase consultas de lectura del catálogo: detalle, listado,
// búsqueda, relacionados y filtro. Toda restricción por categoría pasa por
// ResolveScope para que las tres operaciones compartan la misma regla de
// expansión padre/hijos.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

// ResolveScope expande un id de categoría al conjunto concreto de ids a
// filtrar:
//   - 0 (centinela) → sin restricción.
//   - categoría hija → solo ella (nunca arrastra hermanos ni al padre).
//   - raíz sin hijas → solo ella.
//   - raíz con hijas → ella más sus hijas directas.
//
// El modelo soporta un solo nivel: jamás se expande más allá de hijas
// directas. Devuelve domain.ErrNotFound si la categoría no existe.
func (uc *CatalogUseCase) ResolveScope(categoryID int64) (catalog.Scope, error) {
	if categoryID == catalog.AllCategories {
		return catalog.UnrestrictedScope(), nil
	}
	cat, err := uc.categories.GetByID(categoryID)
	if err != nil {
		return catalog.Scope{}, err
	}
	if cat == nil {
		return catalog.Scope{}, domain.ErrNotFound
	}
	if !cat.IsRoot() {
		return catalog.ScopeOf(cat.ID), nil
	}
	children, err := uc.categories.ListByParent(cat.ID)
	if err != nil {
		return catalog.Scope{}, err
	}
	ids := make([]int64, 0, len(children)+1)
	ids = append(ids, cat.ID)
	for _, child := range children {
		ids = append(ids, child.ID)
	}
	return catalog.ScopeOf(ids...), nil
}

// GetProduct obtiene un producto por id. Devuelve (nil, nil) si no existe.
func (uc *CatalogUseCase) GetProduct(id int64) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// ListProducts listado principal con orden y tope. Un sortBy no reconocido
// cae a date_created y un limit ≤ 0 cae a 6. Si la dirección no es asc ni
// desc se devuelve el conjunto completo, ordenado ascendente y sin tope
// (comportamiento histórico del frontend, que omite limit en ese caso).
func (uc *CatalogUseCase) ListProducts(sortBy, order string, limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	q := repository.ProductQuery{
		Scope:  catalog.UnrestrictedScope(),
		SortBy: catalog.NormalizeSortBy(sortBy),
		Order:  catalog.NormalizeOrder(order),
	}
	if q.Order != catalog.OrderNone {
		q.Limit = limit
	}
	list, err := uc.products.List(q)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search búsqueda por texto libre y/o categoría. Con texto vacío devuelve
// todos los productos por fecha de creación descendente; con texto, los que
// contienen la subcadena en nombre o descripción (orden natural del almacén).
// El scope de categoría se aplica después y solo cuando categoryID ≠ 0, en el
// mismo orden de composición que el comportamiento de referencia.
func (uc *CatalogUseCase) Search(categoryID int64, search string) ([]dto.ProductResponse, error) {
	q := repository.ProductQuery{Scope: catalog.UnrestrictedScope()}
	if search == "" {
		q.SortBy = catalog.SortDateCreated
		q.Order = catalog.OrderDesc
	} else {
		q.Search = search
	}
	if categoryID != catalog.AllCategories {
		scope, err := uc.ResolveScope(categoryID)
		if err != nil {
			return nil, err
		}
		q.Scope = scope
		q.SortBy = catalog.SortDateCreated
		q.Order = catalog.OrderDesc
	}
	list, err := uc.products.List(q)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Related hasta 3 productos de la misma categoría (expandida con la regla de
// scope), ordenados por vendidos descendente y excluyendo el propio producto.
// Devuelve domain.ErrNotFound si el producto no existe; una lista vacía no es
// un error.
func (uc *CatalogUseCase) Related(productID int64) ([]dto.ProductResponse, error) {
	p, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	scope, err := uc.ResolveScope(p.CategoryID)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.List(repository.ProductQuery{
		Scope:     scope,
		SortBy:    catalog.SortSold,
		Order:     catalog.OrderDesc,
		Limit:     relatedLimit,
		ExcludeID: p.ID,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Filter filtro por categoría, rango de precio y orden. La categoría se
// expande con ResolveScope (domain.ErrNotFound si no existe); un rango de
// precio no reconocido se ignora en silencio; desc invierte y cualquier otra
// dirección ordena ascendente. Nunca aplica tope.
func (uc *CatalogUseCase) Filter(categoryID int64, priceRange, sortBy, order string) ([]dto.ProductResponse, error) {
	scope, err := uc.ResolveScope(categoryID)
	if err != nil {
		return nil, err
	}
	min, max := catalog.ParsePriceRange(priceRange)
	list, err := uc.products.List(repository.ProductQuery{
		Scope:    scope,
		PriceMin: min,
		PriceMax: max,
		SortBy:   catalog.NormalizeSortBy(sortBy),
		Order:    catalog.NormalizeOrder(order),
	})
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListCategories árbol completo de categorías: raíces con sus hijas directas
// anidadas, para el sidebar de filtros del storefront.
func (uc *CatalogUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	roots, err := uc.categories.ListRoots()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(roots))
	for _, root := range roots {
		children, err := uc.categories.ListByParent(root.ID)
		if err != nil {
			return nil, err
		}
		node := dto.CategoryResponse{ID: root.ID, Name: root.Name}
		for _, child := range children {
			node.SubCategories = append(node.SubCategories, dto.CategoryResponse{
				ID:   child.ID,
				Name: child.Name,
			})
		}
		out = append(out, node)
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Sold:        p.Sold,
		Photo:       p.Photo,
		DateCreated: p.DateCreated,
		Category:    p.CategoryID,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
