package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/catalog"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/entity"
)

// ProductQuery describe una consulta de productos. Los campos en cero
// significan "sin esa condición"; el adaptador traduce cada condición
// presente a su cláusula SQL.
type ProductQuery struct {
	Scope     catalog.Scope     // categorías permitidas (o irrestricto)
	Search    string            // subcadena sobre name/description, sin distinguir mayúsculas
	PriceMin  *decimal.Decimal  // inclusivo
	PriceMax  *decimal.Decimal  // exclusivo
	SortBy    catalog.SortField // vacío = orden natural del almacén
	Order     catalog.Order     // OrderNone con SortBy presente = ascendente
	Limit     int               // 0 = sin límite
	ExcludeID int64             // 0 = ninguno
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List(q ProductQuery) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
