package catalog

import "github.com/shopspring/decimal"

// AllCategories es el id centinela que significa "todas las categorías";
// no referencia una categoría real.
const AllCategories int64 = 0

// Scope es el conjunto de ids de categoría al que se restringe una consulta
// de productos, o el centinela "sin restricción".
type Scope struct {
	Unrestricted bool
	CategoryIDs  []int64
}

// UnrestrictedScope devuelve el scope sin restricción de categoría.
func UnrestrictedScope() Scope {
	return Scope{Unrestricted: true}
}

// ScopeOf devuelve un scope restringido a los ids indicados.
func ScopeOf(ids ...int64) Scope {
	return Scope{CategoryIDs: ids}
}

// Contains indica si el scope incluye la categoría (siempre true si es
// irrestricto).
func (s Scope) Contains(categoryID int64) bool {
	if s.Unrestricted {
		return true
	}
	for _, id := range s.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// SortField campo de ordenamiento reconocido por el catálogo.
type SortField string

const (
	SortDateCreated SortField = "date_created"
	SortPrice       SortField = "price"
	SortSold        SortField = "sold"
	SortName        SortField = "name"
)

// NormalizeSortBy valida el campo de ordenamiento recibido del cliente.
// Cualquier valor no reconocido (incluido vacío) cae a date_created.
func NormalizeSortBy(s string) SortField {
	switch SortField(s) {
	case SortDateCreated, SortPrice, SortSold, SortName:
		return SortField(s)
	default:
		return SortDateCreated
	}
}

// Order dirección de ordenamiento.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
	// OrderNone: el cliente no pidió dirección; se usa el orden natural
	// ascendente del almacén y, en el listado principal, sin tope.
	OrderNone Order = ""
)

// NormalizeOrder valida la dirección recibida del cliente.
func NormalizeOrder(s string) Order {
	switch Order(s) {
	case OrderAsc, OrderDesc:
		return Order(s)
	default:
		return OrderNone
	}
}

// Rangos de precio fijos que envía el frontend. Intervalos semiabiertos
// [min, max); max nil = sin tope superior.
var priceRanges = map[string]struct{ min, max int64 }{
	"1 - 49":     {1, 50},
	"50 - 99":    {50, 100},
	"100 - 199":  {100, 200},
	"200 - 499":  {200, 500},
	"Mas de 500": {500, -1},
}

// ParsePriceRange traduce el literal de rango de precio a límites [min, max).
// Un valor no reconocido (incluido vacío) significa "sin filtro de precio";
// nunca es un error.
func ParsePriceRange(s string) (min, max *decimal.Decimal) {
	r, ok := priceRanges[s]
	if !ok {
		return nil, nil
	}
	lo := decimal.NewFromInt(r.min)
	min = &lo
	if r.max >= 0 {
		hi := decimal.NewFromInt(r.max)
		max = &hi
	}
	return min, max
}
