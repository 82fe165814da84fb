package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse serialización de un producto hacia el cliente.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Sold        int             `json:"sold"`
	Photo       string          `json:"photo,omitempty"`
	DateCreated time.Time       `json:"date_created"`
	Category    int64           `json:"category"`
}

// ProductEnvelope respuesta de detalle ({"product": {...}}).
type ProductEnvelope struct {
	Product ProductResponse `json:"product"`
}

// ProductListResponse respuesta del listado principal.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// SearchProductsResponse respuesta de búsqueda por texto/categoría.
type SearchProductsResponse struct {
	SearchProducts []ProductResponse `json:"search_products"`
}

// RelatedProductsResponse respuesta de productos relacionados.
type RelatedProductsResponse struct {
	RelatedProducts []ProductResponse `json:"related_products"`
}

// FilteredProductsResponse respuesta del filtro por precio y orden.
type FilteredProductsResponse struct {
	FilteredProducts []ProductResponse `json:"filtered_products"`
}

// SearchRequest entrada de POST /products/search.
type SearchRequest struct {
	CategoryID IntField `json:"category_id"`
	Search     string   `json:"search"`
}

// FilterRequest entrada de POST /products/filter.
type FilterRequest struct {
	CategoryID IntField `json:"category_id"`
	PriceRange string   `json:"price_range"`
	SortBy     string   `json:"sort_by"`
	Order      string   `json:"order"`
}

// CreateProductInput campos crudos del formulario multipart de alta.
// La validación campo a campo ocurre en el caso de uso.
type CreateProductInput struct {
	Name        string
	Description string
	Price       string
	Quantity    string
	Sold        string
	CategoryID  string
	Photo       string // ruta ya almacenada del archivo subido (opcional)
}

// UpdateProductRequest entrada JSON para actualización parcial.
// Los campos nil no se tocan.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Sold        *int             `json:"sold"`
	CategoryID  *int64           `json:"category"`
}
