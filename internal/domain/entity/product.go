package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado en el catálogo de la tienda.
// Sold lo incrementa el flujo de órdenes; el catálogo solo lo lee para ordenar.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, nunca negativo
	Quantity    int
	Sold        int
	Photo       string // ruta relativa del archivo subido; vacío = sin foto
	DateCreated time.Time
	CategoryID  int64 // obligatorio: todo producto pertenece a una categoría
}
