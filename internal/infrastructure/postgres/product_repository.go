package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/catalog"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/entity"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = "id, name, description, price, quantity, sold, photo, date_created, category_id"

// Columnas de ordenamiento permitidas. El campo llega ya validado por
// catalog.NormalizeSortBy, pero la lista blanca evita interpolar texto del
// cliente en el ORDER BY.
var sortColumns = map[catalog.SortField]string{
	catalog.SortDateCreated: "date_created",
	catalog.SortPrice:       "price",
	catalog.SortSold:        "sold",
	catalog.SortName:        "name",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, quantity, sold, photo, date_created, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price, product.Quantity,
		product.Sold, product.Photo, product.DateCreated, product.CategoryID,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Sold,
		&p.Photo, &p.DateCreated, &p.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List ejecuta una consulta de productos armando las cláusulas WHERE /
// ORDER BY / LIMIT según las condiciones presentes en q.
func (r *ProductRepo) List(q repository.ProductQuery) ([]*entity.Product, error) {
	var (
		sb    strings.Builder
		args  []any
		conds []string
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	sb.WriteString(`SELECT ` + productColumns + ` FROM products`)

	if !q.Scope.Unrestricted {
		conds = append(conds, "category_id = ANY("+arg(q.Scope.CategoryIDs)+")")
	}
	if q.Search != "" {
		p := arg("%" + q.Search + "%")
		conds = append(conds, "(name ILIKE "+p+" OR description ILIKE "+p+")")
	}
	if q.PriceMin != nil {
		conds = append(conds, "price >= "+arg(*q.PriceMin))
	}
	if q.PriceMax != nil {
		conds = append(conds, "price < "+arg(*q.PriceMax))
	}
	if q.ExcludeID != 0 {
		conds = append(conds, "id <> "+arg(q.ExcludeID))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	if col, ok := sortColumns[q.SortBy]; ok {
		sb.WriteString(" ORDER BY " + col)
		if q.Order == catalog.OrderDesc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}
	if q.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(q.Limit))
	}

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity,
			&p.Sold, &p.Photo, &p.DateCreated, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, quantity = $5, sold = $6, photo = $7, category_id = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.Quantity, product.Sold, product.Photo, product.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
