package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/entity"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de solo lectura del puerto CategoryRepository
// sobre PostgreSQL. Las categorías se administran en otro servicio.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de lectura de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	query := `SELECT id, name, COALESCE(parent_id, 0) FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name, &c.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListByParent lista las hijas directas de una categoría.
func (r *CategoryRepo) ListByParent(parentID int64) ([]*entity.Category, error) {
	query := `SELECT id, name, COALESCE(parent_id, 0) FROM categories WHERE parent_id = $1 ORDER BY name`
	return r.list(query, parentID)
}

// ListRoots lista las categorías sin padre.
func (r *CategoryRepo) ListRoots() ([]*entity.Category, error) {
	query := `SELECT id, name, COALESCE(parent_id, 0) FROM categories WHERE COALESCE(parent_id, 0) = 0 ORDER BY name`
	return r.list(query)
}

func (r *CategoryRepo) list(query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
