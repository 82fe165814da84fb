package repository

import "github.com/tu-usuario/tienda-catalogo/internal/domain/entity"

// CategoryRepository define el puerto de lectura para Category (DIP).
// Las categorías se administran fuera de este servicio; aquí solo se leen.
// GetByID devuelve (nil, nil) cuando la categoría no existe.
type CategoryRepository interface {
	GetByID(id int64) (*entity.Category, error)
	ListByParent(parentID int64) ([]*entity.Category, error)
	ListRoots() ([]*entity.Category, error)
}
