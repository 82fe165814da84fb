package dto

// CategoryResponse nodo del árbol de categorías para el sidebar de filtros.
type CategoryResponse struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	SubCategories []CategoryResponse `json:"sub_categories,omitempty"`
}

// CategoryListResponse respuesta de GET /categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
