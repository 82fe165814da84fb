package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-catalogo/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	ProductUC *usecase.ProductUseCase
	UploadDir string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	catalogHandler := NewCatalogHandler(deps.CatalogUC)

	// Catálogo (público). search y filter van antes de :id para que Fiber
	// no los capture como parámetro.
	products := app.Group("/products")
	products.Get("/", catalogHandler.List)
	products.Post("/search", catalogHandler.Search)
	products.Post("/filter", catalogHandler.Filter)
	products.Get("/:id", catalogHandler.GetByID)
	products.Get("/:id/related", catalogHandler.Related)

	app.Get("/categories", catalogHandler.Categories)

	// Administración de productos
	admin := app.Group("/admin/products")
	adminHandler := NewAdminProductHandler(deps.ProductUC, deps.UploadDir)
	admin.Post("/", adminHandler.Create)
	admin.Put("/:id", adminHandler.Update)
	admin.Delete("/:id", adminHandler.Delete)
}
