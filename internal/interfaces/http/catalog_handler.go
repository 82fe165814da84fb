package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-catalogo/internal/application/dto"
	"github.com/tu-usuario/tienda-catalogo/internal/application/usecase"
	"github.com/tu-usuario/tienda-catalogo/internal/domain"
)

// CatalogHandler maneja las peticiones públicas del catálogo (storefront).
// Los mensajes y códigos de estado replican el contrato que ya consume el
// frontend: entradas no enteras responden 404 y los resultados vacíos de
// search/filter/related responden 200 con cuerpo de error.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// GetByID godoc
// @Summary      Detalle de producto
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product ID must be an integer"})
	}
	out, err := h.uc.GetProduct(id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product with this ID does not exist"})
	}
	return c.JSON(dto.ProductEnvelope{Product: *out})
}

// List godoc
// @Summary      Listado principal de productos
// @Tags         products
// @Produce      json
// @Param        sortBy  query  string  false  "date_created | price | sold | name"
// @Param        order   query  string  false  "asc | desc"
// @Param        limit   query  int     false  "Tope de resultados"  default(6)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Limit must be an integer"})
		}
		limit = n
	}
	out, err := h.uc.ListProducts(c.Query("sortBy"), c.Query("order"), limit)
	if err != nil {
		return internalError(c, err)
	}
	if len(out) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No products to list"})
	}
	return c.JSON(dto.ProductListResponse{Products: out})
}

// Search godoc
// @Summary      Búsqueda por texto y categoría
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchRequest  true  "Criterios de búsqueda"
// @Success      200  {object}  dto.SearchProductsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/search [post]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	categoryID, err := in.CategoryID.Int()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Category ID must be an integer"})
	}
	out, err := h.uc.Search(categoryID, in.Search)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Category not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.SearchProductsResponse{SearchProducts: out})
}

// Related godoc
// @Summary      Productos relacionados (misma categoría, top 3 por vendidos)
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.RelatedProductsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id}/related [get]
func (h *CatalogHandler) Related(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product ID must be an integer"})
	}
	out, err := h.uc.Related(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product with this product ID does not exist"})
		}
		return internalError(c, err)
	}
	// Sin relacionados no es un fallo: el frontend espera 200 con error.
	if len(out) == 0 {
		return c.JSON(dto.ErrorResponse{Error: "No related products found"})
	}
	return c.JSON(dto.RelatedProductsResponse{RelatedProducts: out})
}

// Filter godoc
// @Summary      Filtro por categoría, rango de precio y orden
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FilterRequest  true  "Criterios de filtro"
// @Success      200  {object}  dto.FilteredProductsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/filter [post]
func (h *CatalogHandler) Filter(c *fiber.Ctx) error {
	var in dto.FilterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	categoryID, err := in.CategoryID.Int()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Category ID must be an integer"})
	}
	out, err := h.uc.Filter(categoryID, in.PriceRange, in.SortBy, in.Order)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "This category does not exist"})
		}
		return internalError(c, err)
	}
	if len(out) == 0 {
		return c.JSON(dto.ErrorResponse{Error: "No products found"})
	}
	return c.JSON(dto.FilteredProductsResponse{FilteredProducts: out})
}

// Categories godoc
// @Summary      Árbol de categorías para el sidebar de filtros
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.CategoryListResponse{Categories: out})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}
