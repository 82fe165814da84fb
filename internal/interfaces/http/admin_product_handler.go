package http

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/tienda-catalogo/internal/application/dto"
	"github.com/tu-usuario/tienda-catalogo/internal/application/usecase"
	"github.com/tu-usuario/tienda-catalogo/internal/domain"
)

// AdminProductHandler maneja las peticiones de administración de productos.
type AdminProductHandler struct {
	uc        *usecase.ProductUseCase
	uploadDir string
}

// NewAdminProductHandler construye el handler. uploadDir es el directorio
// donde se guardan las fotos subidas.
func NewAdminProductHandler(uc *usecase.ProductUseCase, uploadDir string) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, uploadDir: uploadDir}
}

// Create godoc
// @Summary      Crear producto
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Nombre"
// @Param        description  formData  string  false  "Descripción"
// @Param        price        formData  number  true   "Precio"
// @Param        quantity     formData  int     false  "Existencias"
// @Param        sold         formData  int     false  "Vendidos"
// @Param        category     formData  int     true   "ID de categoría"
// @Param        photo        formData  file    false  "Foto del producto"
// @Success      201  {object}  dto.ProductEnvelope
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Router       /admin/products [post]
func (h *AdminProductHandler) Create(c *fiber.Ctx) error {
	in := dto.CreateProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Quantity:    c.FormValue("quantity"),
		Sold:        c.FormValue("sold"),
		CategoryID:  c.FormValue("category"),
	}
	if file, err := c.FormFile("photo"); err == nil && file != nil {
		// Nombre aleatorio para no pisar archivos con el mismo nombre original.
		name := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
			return internalError(c, err)
		}
		in.Photo = "photos/" + name
	}
	out, fieldErrs, err := h.uc.Create(in)
	if err != nil {
		return internalError(c, err)
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: fieldErrs})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductEnvelope{Product: *out})
}

// Update godoc
// @Summary      Actualizar producto (merge parcial)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.ProductEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/products/{id} [put]
func (h *AdminProductHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product ID must be an integer"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Product could not be updated"})
		}
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product with this product ID does not exist"})
	}
	return c.JSON(dto.ProductEnvelope{Product: *out})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         admin
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/products/{id} [delete]
func (h *AdminProductHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product ID must be an integer"})
	}
	found, err := h.uc.Delete(id)
	if err != nil {
		return internalError(c, err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product with this product ID does not exist"})
	}
	return c.JSON(dto.MessageResponse{Message: "Product deleted"})
}
