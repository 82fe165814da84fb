package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-catalogo/internal/application/dto"
	"github.com/tu-usuario/tienda-catalogo/internal/domain"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/entity"
	"github.com/tu-usuario/tienda-catalogo/internal/domain/repository"
)

// ProductUseCase casos de uso de administración (alta, actualización parcial
// y borrado de productos). Las lecturas del storefront viven en CatalogUseCase.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// Create valida los campos crudos del formulario y persiste el producto.
// Devuelve los errores de validación agrupados por campo; si hay alguno no se
// escribe nada.
func (uc *ProductUseCase) Create(in dto.CreateProductInput) (*dto.ProductResponse, dto.FieldErrors, error) {
	errs := dto.FieldErrors{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs.Add("name", "This field is required.")
	}

	price := decimal.Zero
	if strings.TrimSpace(in.Price) == "" {
		errs.Add("price", "This field is required.")
	} else if p, err := decimal.NewFromString(strings.TrimSpace(in.Price)); err != nil {
		errs.Add("price", "A valid number is required.")
	} else if p.IsNegative() {
		errs.Add("price", "Price must not be negative.")
	} else {
		price = p
	}

	quantity := parseNonNegative(in.Quantity, "quantity", errs)
	sold := parseNonNegative(in.Sold, "sold", errs)

	var categoryID int64
	if strings.TrimSpace(in.CategoryID) == "" {
		errs.Add("category", "This field is required.")
	} else if id, err := strconv.ParseInt(strings.TrimSpace(in.CategoryID), 10, 64); err != nil {
		errs.Add("category", "A valid integer is required.")
	} else {
		cat, err := uc.categories.GetByID(id)
		if err != nil {
			return nil, nil, err
		}
		if cat == nil {
			errs.Add("category", "Invalid category.")
		} else {
			categoryID = id
		}
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}

	product := &entity.Product{
		Name:        name,
		Description: in.Description,
		Price:       price,
		Quantity:    quantity,
		Sold:        sold,
		Photo:       in.Photo,
		DateCreated: time.Now(),
		CategoryID:  categoryID,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, nil, err
	}
	return toProductResponse(product), nil, nil
}

// Update fusiona los campos presentes sobre el producto existente.
// Devuelve (nil, nil) si el producto no existe y domain.ErrInvalidInput si
// algún campo presente es inválido (precio negativo, categoría inexistente).
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Sold != nil {
		if *in.Sold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Sold = *in.Sold
	}
	if in.CategoryID != nil {
		cat, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = *in.CategoryID
	}
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por id. Devuelve false si no existía, sin tocar
// el almacén.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}
	if err := uc.products.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}

// parseNonNegative convierte un entero opcional del formulario; vacío vale 0.
func parseNonNegative(raw, field string, errs dto.FieldErrors) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		errs.Add(field, "A valid integer is required.")
		return 0
	}
	if n < 0 {
		errs.Add(field, "Must not be negative.")
		return 0
	}
	return n
}
