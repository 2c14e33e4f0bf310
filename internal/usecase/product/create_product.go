package product

import (
	"context"
	"errors"
	"time"

	categorydomain "github.com/rssarti/PDV-Delivery/internal/domain/category"
	productdomain "github.com/rssarti/PDV-Delivery/internal/domain/product"
)

// Erros de duplicidade e de referência na criação de produtos
var (
	ErrDuplicateInternalCode = errors.New("já existe um produto com este código interno")
	ErrDuplicateEANCode      = errors.New("já existe um produto com este código EAN")
	ErrCategoryInactive      = errors.New("categoria está inativa")
)

// CreateProductRequest reúne os dados de entrada para criação de um produto
type CreateProductRequest struct {
	Name            string
	Description     string
	Type            productdomain.Type
	CategoryID      string
	Unit            productdomain.Unit
	Pricing         productdomain.Pricing
	TaxInfo         productdomain.TaxInfo
	EANCode         string
	InternalCode    string
	PreparationTime int
	MinimumStock    float64
	CurrentStock    float64
	ExpirationDate  *time.Time
	BatchNumber     string
	CanBeIngredient *bool
	NeedsRecipe     bool
}

// CreateProductUseCase cria produtos garantindo unicidade de códigos e
// categoria válida
type CreateProductUseCase struct {
	products   productdomain.Repository
	categories categorydomain.Repository
}

// NewCreateProductUseCase cria uma nova instância do caso de uso
func NewCreateProductUseCase(products productdomain.Repository, categories categorydomain.Repository) *CreateProductUseCase {
	return &CreateProductUseCase{
		products:   products,
		categories: categories,
	}
}

// Execute valida referências e unicidade, constrói o produto e persiste
func (uc *CreateProductUseCase) Execute(ctx context.Context, req CreateProductRequest) (*productdomain.Product, error) {
	cat, err := uc.categories.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !cat.IsActive {
		return nil, ErrCategoryInactive
	}

	if req.InternalCode != "" {
		existing, err := uc.products.FindByInternalCode(ctx, req.InternalCode)
		if err != nil && !errors.Is(err, productdomain.ErrProductNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateInternalCode
		}
	}

	if req.EANCode != "" {
		existing, err := uc.products.FindByEANCode(ctx, req.EANCode)
		if err != nil && !errors.Is(err, productdomain.ErrProductNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateEANCode
		}
	}

	p, err := productdomain.NewProduct(productdomain.Props{
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		CategoryID:      req.CategoryID,
		Unit:            req.Unit,
		Pricing:         req.Pricing,
		TaxInfo:         req.TaxInfo,
		EANCode:         req.EANCode,
		InternalCode:    req.InternalCode,
		PreparationTime: req.PreparationTime,
		MinimumStock:    req.MinimumStock,
		CurrentStock:    req.CurrentStock,
		ExpirationDate:  req.ExpirationDate,
		BatchNumber:     req.BatchNumber,
		CanBeIngredient: req.CanBeIngredient,
		NeedsRecipe:     req.NeedsRecipe,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.products.Save(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
