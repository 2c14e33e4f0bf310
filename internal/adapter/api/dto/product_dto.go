package dto

import (
	"time"

	"github.com/rssarti/PDV-Delivery/internal/domain/product"
)

// ProductUnitRequest representa a unidade de medida na requisição
type ProductUnitRequest struct {
	BaseUnit           product.UnitType `json:"base_unit" binding:"required"`
	BaseQuantity       float64          `json:"base_quantity" binding:"required"`
	FractionalUnit     product.UnitType `json:"fractional_unit"`
	FractionalQuantity float64          `json:"fractional_quantity"`
	ConversionFactor   float64          `json:"conversion_factor"`
}

// ProductPricingRequest representa os preços na requisição
type ProductPricingRequest struct {
	CostPrice                 float64    `json:"cost_price"`
	SalePrice                 float64    `json:"sale_price"`
	SuggestedPrice            float64    `json:"suggested_price"`
	PromotionalPrice          float64    `json:"promotional_price"`
	PromotionalPriceStartDate *time.Time `json:"promotional_price_start_date"`
	PromotionalPriceEndDate   *time.Time `json:"promotional_price_end_date"`
}

// ProductTaxInfoRequest representa a classificação fiscal na requisição
type ProductTaxInfoRequest struct {
	NCM        string         `json:"ncm"`
	CEST       string         `json:"cest"`
	ICMSRate   float64        `json:"icms_rate"`
	PISRate    float64        `json:"pis_rate"`
	COFINSRate float64        `json:"cofins_rate"`
	Origin     product.Origin `json:"origin"`
}

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name            string                `json:"name" binding:"required"`
	Description     string                `json:"description"`
	Type            product.Type          `json:"type" binding:"required"`
	CategoryID      string                `json:"category_id" binding:"required"`
	Unit            ProductUnitRequest    `json:"unit" binding:"required"`
	Pricing         ProductPricingRequest `json:"pricing" binding:"required"`
	TaxInfo         ProductTaxInfoRequest `json:"tax_info"`
	EANCode         string                `json:"ean_code"`
	InternalCode    string                `json:"internal_code"`
	PreparationTime int                   `json:"preparation_time"`
	MinimumStock    float64               `json:"minimum_stock"`
	CurrentStock    float64               `json:"current_stock"`
	ExpirationDate  *time.Time            `json:"expiration_date"`
	BatchNumber     string                `json:"batch_number"`
	CanBeIngredient *bool                 `json:"can_be_ingredient"`
	NeedsRecipe     bool                  `json:"needs_recipe"`
}

// ToUnit converte a unidade da requisição para o domínio
func (r ProductUnitRequest) ToUnit() product.Unit {
	return product.Unit{
		BaseUnit:           r.BaseUnit,
		BaseQuantity:       r.BaseQuantity,
		FractionalUnit:     r.FractionalUnit,
		FractionalQuantity: r.FractionalQuantity,
		ConversionFactor:   r.ConversionFactor,
	}
}

// ToPricing converte os preços da requisição para o domínio
func (r ProductPricingRequest) ToPricing() product.Pricing {
	return product.Pricing{
		CostPrice:                 r.CostPrice,
		SalePrice:                 r.SalePrice,
		SuggestedPrice:            r.SuggestedPrice,
		PromotionalPrice:          r.PromotionalPrice,
		PromotionalPriceStartDate: r.PromotionalPriceStartDate,
		PromotionalPriceEndDate:   r.PromotionalPriceEndDate,
	}
}

// ToTaxInfo converte a classificação fiscal da requisição para o domínio
func (r ProductTaxInfoRequest) ToTaxInfo() product.TaxInfo {
	return product.TaxInfo{
		NCM:        r.NCM,
		CEST:       r.CEST,
		ICMSRate:   r.ICMSRate,
		PISRate:    r.PISRate,
		COFINSRate: r.COFINSRate,
		Origin:     r.Origin,
	}
}

// StockUpdateRequest representa a requisição de movimentação de estoque
type StockUpdateRequest struct {
	Quantity       float64    `json:"quantity" binding:"required"`
	Operation      string     `json:"operation" binding:"required"` // ADD ou REMOVE
	BatchNumber    string     `json:"batch_number"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	Type            product.Type         `json:"type"`
	CategoryID      string               `json:"category_id"`
	Unit            product.Unit         `json:"unit"`
	Pricing         product.Pricing      `json:"pricing"`
	TaxInfo         product.TaxInfo      `json:"tax_info"`
	Availability    product.Availability `json:"availability"`
	EANCode         string               `json:"ean_code,omitempty"`
	InternalCode    string               `json:"internal_code,omitempty"`
	PreparationTime int                  `json:"preparation_time,omitempty"`
	MinimumStock    float64              `json:"minimum_stock"`
	CurrentStock    float64              `json:"current_stock"`
	StockStatus     product.StockStatus  `json:"stock_status"`
	ExpirationDate  *time.Time           `json:"expiration_date,omitempty"`
	BatchNumber     string               `json:"batch_number,omitempty"`
	IsActive        bool                 `json:"is_active"`
	CanBeIngredient bool                 `json:"can_be_ingredient"`
	NeedsRecipe     bool                 `json:"needs_recipe"`
	CurrentPrice    float64              `json:"current_price"`
	ProfitMargin    float64              `json:"profit_margin"`
	IsAvailableNow  bool                 `json:"is_available_now"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte um produto do domínio para DTO
func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Type:            p.Type,
		CategoryID:      p.CategoryID,
		Unit:            p.Unit,
		Pricing:         p.Pricing,
		TaxInfo:         p.TaxInfo,
		Availability:    p.Availability,
		EANCode:         p.EANCode,
		InternalCode:    p.InternalCode,
		PreparationTime: p.PreparationTime,
		MinimumStock:    p.MinimumStock,
		CurrentStock:    p.CurrentStock,
		StockStatus:     p.StockStatus,
		ExpirationDate:  p.ExpirationDate,
		BatchNumber:     p.BatchNumber,
		IsActive:        p.IsActive,
		CanBeIngredient: p.CanBeIngredient,
		NeedsRecipe:     p.NeedsRecipe,
		CurrentPrice:    p.CurrentPrice(),
		ProfitMargin:    p.ProfitMargin(),
		IsAvailableNow:  p.IsAvailableNow(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos do domínio para DTO
func ToProductListResponse(products []*product.Product, total, page, size int) *ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = *ToProductResponse(p)
	}

	return &ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
