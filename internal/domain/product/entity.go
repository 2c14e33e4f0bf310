package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Erros de validação do produto
var (
	ErrEmptyName           = errors.New("nome do produto é obrigatório")
	ErrNameTooLong         = errors.New("nome do produto deve ter no máximo 255 caracteres")
	ErrEmptyCategory       = errors.New("categoria é obrigatória")
	ErrNegativeCostPrice   = errors.New("preço de custo não pode ser negativo")
	ErrNegativeSalePrice   = errors.New("preço de venda não pode ser negativo")
	ErrInvalidBaseQuantity = errors.New("quantidade base deve ser maior que zero")
	ErrInvalidFractional   = errors.New("quantidade fracionária deve ser maior que zero")
	ErrNegativePrepTime    = errors.New("tempo de preparo não pode ser negativo")
	ErrNegativeMinStock    = errors.New("estoque mínimo não pode ser negativo")
	ErrNegativeStock       = errors.New("estoque atual não pode ser negativo")
	ErrInvalidQuantity     = errors.New("quantidade deve ser maior que zero")
	ErrInsufficientStock   = errors.New("quantidade insuficiente em estoque")
)

// Type define o tipo do produto
type Type string

const (
	TypeInsumo       Type = "INSUMO"        // Ingrediente/matéria-prima
	TypeProdutoFinal Type = "PRODUTO_FINAL" // Produto pronto para venda
	TypeBebida       Type = "BEBIDA"
	TypeEmbalagem    Type = "EMBALAGEM"
)

// UnitType define a unidade de medida
type UnitType string

const (
	UnitKG UnitType = "KG"
	UnitG  UnitType = "G"
	UnitL  UnitType = "L"
	UnitML UnitType = "ML"
	UnitUN UnitType = "UN"
)

// StockStatus é o estado derivado do estoque do produto
type StockStatus string

const (
	StockDisponivel StockStatus = "DISPONIVEL"
	StockBaixo      StockStatus = "ESTOQUE_BAIXO"
	StockEsgotado   StockStatus = "ESGOTADO"
	StockVencido    StockStatus = "VENCIDO"
)

// Origin define a origem fiscal do produto
type Origin string

const (
	OriginNacional   Origin = "NACIONAL"
	OriginImportado  Origin = "IMPORTADO"
)

// AvailabilityStatus define a regra de disponibilidade do produto
type AvailabilityStatus string

const (
	SempreDisponivel            AvailabilityStatus = "SEMPRE_DISPONIVEL"
	HorarioEspecifico           AvailabilityStatus = "HORARIO_ESPECIFICO"
	DiasEspecificos             AvailabilityStatus = "DIAS_ESPECIFICOS"
	Sazonal                     AvailabilityStatus = "SAZONAL"
	TemporariamenteIndisponivel AvailabilityStatus = "TEMPORARIAMENTE_INDISPONIVEL"
)

// Unit descreve a unidade de medida do produto e sua fração de venda
type Unit struct {
	BaseUnit           UnitType `json:"base_unit"`
	BaseQuantity       float64  `json:"base_quantity"`
	FractionalUnit     UnitType `json:"fractional_unit,omitempty"`
	FractionalQuantity float64  `json:"fractional_quantity,omitempty"`
	ConversionFactor   float64  `json:"conversion_factor,omitempty"`
}

// Pricing agrupa os preços do produto
type Pricing struct {
	CostPrice                 float64    `json:"cost_price"`
	SalePrice                 float64    `json:"sale_price"`
	SuggestedPrice            float64    `json:"suggested_price,omitempty"`
	PromotionalPrice          float64    `json:"promotional_price,omitempty"`
	PromotionalPriceStartDate *time.Time `json:"promotional_price_start_date,omitempty"`
	PromotionalPriceEndDate   *time.Time `json:"promotional_price_end_date,omitempty"`
}

// TaxInfo agrupa a classificação fiscal do produto. Os códigos são
// armazenados como valores opacos para o domínio.
type TaxInfo struct {
	NCM        string  `json:"ncm,omitempty"`
	CEST       string  `json:"cest,omitempty"`
	ICMSRate   float64 `json:"icms_rate,omitempty"`
	PISRate    float64 `json:"pis_rate,omitempty"`
	COFINSRate float64 `json:"cofins_rate,omitempty"`
	Origin     Origin  `json:"origin"`
}

// Availability descreve quando o produto está disponível para venda
type Availability struct {
	Status             AvailabilityStatus `json:"status"`
	AvailableStartTime string             `json:"available_start_time,omitempty"` // HH:MM
	AvailableEndTime   string             `json:"available_end_time,omitempty"`   // HH:MM
	AvailableDays      []int              `json:"available_days,omitempty"`       // 0 = domingo
	SeasonalStartDate  *time.Time         `json:"seasonal_start_date,omitempty"`
	SeasonalEndDate    *time.Time         `json:"seasonal_end_date,omitempty"`
}

// Props reúne os campos para construção de um produto
type Props struct {
	ID              string
	Name            string
	Description     string
	Type            Type
	CategoryID      string
	Unit            Unit
	Pricing         Pricing
	TaxInfo         TaxInfo
	Availability    *Availability
	EANCode         string
	InternalCode    string
	PreparationTime int
	MinimumStock    float64
	CurrentStock    float64
	ExpirationDate  *time.Time
	BatchNumber     string
	IsActive        *bool
	CanBeIngredient *bool
	NeedsRecipe     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Product representa um item do catálogo com controle de estoque.
// StockStatus é um campo derivado, recalculado na construção e após
// toda mutação de estoque.
type Product struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	Type            Type         `json:"type"`
	CategoryID      string       `json:"category_id"`
	Unit            Unit         `json:"unit"`
	Pricing         Pricing      `json:"pricing"`
	TaxInfo         TaxInfo      `json:"tax_info"`
	Availability    Availability `json:"availability"`
	EANCode         string       `json:"ean_code,omitempty"`
	InternalCode    string       `json:"internal_code,omitempty"`
	PreparationTime int          `json:"preparation_time,omitempty"`
	MinimumStock    float64      `json:"minimum_stock,omitempty"`
	CurrentStock    float64      `json:"current_stock"`
	StockStatus     StockStatus  `json:"stock_status"`
	ExpirationDate  *time.Time   `json:"expiration_date,omitempty"`
	BatchNumber     string       `json:"batch_number,omitempty"`
	IsActive        bool         `json:"is_active"`
	CanBeIngredient bool         `json:"can_be_ingredient"`
	NeedsRecipe     bool         `json:"needs_recipe"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// NewProduct cria um novo produto validado, com o status de estoque derivado
func NewProduct(props Props) (*Product, error) {
	now := time.Now()

	p := &Product{
		ID:              props.ID,
		Name:            props.Name,
		Description:     props.Description,
		Type:            props.Type,
		CategoryID:      props.CategoryID,
		Unit:            props.Unit,
		Pricing:         props.Pricing,
		TaxInfo:         props.TaxInfo,
		EANCode:         props.EANCode,
		InternalCode:    props.InternalCode,
		PreparationTime: props.PreparationTime,
		MinimumStock:    props.MinimumStock,
		CurrentStock:    props.CurrentStock,
		ExpirationDate:  props.ExpirationDate,
		BatchNumber:     props.BatchNumber,
		IsActive:        true,
		CanBeIngredient: true,
		NeedsRecipe:     props.NeedsRecipe,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if props.Availability != nil {
		p.Availability = *props.Availability
	} else {
		p.Availability = Availability{Status: SempreDisponivel}
	}
	if props.IsActive != nil {
		p.IsActive = *props.IsActive
	}
	if props.CanBeIngredient != nil {
		p.CanBeIngredient = *props.CanBeIngredient
	}
	if !props.CreatedAt.IsZero() {
		p.CreatedAt = props.CreatedAt
	}
	if !props.UpdatedAt.IsZero() {
		p.UpdatedAt = props.UpdatedAt
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	p.refreshStockStatus()

	return p, nil
}

func (p *Product) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if len(p.Name) > 255 {
		return ErrNameTooLong
	}
	if p.CategoryID == "" {
		return ErrEmptyCategory
	}
	if p.Pricing.CostPrice < 0 {
		return ErrNegativeCostPrice
	}
	if p.Pricing.SalePrice < 0 {
		return ErrNegativeSalePrice
	}
	if p.Unit.BaseQuantity <= 0 {
		return ErrInvalidBaseQuantity
	}
	if p.Unit.FractionalQuantity < 0 {
		return ErrInvalidFractional
	}
	if p.PreparationTime < 0 {
		return ErrNegativePrepTime
	}
	if p.MinimumStock < 0 {
		return ErrNegativeMinStock
	}
	if p.CurrentStock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// refreshStockStatus deriva o status do estoque. A ordem importa: esgotado
// antes de estoque baixo, que vem antes de vencido. Um produto vencido com
// estoque zerado reporta ESGOTADO.
func (p *Product) refreshStockStatus() {
	switch {
	case p.CurrentStock == 0:
		p.StockStatus = StockEsgotado
	case p.MinimumStock > 0 && p.CurrentStock <= p.MinimumStock:
		p.StockStatus = StockBaixo
	case p.ExpirationDate != nil && p.ExpirationDate.Before(time.Now()):
		p.StockStatus = StockVencido
	default:
		p.StockStatus = StockDisponivel
	}
}

// AddStock adiciona quantidade ao estoque, atualizando lote e validade
// quando informados, e recalcula o status.
func (p *Product) AddStock(quantity float64, batchNumber string, expirationDate *time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	p.CurrentStock += quantity
	if batchNumber != "" {
		p.BatchNumber = batchNumber
	}
	if expirationDate != nil {
		p.ExpirationDate = expirationDate
	}
	p.UpdatedAt = time.Now()
	p.refreshStockStatus()

	return nil
}

// RemoveStock remove quantidade do estoque. Falha sem alterar o estoque
// quando a quantidade é inválida ou maior que a disponível.
func (p *Product) RemoveStock(quantity float64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.CurrentStock {
		return ErrInsufficientStock
	}

	p.CurrentStock -= quantity
	p.UpdatedAt = time.Now()
	p.refreshStockStatus()

	return nil
}

// UpdateBasicInfo atualiza nome e descrição, revalidando o produto
func (p *Product) UpdateBasicInfo(name, description string) error {
	old := p.Name
	p.Name = name
	p.Description = description
	if err := p.validate(); err != nil {
		p.Name = old
		return err
	}
	p.UpdatedAt = time.Now()
	return nil
}

// UpdatePricing substitui o bloco de preços, revalidando o produto
func (p *Product) UpdatePricing(pricing Pricing) error {
	old := p.Pricing
	p.Pricing = pricing
	if err := p.validate(); err != nil {
		p.Pricing = old
		return err
	}
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateTaxInfo substitui a classificação fiscal
func (p *Product) UpdateTaxInfo(taxInfo TaxInfo) {
	p.TaxInfo = taxInfo
	p.UpdatedAt = time.Now()
}

// UpdateAvailability substitui a regra de disponibilidade
func (p *Product) UpdateAvailability(availability Availability) {
	p.Availability = availability
	p.UpdatedAt = time.Now()
}

// IsPromotional indica se o preço promocional está vigente
func (p *Product) IsPromotional() bool {
	if p.Pricing.PromotionalPrice == 0 {
		return false
	}

	now := time.Now()
	if p.Pricing.PromotionalPriceStartDate != nil && now.Before(*p.Pricing.PromotionalPriceStartDate) {
		return false
	}
	if p.Pricing.PromotionalPriceEndDate != nil && now.After(*p.Pricing.PromotionalPriceEndDate) {
		return false
	}

	return true
}

// CurrentPrice retorna o preço vigente, considerando promoção ativa
func (p *Product) CurrentPrice() float64 {
	if p.IsPromotional() {
		return p.Pricing.PromotionalPrice
	}
	return p.Pricing.SalePrice
}

// FractionalPrice calcula o preço da fração de venda. Sem unidade
// fracionária configurada, retorna o preço de venda cheio.
func (p *Product) FractionalPrice() float64 {
	if p.Unit.FractionalQuantity == 0 || p.Unit.ConversionFactor == 0 {
		return p.Pricing.SalePrice
	}
	return (p.Pricing.SalePrice / p.Unit.BaseQuantity) * p.Unit.FractionalQuantity
}

// ProfitMargin retorna a margem de lucro percentual sobre o custo
func (p *Product) ProfitMargin() float64 {
	if p.Pricing.CostPrice == 0 {
		return 0
	}
	return ((p.Pricing.SalePrice - p.Pricing.CostPrice) / p.Pricing.CostPrice) * 100
}

// IsAvailableNow aplica a regra de disponibilidade ao momento atual
func (p *Product) IsAvailableNow() bool {
	now := time.Now()

	switch p.Availability.Status {
	case TemporariamenteIndisponivel:
		return false
	case Sazonal:
		start := p.Availability.SeasonalStartDate
		end := p.Availability.SeasonalEndDate
		if start != nil && end != nil && (now.Before(*start) || now.After(*end)) {
			return false
		}
	case DiasEspecificos:
		if len(p.Availability.AvailableDays) > 0 {
			today := int(now.Weekday())
			found := false
			for _, d := range p.Availability.AvailableDays {
				if d == today {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	case HorarioEspecifico:
		start := p.Availability.AvailableStartTime
		end := p.Availability.AvailableEndTime
		if start != "" && end != "" {
			current := now.Format("15:04")
			if current < start || current > end {
				return false
			}
		}
	}

	return p.IsActive && p.StockStatus != StockEsgotado
}

// Activate ativa o produto
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
}

// Deactivate desativa o produto
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}

// IsIngredient indica se o produto pode compor receitas
func (p *Product) IsIngredient() bool {
	return p.Type == TypeInsumo && p.CanBeIngredient
}

// IsFinalProduct indica se o produto é vendido como item final
func (p *Product) IsFinalProduct() bool {
	return p.Type == TypeProdutoFinal
}

// NeedsLowStockAlert indica se o produto está abaixo do estoque mínimo
func (p *Product) NeedsLowStockAlert() bool {
	return p.StockStatus == StockBaixo
}

// IsExpired indica se o produto está vencido
func (p *Product) IsExpired() bool {
	return p.StockStatus == StockVencido
}
