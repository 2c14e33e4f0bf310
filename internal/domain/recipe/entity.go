package recipe

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Erros de validação da receita
var (
	ErrEmptyProductID    = errors.New("ID do produto é obrigatório")
	ErrEmptyName         = errors.New("nome da receita é obrigatório")
	ErrNameTooLong       = errors.New("nome da receita deve ter no máximo 255 caracteres")
	ErrInvalidPrepTime   = errors.New("tempo de preparo deve ser maior que zero")
	ErrInvalidYield      = errors.New("rendimento deve ser maior que zero")
	ErrEmptyYieldUnit    = errors.New("unidade de rendimento é obrigatória")
	ErrEmptyIngredientID = errors.New("ID do produto ingrediente é obrigatório")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrNegativeCost      = errors.New("custo não pode ser negativo")
)

// HourlyLaborRate é o custo de mão de obra por hora usado na estimativa
// de custo de preparo (R$/h).
const HourlyLaborRate = 15.0

// Item é um ingrediente da receita com sua quantidade e custo unitário
type Item struct {
	ID                  string    `json:"id"`
	RecipeID            string    `json:"recipe_id"`
	IngredientProductID string    `json:"ingredient_product_id"`
	Quantity            float64   `json:"quantity"`
	Unit                string    `json:"unit"`
	Cost                float64   `json:"cost"` // Custo por unidade do ingrediente
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewItem cria um item de receita validado
func NewItem(recipeID, ingredientProductID string, quantity float64, unit string, cost float64, notes string) (*Item, error) {
	if recipeID == "" {
		return nil, ErrEmptyProductID
	}
	if ingredientProductID == "" {
		return nil, ErrEmptyIngredientID
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if cost < 0 {
		return nil, ErrNegativeCost
	}

	now := time.Now()
	return &Item{
		ID:                  uuid.New().String(),
		RecipeID:            recipeID,
		IngredientProductID: ingredientProductID,
		Quantity:            quantity,
		Unit:                unit,
		Cost:                cost,
		Notes:               notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// ItemCost retorna o custo total do item (quantidade × custo unitário)
func (i *Item) ItemCost() float64 {
	return i.Quantity * i.Cost
}

// Recipe é a ficha técnica de um produto final: ingredientes, tempo de
// preparo e rendimento. TotalCost é um campo derivado, recalculado a cada
// inclusão ou remoção de item.
type Recipe struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	PreparationTime int       `json:"preparation_time"` // Minutos
	Yield           float64   `json:"yield"`
	YieldUnit       string    `json:"yield_unit"`
	Instructions    string    `json:"instructions,omitempty"`
	TotalCost       float64   `json:"total_cost"`
	IsActive        bool      `json:"is_active"`
	Items           []*Item   `json:"items"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewRecipe cria uma nova receita validada
func NewRecipe(productID, name, description string, preparationTime int, yield float64, yieldUnit, instructions string) (*Recipe, error) {
	now := time.Now()
	r := &Recipe{
		ID:              uuid.New().String(),
		ProductID:       productID,
		Name:            name,
		Description:     description,
		PreparationTime: preparationTime,
		Yield:           yield,
		YieldUnit:       yieldUnit,
		Instructions:    instructions,
		IsActive:        true,
		Items:           make([]*Item, 0),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Recipe) validate() error {
	if r.ProductID == "" {
		return ErrEmptyProductID
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if len(r.Name) > 255 {
		return ErrNameTooLong
	}
	if r.PreparationTime <= 0 {
		return ErrInvalidPrepTime
	}
	if r.Yield <= 0 {
		return ErrInvalidYield
	}
	if strings.TrimSpace(r.YieldUnit) == "" {
		return ErrEmptyYieldUnit
	}
	return nil
}

// AddItem inclui um ingrediente na receita. Um item com o mesmo produto
// ingrediente substitui o existente em vez de duplicar.
func (r *Recipe) AddItem(item *Item) {
	for i, existing := range r.Items {
		if existing.IngredientProductID == item.IngredientProductID {
			r.Items[i] = item
			r.recalculateTotalCost()
			r.UpdatedAt = time.Now()
			return
		}
	}

	r.Items = append(r.Items, item)
	r.recalculateTotalCost()
	r.UpdatedAt = time.Now()
}

// RemoveItem remove o ingrediente da receita, se presente
func (r *Recipe) RemoveItem(ingredientProductID string) {
	for i, item := range r.Items {
		if item.IngredientProductID == ingredientProductID {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			r.recalculateTotalCost()
			r.UpdatedAt = time.Now()
			return
		}
	}
}

func (r *Recipe) recalculateTotalCost() {
	total := 0.0
	for _, item := range r.Items {
		total += item.ItemCost()
	}
	r.TotalCost = total
}

// UnitCost retorna o custo por unidade de rendimento
func (r *Recipe) UnitCost() float64 {
	return r.TotalCost / r.Yield
}

// LaborCost calcula o custo de mão de obra do preparo
func (r *Recipe) LaborCost() float64 {
	return (float64(r.PreparationTime) / 60) * HourlyLaborRate
}

// EstimatePreparationCost retorna o custo dos ingredientes somado ao de
// mão de obra
func (r *Recipe) EstimatePreparationCost() float64 {
	return r.TotalCost + r.LaborCost()
}

// UpdateYield atualiza o rendimento, revalidando
func (r *Recipe) UpdateYield(yield float64, yieldUnit string) error {
	oldYield, oldUnit := r.Yield, r.YieldUnit
	r.Yield = yield
	r.YieldUnit = yieldUnit
	if err := r.validate(); err != nil {
		r.Yield, r.YieldUnit = oldYield, oldUnit
		return err
	}
	r.UpdatedAt = time.Now()
	return nil
}

// UpdatePreparationInfo atualiza tempo de preparo e instruções, revalidando
func (r *Recipe) UpdatePreparationInfo(preparationTime int, instructions string) error {
	old := r.PreparationTime
	r.PreparationTime = preparationTime
	if err := r.validate(); err != nil {
		r.PreparationTime = old
		return err
	}
	r.Instructions = instructions
	r.UpdatedAt = time.Now()
	return nil
}

// HasIngredients indica se a receita possui ao menos um item
func (r *Recipe) HasIngredients() bool {
	return len(r.Items) > 0
}

// IngredientByID retorna o item do ingrediente, se presente
func (r *Recipe) IngredientByID(ingredientProductID string) *Item {
	for _, item := range r.Items {
		if item.IngredientProductID == ingredientProductID {
			return item
		}
	}
	return nil
}

// Activate ativa a receita
func (r *Recipe) Activate() {
	r.IsActive = true
	r.UpdatedAt = time.Now()
}

// Deactivate desativa a receita
func (r *Recipe) Deactivate() {
	r.IsActive = false
	r.UpdatedAt = time.Now()
}
