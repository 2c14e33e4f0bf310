package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProps() Props {
	return Props{
		Name:       "Farinha de Trigo",
		Type:       TypeInsumo,
		CategoryID: "cat-1",
		Unit:       Unit{BaseUnit: UnitKG, BaseQuantity: 1},
		Pricing:    Pricing{CostPrice: 4.50, SalePrice: 8.00},
	}
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(validProps())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.True(t, p.IsActive)
	assert.True(t, p.CanBeIngredient)
	assert.Equal(t, SempreDisponivel, p.Availability.Status)
	assert.Equal(t, StockEsgotado, p.StockStatus, "produto sem estoque nasce esgotado")
}

func TestNewProductValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Props)
		wantErr error
	}{
		{"nome vazio", func(p *Props) { p.Name = "  " }, ErrEmptyName},
		{"sem categoria", func(p *Props) { p.CategoryID = "" }, ErrEmptyCategory},
		{"custo negativo", func(p *Props) { p.Pricing.CostPrice = -1 }, ErrNegativeCostPrice},
		{"venda negativa", func(p *Props) { p.Pricing.SalePrice = -1 }, ErrNegativeSalePrice},
		{"quantidade base zero", func(p *Props) { p.Unit.BaseQuantity = 0 }, ErrInvalidBaseQuantity},
		{"tempo de preparo negativo", func(p *Props) { p.PreparationTime = -5 }, ErrNegativePrepTime},
		{"estoque mínimo negativo", func(p *Props) { p.MinimumStock = -1 }, ErrNegativeMinStock},
		{"estoque negativo", func(p *Props) { p.CurrentStock = -1 }, ErrNegativeStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := validProps()
			tt.mutate(&props)
			_, err := NewProduct(props)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStockStatusDerivation(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)

	props := validProps()
	props.CurrentStock = 50
	props.MinimumStock = 10
	p, err := NewProduct(props)
	require.NoError(t, err)
	assert.Equal(t, StockDisponivel, p.StockStatus)

	props = validProps()
	props.CurrentStock = 10
	props.MinimumStock = 10
	p, err = NewProduct(props)
	require.NoError(t, err)
	assert.Equal(t, StockBaixo, p.StockStatus)
	assert.True(t, p.NeedsLowStockAlert())

	props = validProps()
	props.CurrentStock = 50
	props.ExpirationDate = &past
	p, err = NewProduct(props)
	require.NoError(t, err)
	assert.Equal(t, StockVencido, p.StockStatus)
	assert.True(t, p.IsExpired())

	// Esgotado prevalece sobre vencido
	props = validProps()
	props.CurrentStock = 0
	props.ExpirationDate = &past
	p, err = NewProduct(props)
	require.NoError(t, err)
	assert.Equal(t, StockEsgotado, p.StockStatus)
}

func TestAddStock(t *testing.T) {
	p, err := NewProduct(validProps())
	require.NoError(t, err)

	future := time.Now().Add(30 * 24 * time.Hour)
	require.NoError(t, p.AddStock(25, "L-2024-01", &future))

	assert.Equal(t, 25.0, p.CurrentStock)
	assert.Equal(t, "L-2024-01", p.BatchNumber)
	assert.Equal(t, StockDisponivel, p.StockStatus)

	assert.ErrorIs(t, p.AddStock(0, "", nil), ErrInvalidQuantity)
	assert.ErrorIs(t, p.AddStock(-5, "", nil), ErrInvalidQuantity)
	assert.Equal(t, 25.0, p.CurrentStock, "falha não altera o estoque")
}

func TestRemoveStock(t *testing.T) {
	props := validProps()
	props.CurrentStock = 20
	props.MinimumStock = 5
	p, err := NewProduct(props)
	require.NoError(t, err)

	require.NoError(t, p.RemoveStock(15))
	assert.Equal(t, 5.0, p.CurrentStock)
	assert.Equal(t, StockBaixo, p.StockStatus)

	assert.ErrorIs(t, p.RemoveStock(50), ErrInsufficientStock)
	assert.Equal(t, 5.0, p.CurrentStock, "falha não altera o estoque")

	require.NoError(t, p.RemoveStock(5))
	assert.Equal(t, StockEsgotado, p.StockStatus)
}

func TestCurrentPrice(t *testing.T) {
	props := validProps()
	props.Pricing.PromotionalPrice = 6.00
	p, err := NewProduct(props)
	require.NoError(t, err)

	assert.True(t, p.IsPromotional())
	assert.Equal(t, 6.00, p.CurrentPrice())

	// Janela promocional expirada volta ao preço de venda
	past := time.Now().Add(-time.Hour)
	p.Pricing.PromotionalPriceEndDate = &past
	assert.False(t, p.IsPromotional())
	assert.Equal(t, 8.00, p.CurrentPrice())
}

func TestFractionalPrice(t *testing.T) {
	props := validProps()
	props.Pricing.SalePrice = 10.00
	props.Unit = Unit{
		BaseUnit:           UnitKG,
		BaseQuantity:       1,
		FractionalUnit:     UnitG,
		FractionalQuantity: 0.5,
		ConversionFactor:   1000,
	}
	p, err := NewProduct(props)
	require.NoError(t, err)
	assert.Equal(t, 5.00, p.FractionalPrice())

	p.Unit.FractionalQuantity = 0
	assert.Equal(t, 10.00, p.FractionalPrice())
}

func TestProfitMargin(t *testing.T) {
	p, err := NewProduct(validProps())
	require.NoError(t, err)
	assert.InDelta(t, 77.78, p.ProfitMargin(), 0.01)

	p.Pricing.CostPrice = 0
	assert.Zero(t, p.ProfitMargin())
}

func TestIsAvailableNow(t *testing.T) {
	props := validProps()
	props.CurrentStock = 10
	p, err := NewProduct(props)
	require.NoError(t, err)
	assert.True(t, p.IsAvailableNow())

	p.UpdateAvailability(Availability{Status: TemporariamenteIndisponivel})
	assert.False(t, p.IsAvailableNow())

	p.UpdateAvailability(Availability{Status: SempreDisponivel})
	p.Deactivate()
	assert.False(t, p.IsAvailableNow())

	p.Activate()
	require.NoError(t, p.RemoveStock(10))
	assert.False(t, p.IsAvailableNow(), "esgotado não está disponível")
}

func TestProductRoles(t *testing.T) {
	p, err := NewProduct(validProps())
	require.NoError(t, err)
	assert.True(t, p.IsIngredient())
	assert.False(t, p.IsFinalProduct())

	props := validProps()
	props.Type = TypeProdutoFinal
	canBe := false
	props.CanBeIngredient = &canBe
	final, err := NewProduct(props)
	require.NoError(t, err)
	assert.False(t, final.IsIngredient())
	assert.True(t, final.IsFinalProduct())
}
