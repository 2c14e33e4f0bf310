package category

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Erros de validação da categoria
var (
	ErrEmptyName          = errors.New("nome da categoria é obrigatório")
	ErrNameTooLong        = errors.New("nome da categoria deve ter no máximo 100 caracteres")
	ErrDescriptionTooLong = errors.New("descrição da categoria deve ter no máximo 500 caracteres")
	ErrSelfParent         = errors.New("uma categoria não pode ser pai de si mesma")
)

// Category agrupa produtos do catálogo, com hierarquia opcional
type Category struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	ParentCategoryID string    `json:"parent_category_id,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewCategory cria uma nova categoria validada
func NewCategory(name, description, parentCategoryID string) (*Category, error) {
	now := time.Now()
	c := &Category{
		ID:               uuid.New().String(),
		Name:             name,
		Description:      description,
		ParentCategoryID: parentCategoryID,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Category) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > 100 {
		return ErrNameTooLong
	}
	if len(c.Description) > 500 {
		return ErrDescriptionTooLong
	}
	return nil
}

// UpdateName atualiza o nome da categoria, revalidando
func (c *Category) UpdateName(name string) error {
	old := c.Name
	c.Name = name
	if err := c.validate(); err != nil {
		c.Name = old
		return err
	}
	c.UpdatedAt = time.Now()
	return nil
}

// UpdateDescription atualiza a descrição, revalidando
func (c *Category) UpdateDescription(description string) error {
	old := c.Description
	c.Description = description
	if err := c.validate(); err != nil {
		c.Description = old
		return err
	}
	c.UpdatedAt = time.Now()
	return nil
}

// ChangeParentCategory altera a categoria pai
func (c *Category) ChangeParentCategory(parentCategoryID string) error {
	if parentCategoryID == c.ID {
		return ErrSelfParent
	}
	c.ParentCategoryID = parentCategoryID
	c.UpdatedAt = time.Now()
	return nil
}

// IsSubcategory indica se a categoria possui uma categoria pai
func (c *Category) IsSubcategory() bool {
	return c.ParentCategoryID != ""
}

// Activate ativa a categoria
func (c *Category) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
}

// Deactivate desativa a categoria
func (c *Category) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}
