package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientdomain "github.com/rssarti/PDV-Delivery/internal/domain/client"
)

type fakeClientRepo struct {
	clients map[string]*clientdomain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*clientdomain.Client)}
}

func (r *fakeClientRepo) Save(ctx context.Context, c *clientdomain.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) FindByID(ctx context.Context, id string) (*clientdomain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, clientdomain.ErrClientNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) FindByEmail(ctx context.Context, email string) (*clientdomain.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, clientdomain.ErrClientNotFound
}

func (r *fakeClientRepo) FindByDocument(ctx context.Context, document string) (*clientdomain.Client, error) {
	for _, c := range r.clients {
		if document != "" && c.Document() == document {
			return c, nil
		}
	}
	return nil, clientdomain.ErrClientNotFound
}

func (r *fakeClientRepo) List(ctx context.Context, status clientdomain.Status, limit, offset int) ([]*clientdomain.Client, error) {
	var out []*clientdomain.Client
	for _, c := range r.clients {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Count(ctx context.Context, status clientdomain.Status) (int, error) {
	list, _ := r.List(ctx, status, 0, 0)
	return len(list), nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return clientdomain.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

func validCreateRequest() CreateClientRequest {
	return CreateClientRequest{
		Name:  "João Silva",
		Email: "joao@example.com",
		Phone: "11999998888",
		Address: AddressInput{
			Street:       "Rua das Flores",
			Number:       "123",
			Neighborhood: "Centro",
			ZipCode:      "01310100",
		},
	}
}

func TestCreateClient(t *testing.T) {
	repo := newFakeClientRepo()
	uc := NewCreateClientUseCase(repo)

	c, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "joao@example.com", c.Email)
	assert.Equal(t, clientdomain.StatusActive, c.Status)
	assert.Len(t, repo.clients, 1)
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	repo := newFakeClientRepo()
	uc := NewCreateClientUseCase(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = uc.Execute(ctx, validCreateRequest())
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Len(t, repo.clients, 1)
}

func TestCreateClientDuplicateDocument(t *testing.T) {
	repo := newFakeClientRepo()
	uc := NewCreateClientUseCase(repo)
	ctx := context.Background()

	first := validCreateRequest()
	first.CPF = "52998224725"
	_, err := uc.Execute(ctx, first)
	require.NoError(t, err)

	second := validCreateRequest()
	second.Email = "outro@example.com"
	second.CPF = "52998224725"
	_, err = uc.Execute(ctx, second)
	assert.ErrorIs(t, err, ErrCPFAlreadyExists)

	third := CreateClientRequest{
		Name:    "Empresa LTDA",
		Email:   "contato@example.com",
		Address: validCreateRequest().Address,
		CNPJ:    "11222333000181",
	}
	_, err = uc.Execute(ctx, third)
	require.NoError(t, err)

	fourth := third
	fourth.Email = "outra@example.com"
	_, err = uc.Execute(ctx, fourth)
	assert.ErrorIs(t, err, ErrCNPJAlreadyExists)
}

func TestCreateClientInvalidAddress(t *testing.T) {
	repo := newFakeClientRepo()
	uc := NewCreateClientUseCase(repo)

	req := validCreateRequest()
	req.Address.ZipCode = "123"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, clientdomain.ErrInvalidZipCode)
	assert.Empty(t, repo.clients)
}

func TestCreateClientInvalidData(t *testing.T) {
	repo := newFakeClientRepo()
	uc := NewCreateClientUseCase(repo)

	req := validCreateRequest()
	req.Name = "X"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, clientdomain.ErrNameTooShort)
}
