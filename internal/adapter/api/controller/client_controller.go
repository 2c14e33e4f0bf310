package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rssarti/PDV-Delivery/internal/adapter/api/dto"
	clientdomain "github.com/rssarti/PDV-Delivery/internal/domain/client"
	clientusecase "github.com/rssarti/PDV-Delivery/internal/usecase/client"
	"github.com/rssarti/PDV-Delivery/pkg/logger"
)

// ClientController gerencia as requisições relacionadas a clientes e seus
// endereços
type ClientController struct {
	createClient  *clientusecase.CreateClientUseCase
	getClient     *clientusecase.GetClientUseCase
	listClients   *clientusecase.ListClientsUseCase
	deactivate    *clientusecase.DeactivateClientUseCase
	deleteClient  *clientusecase.DeleteClientUseCase
	createAddress *clientusecase.CreateAdditionalAddressUseCase
	listAddresses *clientusecase.ListClientAddressesUseCase
	selectAddress *clientusecase.SelectAddressForOrderUseCase
	toggleAddress *clientusecase.ToggleAddressFavoriteUseCase
	deleteAddress *clientusecase.DeleteAdditionalAddressUseCase
	logger        logger.Logger
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(
	createClient *clientusecase.CreateClientUseCase,
	getClient *clientusecase.GetClientUseCase,
	listClients *clientusecase.ListClientsUseCase,
	deactivate *clientusecase.DeactivateClientUseCase,
	deleteClient *clientusecase.DeleteClientUseCase,
	createAddress *clientusecase.CreateAdditionalAddressUseCase,
	listAddresses *clientusecase.ListClientAddressesUseCase,
	selectAddress *clientusecase.SelectAddressForOrderUseCase,
	toggleAddress *clientusecase.ToggleAddressFavoriteUseCase,
	deleteAddress *clientusecase.DeleteAdditionalAddressUseCase,
	logger logger.Logger,
) *ClientController {
	return &ClientController{
		createClient:  createClient,
		getClient:     getClient,
		listClients:   listClients,
		deactivate:    deactivate,
		deleteClient:  deleteClient,
		createAddress: createAddress,
		listAddresses: listAddresses,
		selectAddress: selectAddress,
		toggleAddress: toggleAddress,
		deleteAddress: deleteAddress,
		logger:        logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente com endereço principal
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := c.createClient.Execute(ctx, clientusecase.CreateClientRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address.ToAddressInput(),
		CPF:     req.CPF,
		CNPJ:    req.CNPJ,
	})
	if err != nil {
		switch {
		case errors.Is(err, clientusecase.ErrEmailAlreadyExists),
			errors.Is(err, clientusecase.ErrCPFAlreadyExists),
			errors.Is(err, clientusecase.ErrCNPJAlreadyExists):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
		default:
			c.handleError(ctx, err, "erro ao criar cliente")
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(created))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [get]
func (c *ClientController) Get(ctx *gin.Context) {
	found, err := c.getClient.Execute(ctx, ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "erro ao buscar cliente")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(found))
}

// List retorna a lista de clientes
// @Summary Listar clientes
// @Description Retorna a lista de clientes paginada, com filtro opcional por status
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Param status query string false "Filtro por status (ACTIVE, INACTIVE, SUSPENDED)"
// @Success 200 {object} dto.ClientListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	status := clientdomain.Status(ctx.Query("status"))

	clients, total, err := c.listClients.Execute(ctx, status, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(clients, total, pagination.Page, pagination.PageSize))
}

// Deactivate desativa um cliente
// @Summary Desativar cliente
// @Description Marca o cliente como inativo
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id}/deactivate [patch]
func (c *ClientController) Deactivate(ctx *gin.Context) {
	updated, err := c.deactivate.Execute(ctx, ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "erro ao desativar cliente")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(updated))
}

// Delete remove um cliente
// @Summary Excluir cliente
// @Description Remove um cliente do sistema
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id} [delete]
func (c *ClientController) Delete(ctx *gin.Context) {
	if err := c.deleteClient.Execute(ctx, ctx.Param("id")); err != nil {
		c.handleError(ctx, err, "erro ao excluir cliente")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente excluído com sucesso", nil))
}

// CreateAddress salva um endereço adicional para o cliente
// @Summary Criar endereço adicional
// @Description Salva um endereço na lista de endereços adicionais do cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param address body dto.AdditionalAddressRequest true "Dados do endereço"
// @Success 201 {object} dto.AdditionalAddressResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id}/addresses [post]
func (c *ClientController) CreateAddress(ctx *gin.Context) {
	var req dto.AdditionalAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := c.createAddress.Execute(ctx, clientusecase.CreateAdditionalAddressRequest{
		ClientID: ctx.Param("id"),
		Address:  req.Address.ToAddressInput(),
		Label:    req.Label,
	})
	if err != nil {
		switch {
		case errors.Is(err, clientdomain.ErrAddressIsPrimary),
			errors.Is(err, clientdomain.ErrAddressAlreadyExists):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
		default:
			c.handleError(ctx, err, "erro ao salvar endereço")
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAdditionalAddressResponse(created))
}

// ListAddresses retorna o endereço principal e os adicionais do cliente
// @Summary Listar endereços do cliente
// @Description Retorna o endereço principal e os adicionais, ordenados por uso
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientAddressesResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id}/addresses [get]
func (c *ClientController) ListAddresses(ctx *gin.Context) {
	addresses, err := c.listAddresses.Execute(ctx, ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err, "erro ao listar endereços")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientAddressesResponse(addresses))
}

// SelectAddress promove um endereço adicional a principal para um pedido
// @Summary Selecionar endereço para pedido
// @Description Marca o uso do endereço e o promove a endereço principal
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param addressId path string true "ID do endereço adicional"
// @Success 200 {object} dto.AdditionalAddressResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id}/addresses/{addressId}/select [post]
func (c *ClientController) SelectAddress(ctx *gin.Context) {
	selected, err := c.selectAddress.Execute(ctx, ctx.Param("id"), ctx.Param("addressId"))
	if err != nil {
		c.handleError(ctx, err, "erro ao selecionar endereço")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdditionalAddressResponse(selected))
}

// ToggleAddressFavorite alterna a marcação de favorito de um endereço
// @Summary Alternar favorito
// @Description Alterna a marcação de favorito de um endereço adicional
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param addressId path string true "ID do endereço adicional"
// @Success 200 {object} dto.AdditionalAddressResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id}/addresses/{addressId}/favorite [patch]
func (c *ClientController) ToggleAddressFavorite(ctx *gin.Context) {
	updated, err := c.toggleAddress.Execute(ctx, ctx.Param("addressId"))
	if err != nil {
		c.handleError(ctx, err, "erro ao atualizar endereço")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdditionalAddressResponse(updated))
}

// DeleteAddress remove um endereço adicional
// @Summary Excluir endereço adicional
// @Description Remove um endereço da lista de adicionais do cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param addressId path string true "ID do endereço adicional"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients/{id}/addresses/{addressId} [delete]
func (c *ClientController) DeleteAddress(ctx *gin.Context) {
	if err := c.deleteAddress.Execute(ctx, ctx.Param("addressId")); err != nil {
		c.handleError(ctx, err, "erro ao excluir endereço")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("endereço excluído com sucesso", nil))
}

func (c *ClientController) handleError(ctx *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, clientdomain.ErrClientNotFound),
		errors.Is(err, clientdomain.ErrAddressNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
	case errors.Is(err, clientdomain.ErrNameTooShort),
		errors.Is(err, clientdomain.ErrInvalidEmail),
		errors.Is(err, clientdomain.ErrInvalidCPF),
		errors.Is(err, clientdomain.ErrInvalidCNPJ),
		errors.Is(err, clientdomain.ErrBothDocuments),
		errors.Is(err, clientdomain.ErrAddressTooShort),
		errors.Is(err, clientdomain.ErrAddressNumberMissing),
		errors.Is(err, clientdomain.ErrNeighborhoodTooShort),
		errors.Is(err, clientdomain.ErrInvalidZipCode),
		errors.Is(err, clientdomain.ErrInvalidLatitude),
		errors.Is(err, clientdomain.ErrInvalidLongitude):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
	default:
		c.logger.Error(logMsg, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, logMsg, err.Error()))
	}
}
