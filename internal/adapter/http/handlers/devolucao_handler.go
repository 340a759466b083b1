package handlers

import (
	"errors"
	"net/http"

	request "farmagest/internal/adapter/http/dto/request"
	response "farmagest/internal/adapter/http/dto/response"
	"farmagest/internal/adapter/http/middleware"
	"farmagest/internal/usecase"
	"farmagest/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDevolucaoPayload = pkg.NewDomainErrorSimple("INVALID_DEVOLUCAO_INPUT", "Payload de devolução inválido", http.StatusBadRequest)
)

// DevolucaoHandler handles HTTP requests for the return lifecycle.
type DevolucaoHandler struct {
	usecase usecase.IDevolucaoUseCase
}

func NewDevolucaoHandler(uc usecase.IDevolucaoUseCase) *DevolucaoHandler {
	return &DevolucaoHandler{usecase: uc}
}

// CreateDevolucao godoc
// @Summary Registra uma nova devolução
// @Tags devolucoes
// @Accept json
// @Produce json
// @Param devolucao body request.CriarDevolucaoRequest true "Devolução"
// @Success 201 {object} response.DevolucaoResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /devolucoes [post]
func (h *DevolucaoHandler) CreateDevolucao(c *gin.Context) {
	var payload request.CriarDevolucaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevolucaoPayload.HTTPStatus, errInvalidDevolucaoPayload.ToHTTPError())
		return
	}

	devolucao, err := h.usecase.Criar(c.Request.Context(), middleware.UsuarioID(c), payload.ToInput())
	if err != nil {
		appErr := mapDevolucaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDevolucao(devolucao))
}

// ListDevolucoes godoc
// @Summary Lista as devoluções do usuário, finalizadas por último
// @Tags devolucoes
// @Produce json
// @Success 200 {array} response.DevolucaoResponse
// @Router /devolucoes [get]
func (h *DevolucaoHandler) ListDevolucoes(c *gin.Context) {
	devolucoes, err := h.usecase.Listar(c.Request.Context(), middleware.UsuarioID(c))
	if err != nil {
		appErr := mapDevolucaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevolucoes(devolucoes))
}

// UpdateDevolucao godoc
// @Summary Edita os campos liberados pela etapa atual da devolução
// @Tags devolucoes
// @Accept json
// @Produce json
// @Param id path string true "ID da devolução"
// @Param devolucao body request.AtualizarDevolucaoRequest true "Campos a alterar"
// @Success 200 {object} response.DevolucaoResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /devolucoes/{id} [patch]
func (h *DevolucaoHandler) UpdateDevolucao(c *gin.Context) {
	var payload request.AtualizarDevolucaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevolucaoPayload.HTTPStatus, errInvalidDevolucaoPayload.ToHTTPError())
		return
	}

	devolucao, err := h.usecase.Atualizar(c.Request.Context(), middleware.UsuarioID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapDevolucaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevolucao(devolucao))
}

// AdvanceDevolucao godoc
// @Summary Avança a devolução para a próxima etapa do fluxo
// @Tags devolucoes
// @Produce json
// @Param id path string true "ID da devolução"
// @Success 200 {object} response.DevolucaoResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /devolucoes/{id}/avancar [post]
func (h *DevolucaoHandler) AdvanceDevolucao(c *gin.Context) {
	devolucao, err := h.usecase.Avancar(c.Request.Context(), middleware.UsuarioID(c), c.Param("id"))
	if err != nil {
		appErr := mapDevolucaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevolucao(devolucao))
}

// DeleteDevolucao godoc
// @Summary Exclui uma devolução
// @Tags devolucoes
// @Produce json
// @Param id path string true "ID da devolução"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /devolucoes/{id} [delete]
func (h *DevolucaoHandler) DeleteDevolucao(c *gin.Context) {
	if err := h.usecase.Excluir(c.Request.Context(), middleware.UsuarioID(c), c.Param("id")); err != nil {
		appErr := mapDevolucaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapDevolucaoError(err error) *pkg.AppError {
	var ve *pkg.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_ERROR", "Campos inválidos", ve, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDevolucaoIDInvalido), errors.Is(err, usecase.ErrUsuarioNaoInformado):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDevolucaoNaoEncontrada):
		return pkg.NewDomainErrorSimple("DEVOLUCAO_NOT_FOUND", "Devolução não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransicaoInvalida):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Devolução já finalizada", http.StatusConflict)
	case errors.Is(err, usecase.ErrOperacaoEmAndamento):
		return pkg.NewDomainErrorSimple("OPERATION_IN_FLIGHT", "Outra operação sobre esta devolução está em andamento", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
