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
	errInvalidVencidoPayload = pkg.NewDomainErrorSimple("INVALID_VENCIDO_INPUT", "Payload de vencido inválido", http.StatusBadRequest)
)

// VencidoHandler handles HTTP requests for the expired-stock list and its
// documents.
type VencidoHandler struct {
	usecase    usecase.IVencidoUseCase
	documentos usecase.IDocumentoUseCase
}

func NewVencidoHandler(uc usecase.IVencidoUseCase, doc usecase.IDocumentoUseCase) *VencidoHandler {
	return &VencidoHandler{usecase: uc, documentos: doc}
}

// CreateVencido godoc
// @Summary Registra um item vencido
// @Tags vencidos
// @Accept json
// @Produce json
// @Param vencido body request.VencidoRequest true "Item vencido"
// @Success 201 {object} response.VencidoResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /vencidos [post]
func (h *VencidoHandler) CreateVencido(c *gin.Context) {
	var payload request.VencidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVencidoPayload.HTTPStatus, errInvalidVencidoPayload.ToHTTPError())
		return
	}

	vencido, err := h.usecase.Criar(c.Request.Context(), middleware.UsuarioID(c), payload.ToInput())
	if err != nil {
		appErr := mapVencidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVencido(vencido))
}

// ListVencidos godoc
// @Summary Lista os itens vencidos do usuário
// @Tags vencidos
// @Produce json
// @Success 200 {array} response.VencidoResponse
// @Router /vencidos [get]
func (h *VencidoHandler) ListVencidos(c *gin.Context) {
	vencidos, err := h.usecase.Listar(c.Request.Context(), middleware.UsuarioID(c))
	if err != nil {
		appErr := mapVencidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVencidos(vencidos))
}

// UpdateVencido godoc
// @Summary Atualiza um item vencido
// @Tags vencidos
// @Accept json
// @Produce json
// @Param id path string true "ID do item"
// @Param vencido body request.VencidoRequest true "Item vencido"
// @Success 200 {object} response.VencidoResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /vencidos/{id} [put]
func (h *VencidoHandler) UpdateVencido(c *gin.Context) {
	var payload request.VencidoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVencidoPayload.HTTPStatus, errInvalidVencidoPayload.ToHTTPError())
		return
	}

	vencido, err := h.usecase.Atualizar(c.Request.Context(), middleware.UsuarioID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapVencidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVencido(vencido))
}

// DeleteVencido godoc
// @Summary Exclui um item vencido
// @Tags vencidos
// @Produce json
// @Param id path string true "ID do item"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /vencidos/{id} [delete]
func (h *VencidoHandler) DeleteVencido(c *gin.Context) {
	if err := h.usecase.Excluir(c.Request.Context(), middleware.UsuarioID(c), c.Param("id")); err != nil {
		appErr := mapVencidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateVencidosPDF godoc
// @Summary Gera o pedido de NFD ou a etiqueta de descarte dos vencidos
// @Tags vencidos
// @Accept json
// @Produce application/pdf
// @Param documento body request.GerarDocumentoVencidosRequest true "Tipo e destinatário"
// @Success 200 {file} binary
// @Failure 400 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /vencidos/pdf [post]
func (h *VencidoHandler) GenerateVencidosPDF(c *gin.Context) {
	var payload request.GerarDocumentoVencidosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVencidoPayload.HTTPStatus, errInvalidVencidoPayload.ToHTTPError())
		return
	}

	pdf, err := h.documentos.GerarPDFVencidos(c.Request.Context(), middleware.UsuarioID(c), payload.ResolveTipo(), payload.ResolveDestinatario())
	if err != nil {
		appErr := mapDocumentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.NomeArquivo+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf.Conteudo)
}

func mapVencidoError(err error) *pkg.AppError {
	var ve *pkg.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_ERROR", "Campos inválidos", ve, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVencidoIDInvalido), errors.Is(err, usecase.ErrUsuarioNaoInformado):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVencidoNaoEncontrado):
		return pkg.NewDomainErrorSimple("VENCIDO_NOT_FOUND", "Item vencido não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
