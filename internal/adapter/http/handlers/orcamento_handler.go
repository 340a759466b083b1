package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "farmagest/internal/adapter/http/dto/request"
	response "farmagest/internal/adapter/http/dto/response"
	"farmagest/internal/adapter/http/middleware"
	"farmagest/internal/usecase"
	"farmagest/internal/usecase/interfaces"
	"farmagest/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrcamentoPayload = pkg.NewDomainErrorSimple("INVALID_ORCAMENTO_INPUT", "Payload de orçamento inválido", http.StatusBadRequest)
)

// OrcamentoHandler handles HTTP requests for judicial budgets, including the
// budget PDF endpoint.
type OrcamentoHandler struct {
	usecase    usecase.IOrcamentoUseCase
	documentos usecase.IDocumentoUseCase
}

func NewOrcamentoHandler(uc usecase.IOrcamentoUseCase, doc usecase.IDocumentoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{usecase: uc, documentos: doc}
}

// SaveOrcamento godoc
// @Summary Cria ou substitui um orçamento judicial
// @Tags orcamentos
// @Accept json
// @Produce json
// @Param orcamento body request.SalvarOrcamentoRequest true "Orçamento"
// @Success 200 {object} response.OrcamentoResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /orcamentos [post]
func (h *OrcamentoHandler) SaveOrcamento(c *gin.Context) {
	var payload request.SalvarOrcamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	orcamento, err := h.usecase.Salvar(c.Request.Context(), middleware.UsuarioID(c), payload.ToInput())
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(orcamento))
}

// GetOrcamento godoc
// @Summary Busca um orçamento pelo id
// @Tags orcamentos
// @Produce json
// @Param id path string true "ID do orçamento"
// @Success 200 {object} response.OrcamentoResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /orcamentos/{id} [get]
func (h *OrcamentoHandler) GetOrcamento(c *gin.Context) {
	orcamento, err := h.usecase.Buscar(c.Request.Context(), middleware.UsuarioID(c), c.Param("id"))
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(orcamento))
}

// ListOrcamentos godoc
// @Summary Lista os orçamentos do usuário, mais recentes primeiro
// @Tags orcamentos
// @Produce json
// @Param limite query int false "Tamanho da página"
// @Param cursor query string false "Cursor da página anterior"
// @Success 200 {object} response.PaginaOrcamentosResponse
// @Router /orcamentos [get]
func (h *OrcamentoHandler) ListOrcamentos(c *gin.Context) {
	limite, _ := strconv.ParseInt(c.Query("limite"), 10, 32)

	pagina, err := h.usecase.Listar(c.Request.Context(), middleware.UsuarioID(c), int32(limite), c.Query("cursor"))
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaginaOrcamentos(pagina))
}

// DeleteOrcamento godoc
// @Summary Exclui um orçamento
// @Tags orcamentos
// @Produce json
// @Param id path string true "ID do orçamento"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /orcamentos/{id} [delete]
func (h *OrcamentoHandler) DeleteOrcamento(c *gin.Context) {
	if err := h.usecase.Excluir(c.Request.Context(), middleware.UsuarioID(c), c.Param("id")); err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// CalculateOrcamento godoc
// @Summary Retorna os totais calculados de um orçamento
// @Tags orcamentos
// @Produce json
// @Param id path string true "ID do orçamento"
// @Success 200 {object} response.CalculoOrcamentoResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /orcamentos/{id}/calculos [get]
func (h *OrcamentoHandler) CalculateOrcamento(c *gin.Context) {
	calculo, err := h.usecase.Calcular(c.Request.Context(), middleware.UsuarioID(c), c.Param("id"))
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculoOrcamento(calculo))
}

// GetOrcamentoDocumento godoc
// @Summary Monta o conteúdo do documento de orçamento, sem renderizar
// @Tags orcamentos
// @Produce json
// @Param id path string true "ID do orçamento"
// @Success 200 {object} response.DocumentoResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /orcamentos/{id}/documento [get]
func (h *OrcamentoHandler) GetOrcamentoDocumento(c *gin.Context) {
	documento, err := h.documentos.MontarOrcamento(c.Request.Context(), middleware.UsuarioID(c), c.Param("id"))
	if err != nil {
		appErr := mapDocumentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocumento(documento))
}

// GenerateOrcamentoPDF godoc
// @Summary Gera o PDF de um orçamento judicial
// @Tags orcamentos
// @Produce application/pdf
// @Param id path string true "ID do orçamento"
// @Success 200 {file} binary
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /orcamentos/{id}/pdf [post]
func (h *OrcamentoHandler) GenerateOrcamentoPDF(c *gin.Context) {
	pdf, err := h.documentos.GerarPDFOrcamento(c.Request.Context(), middleware.UsuarioID(c), c.Param("id"))
	if err != nil {
		appErr := mapDocumentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.NomeArquivo+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf.Conteudo)
}

func mapOrcamentoError(err error) *pkg.AppError {
	var ve *pkg.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_ERROR", "Campos inválidos", ve, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrcamentoIDInvalido), errors.Is(err, usecase.ErrUsuarioNaoInformado), errors.Is(err, interfaces.ErrCursorInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrcamentoNaoEncontrado):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}

func mapDocumentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrcamentoNaoEncontrado):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orçamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrcamentoIDInvalido), errors.Is(err, usecase.ErrUsuarioNaoInformado), errors.Is(err, usecase.ErrTipoDocumentoInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrcamentoSemMedicamentos), errors.Is(err, usecase.ErrVencidosVazio), errors.Is(err, usecase.ErrDestinatarioObrigatorio):
		return pkg.NewDomainErrorSimple("DOCUMENT_PRECONDITION_FAILED", "Não há conteúdo suficiente para gerar o documento", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRenderizacao):
		return pkg.NewDomainError("RENDER_FAILED", "Falha ao renderizar o documento", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
