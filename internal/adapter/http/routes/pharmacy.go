package routes

import (
	"farmagest/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDevolucoes = "/devolucoes"
	PathOrcamentos = "/orcamentos"
	PathVencidos   = "/vencidos"
)

func addPharmacyRoutes(
	rg *gin.RouterGroup,
	devolucaoHandler *handlers.DevolucaoHandler,
	orcamentoHandler *handlers.OrcamentoHandler,
	vencidoHandler *handlers.VencidoHandler,
) {
	devolucoes := rg.Group(PathDevolucoes)
	{
		devolucoes.POST("", devolucaoHandler.CreateDevolucao)
		devolucoes.GET("", devolucaoHandler.ListDevolucoes)
		devolucoes.PATCH("/:id", devolucaoHandler.UpdateDevolucao)
		devolucoes.POST("/:id/avancar", devolucaoHandler.AdvanceDevolucao)
		devolucoes.DELETE("/:id", devolucaoHandler.DeleteDevolucao)
	}

	orcamentos := rg.Group(PathOrcamentos)
	{
		orcamentos.POST("", orcamentoHandler.SaveOrcamento)
		orcamentos.GET("", orcamentoHandler.ListOrcamentos)
		orcamentos.GET("/:id", orcamentoHandler.GetOrcamento)
		orcamentos.DELETE("/:id", orcamentoHandler.DeleteOrcamento)
		orcamentos.GET("/:id/calculos", orcamentoHandler.CalculateOrcamento)
		orcamentos.GET("/:id/documento", orcamentoHandler.GetOrcamentoDocumento)
		orcamentos.POST("/:id/pdf", orcamentoHandler.GenerateOrcamentoPDF)
	}

	vencidos := rg.Group(PathVencidos)
	{
		vencidos.POST("", vencidoHandler.CreateVencido)
		vencidos.GET("", vencidoHandler.ListVencidos)
		vencidos.PUT("/:id", vencidoHandler.UpdateVencido)
		vencidos.DELETE("/:id", vencidoHandler.DeleteVencido)
		vencidos.POST("/pdf", vencidoHandler.GenerateVencidosPDF)
	}
}
