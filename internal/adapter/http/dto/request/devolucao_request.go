package request

import (
	"strings"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase"
)

type DevolucaoProdutoRequest struct {
	Nome       string `json:"nome" binding:"required"`
	Quantidade int    `json:"quantidade" binding:"required"`
}

type CriarDevolucaoRequest struct {
	NotaFiscalEntrada string                    `json:"nota_fiscal_entrada" binding:"required"`
	Distribuidora     string                    `json:"distribuidora" binding:"required"`
	Motivo            string                    `json:"motivo" binding:"required"`
	Produtos          []DevolucaoProdutoRequest `json:"produtos" binding:"required"`
	Protocolo         string                    `json:"protocolo"`
}

func (r CriarDevolucaoRequest) ToInput() usecase.CriarDevolucaoInput {
	return usecase.CriarDevolucaoInput{
		NotaFiscalEntrada: strings.TrimSpace(r.NotaFiscalEntrada),
		Distribuidora:     strings.TrimSpace(r.Distribuidora),
		Motivo:            strings.TrimSpace(r.Motivo),
		Produtos:          toProdutos(r.Produtos),
		Protocolo:         strings.TrimSpace(r.Protocolo),
	}
}

// AtualizarDevolucaoRequest carries a partial update. Absent fields stay
// untouched, which is why everything here is a pointer.
type AtualizarDevolucaoRequest struct {
	NotaFiscalEntrada *string                    `json:"nota_fiscal_entrada"`
	Distribuidora     *string                    `json:"distribuidora"`
	Motivo            *string                    `json:"motivo"`
	Produtos          *[]DevolucaoProdutoRequest `json:"produtos"`
	Protocolo         *string                    `json:"protocolo"`
	NFDNumero         *string                    `json:"nfd_numero"`
	NFDValor          *float64                   `json:"nfd_valor"`
	DataColeta        *string                    `json:"data_coleta"`
}

func (r AtualizarDevolucaoRequest) ToInput() usecase.AtualizarDevolucaoInput {
	in := usecase.AtualizarDevolucaoInput{
		NotaFiscalEntrada: r.NotaFiscalEntrada,
		Distribuidora:     r.Distribuidora,
		Motivo:            r.Motivo,
		Protocolo:         r.Protocolo,
		NFDNumero:         r.NFDNumero,
		NFDValor:          r.NFDValor,
		DataColeta:        r.DataColeta,
	}
	if r.Produtos != nil {
		in.Produtos = toProdutos(*r.Produtos)
	}
	return in
}

func toProdutos(reqs []DevolucaoProdutoRequest) []entities.DevolucaoProduto {
	produtos := make([]entities.DevolucaoProduto, 0, len(reqs))
	for _, p := range reqs {
		produtos = append(produtos, entities.DevolucaoProduto{
			Nome:       strings.TrimSpace(p.Nome),
			Quantidade: p.Quantidade,
		})
	}
	return produtos
}
