package entities

import (
	"sort"
	"time"
)

// StatusDevolucao represents the lifecycle of a return (devolução) to a
// distributor.
//
// Domain notes:
//   - A return always starts at StatusSolicitacaoNFD and only moves one
//     step forward per action, never backward and never skipping.
//   - StatusDevolucaoFinalizada is terminal.
type StatusDevolucao string

const (
	StatusSolicitacaoNFD      StatusDevolucao = "solicitacao_nfd"
	StatusAguardarColeta      StatusDevolucao = "aguardar_coleta"
	StatusAguardandoCredito   StatusDevolucao = "aguardando_credito"
	StatusDevolucaoFinalizada StatusDevolucao = "devolucao_finalizada"
)

// ordemStatus fixes the strict forward order of the lifecycle.
var ordemStatus = [...]StatusDevolucao{
	StatusSolicitacaoNFD,
	StatusAguardarColeta,
	StatusAguardandoCredito,
	StatusDevolucaoFinalizada,
}

var rotulosStatus = map[StatusDevolucao]string{
	StatusSolicitacaoNFD:      "Solicitação NFD",
	StatusAguardarColeta:      "Aguardar Coleta",
	StatusAguardandoCredito:   "Aguardando Crédito",
	StatusDevolucaoFinalizada: "Finalizada",
}

// Valido reports whether s is one of the four lifecycle states.
func (s StatusDevolucao) Valido() bool {
	_, ok := rotulosStatus[s]
	return ok
}

// Rotulo is the display label for the status.
func (s StatusDevolucao) Rotulo() string {
	return rotulosStatus[s]
}

// Etapa returns the 1-based position of the status in the lifecycle, or 0
// for an unknown status.
func (s StatusDevolucao) Etapa() int {
	for i, st := range ordemStatus {
		if st == s {
			return i + 1
		}
	}
	return 0
}

// Proximo returns the next status in the lifecycle. The second return is
// false when s is terminal (or unknown): there is nothing to advance to.
func (s StatusDevolucao) Proximo() (StatusDevolucao, bool) {
	for i, st := range ordemStatus[:len(ordemStatus)-1] {
		if st == s {
			return ordemStatus[i+1], true
		}
	}
	return "", false
}

// Terminal reports whether the status admits no further transition.
func (s StatusDevolucao) Terminal() bool {
	return s == StatusDevolucaoFinalizada
}

// Field names accepted by partial updates, gated per status by
// CamposEditaveis.
const (
	CampoNotaFiscalEntrada = "nota_fiscal_entrada"
	CampoDistribuidora     = "distribuidora"
	CampoMotivo            = "motivo"
	CampoProdutos          = "produtos"
	CampoProtocolo         = "protocolo"
	CampoNFDNumero         = "nfd_numero"
	CampoNFDValor          = "nfd_valor"
	CampoDataColeta        = "data_coleta"
)

// CamposEditaveis returns the set of fields that may be edited while the
// record sits at status s. The set only grows along the lifecycle and
// becomes empty once the return is finalized.
func (s StatusDevolucao) CamposEditaveis() map[string]bool {
	campos := map[string]bool{}
	etapa := s.Etapa()
	if etapa == 0 || s.Terminal() {
		return campos
	}
	if etapa >= 1 {
		campos[CampoNotaFiscalEntrada] = true
		campos[CampoDistribuidora] = true
		campos[CampoMotivo] = true
		campos[CampoProdutos] = true
		campos[CampoProtocolo] = true
	}
	if etapa >= 2 {
		campos[CampoNFDNumero] = true
		campos[CampoNFDValor] = true
	}
	if etapa >= 3 {
		campos[CampoDataColeta] = true
	}
	return campos
}

// DevolucaoProduto is one product line inside a return.
type DevolucaoProduto struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

// Devolucao is the return record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: usuario_id
//   - SK: id
//
// Later-stage fields (NFDNumero, NFDValor, DataColeta) are only ever
// populated once the record has reached the status that reveals them.
type Devolucao struct {
	ID                string             `json:"id"`
	UsuarioID         string             `json:"usuario_id"`
	NotaFiscalEntrada string             `json:"nota_fiscal_entrada"`
	Distribuidora     string             `json:"distribuidora"`
	Motivo            string             `json:"motivo"`
	Produtos          []DevolucaoProduto `json:"produtos"`
	DataRealizada     time.Time          `json:"data_realizada"`
	Protocolo         string             `json:"protocolo,omitempty"`
	NFDNumero         string             `json:"nfd_numero,omitempty"`
	NFDValor          float64            `json:"nfd_valor,omitempty"`
	DataColeta        string             `json:"data_coleta,omitempty"`
	Status            StatusDevolucao    `json:"status"`
}

// OrdenarParaExibicao sorts returns for the list view: finalized returns
// after everything else, and most recent first within each partition. The
// input slice is not modified.
func OrdenarParaExibicao(devolucoes []Devolucao) []Devolucao {
	out := make([]Devolucao, len(devolucoes))
	copy(out, devolucoes)
	sort.SliceStable(out, func(i, j int) bool {
		fi, fj := out[i].Status.Terminal(), out[j].Status.Terminal()
		if fi != fj {
			return !fi
		}
		return out[i].DataRealizada.After(out[j].DataRealizada)
	})
	return out
}
