package request

import (
	"strings"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase"
)

type VencidoRequest struct {
	Medicamento   string  `json:"medicamento" binding:"required"`
	Laboratorio   string  `json:"laboratorio"`
	Quantidade    int     `json:"quantidade" binding:"required"`
	Lote          string  `json:"lote"`
	CodigoBarras  string  `json:"codigo_barras"`
	MSRegistro    string  `json:"ms_registro"`
	NCM           string  `json:"ncm"`
	CEST          string  `json:"cest"`
	CFOP          string  `json:"cfop"`
	PrecoUnitario float64 `json:"preco_unitario"`
}

func (r VencidoRequest) ToInput() usecase.VencidoInput {
	return usecase.VencidoInput{
		Medicamento:   strings.TrimSpace(r.Medicamento),
		Laboratorio:   strings.TrimSpace(r.Laboratorio),
		Quantidade:    r.Quantidade,
		Lote:          strings.TrimSpace(r.Lote),
		CodigoBarras:  strings.TrimSpace(r.CodigoBarras),
		MSRegistro:    strings.TrimSpace(r.MSRegistro),
		NCM:           strings.TrimSpace(r.NCM),
		CEST:          strings.TrimSpace(r.CEST),
		CFOP:          strings.TrimSpace(r.CFOP),
		PrecoUnitario: r.PrecoUnitario,
	}
}

type DestinatarioRequest struct {
	RazaoSocial string `json:"razao_social" binding:"required"`
	CNPJ        string `json:"cnpj" binding:"required"`
	Endereco    string `json:"endereco"`
	Cidade      string `json:"cidade"`
	CEP         string `json:"cep"`
}

// GerarDocumentoVencidosRequest selects which expired-stock document to
// produce. The recipient is only required for the invoice request, never
// stored.
type GerarDocumentoVencidosRequest struct {
	Tipo         string               `json:"tipo" binding:"required"`
	Destinatario *DestinatarioRequest `json:"destinatario"`
}

func (r GerarDocumentoVencidosRequest) ResolveTipo() entities.TipoDocumentoVencidos {
	return entities.TipoDocumentoVencidos(strings.ToLower(strings.TrimSpace(r.Tipo)))
}

func (r GerarDocumentoVencidosRequest) ResolveDestinatario() *entities.Destinatario {
	if r.Destinatario == nil {
		return nil
	}
	return &entities.Destinatario{
		RazaoSocial: strings.TrimSpace(r.Destinatario.RazaoSocial),
		CNPJ:        strings.TrimSpace(r.Destinatario.CNPJ),
		Endereco:    strings.TrimSpace(r.Destinatario.Endereco),
		Cidade:      strings.TrimSpace(r.Destinatario.Cidade),
		CEP:         strings.TrimSpace(r.Destinatario.CEP),
	}
}
