package response

import "farmagest/internal/domain/entities"

type BlocoResponse struct {
	Tipo      string     `json:"tipo"`
	Texto     string     `json:"texto,omitempty"`
	Cabecalho []string   `json:"cabecalho,omitempty"`
	Linhas    [][]string `json:"linhas,omitempty"`
}

type DocumentoResponse struct {
	NomeArquivo string          `json:"nome_arquivo"`
	Blocos      []BlocoResponse `json:"blocos"`
}

func FromDocumento(d entities.Documento) DocumentoResponse {
	blocos := make([]BlocoResponse, 0, len(d.Blocos))
	for _, b := range d.Blocos {
		blocos = append(blocos, BlocoResponse{
			Tipo:      string(b.Tipo),
			Texto:     b.Texto,
			Cabecalho: b.Cabecalho,
			Linhas:    b.Linhas,
		})
	}
	return DocumentoResponse{NomeArquivo: d.NomeArquivo, Blocos: blocos}
}
