package entities

// TipoBloco classifies a block of document content.
type TipoBloco string

const (
	BlocoTitulo     TipoBloco = "titulo"
	BlocoSecao      TipoBloco = "secao"
	BlocoParagrafo  TipoBloco = "paragrafo"
	BlocoTabela     TipoBloco = "tabela"
	BlocoAssinatura TipoBloco = "assinatura"
)

// Bloco is one typed block of printable content. Texto is used by every
// kind except tables; Linhas holds the assinatura lines and the table rows.
type Bloco struct {
	Tipo      TipoBloco  `json:"tipo"`
	Texto     string     `json:"texto,omitempty"`
	Cabecalho []string   `json:"cabecalho,omitempty"`
	Linhas    [][]string `json:"linhas,omitempty"`
}

// Documento is the assembled, render-ready content of a PDF document. The
// rendering collaborator flows the blocks onto A4 pages.
type Documento struct {
	NomeArquivo string  `json:"nome_arquivo"`
	Blocos      []Bloco `json:"blocos"`
}

// TipoDocumentoVencidos selects which expired-items document to assemble.
type TipoDocumentoVencidos string

const (
	DocumentoVencidosNota     TipoDocumentoVencidos = "nota"
	DocumentoVencidosDescarte TipoDocumentoVencidos = "descarte"
)
