package entities

import "time"

// Vencido is a stock-keeping record for expired medication pending disposal
// or return to a distributor.
//
// Storage model (DynamoDB):
//   - PK: usuario_id
//   - SK: id
type Vencido struct {
	ID               string    `json:"id"`
	UsuarioID        string    `json:"usuario_id"`
	Medicamento      string    `json:"medicamento"`
	Laboratorio      string    `json:"laboratorio"`
	Quantidade       int       `json:"quantidade"`
	Lote             string    `json:"lote"`
	CodigoBarras     string    `json:"codigo_barras"`
	MSRegistro       string    `json:"ms_registro"`
	NCM              string    `json:"ncm"`
	CEST             string    `json:"cest"`
	CFOP             string    `json:"cfop"`
	PrecoUnitario    float64   `json:"preco_unitario"`
	DataCriacao      time.Time `json:"data_criacao"`
	DataUltimaEdicao time.Time `json:"data_ultima_edicao"`
}

// Destinatario identifies the recipient printed on the "Nota" (NFD request)
// document. It is supplied by the caller on every render and never
// persisted server-side.
type Destinatario struct {
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj"`
	Endereco    string `json:"endereco"`
	Cidade      string `json:"cidade"`
	CEP         string `json:"cep"`
}
