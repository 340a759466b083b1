package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"farmagest/internal/domain/entities"
	"farmagest/internal/usecase/interfaces"
	"farmagest/pkg"

	"github.com/shopspring/decimal"
)

var (
	ErrOrcamentoSemMedicamentos = errors.New("orcamento has no medications")
	ErrVencidosVazio            = errors.New("no vencido items to print")
	ErrDestinatarioObrigatorio  = errors.New("destinatario required for the nota document")
	ErrTipoDocumentoInvalido    = errors.New("unknown vencidos document kind")
	ErrRenderizacao             = errors.New("pdf rendering failed")
)

// PDFGerado is a rendered document ready for download.
type PDFGerado struct {
	NomeArquivo string
	Conteudo    []byte
}

// IDocumentoUseCase assembles printable documents and dispatches them to
// the rendering collaborator.
type IDocumentoUseCase interface {
	MontarOrcamento(ctx context.Context, usuarioID, orcamentoID string) (entities.Documento, error)
	GerarPDFOrcamento(ctx context.Context, usuarioID, orcamentoID string) (PDFGerado, error)
	MontarVencidos(ctx context.Context, usuarioID string, tipo entities.TipoDocumentoVencidos, destinatario *entities.Destinatario) (entities.Documento, error)
	GerarPDFVencidos(ctx context.Context, usuarioID string, tipo entities.TipoDocumentoVencidos, destinatario *entities.Destinatario) (PDFGerado, error)
}

type DocumentoUseCase struct {
	orcamentos interfaces.IOrcamentoRepository
	vencidos   interfaces.IVencidoRepository
	renderer   interfaces.IDocumentoRenderer
	agora      func() time.Time
}

var _ IDocumentoUseCase = (*DocumentoUseCase)(nil)

func NewDocumentoUseCase(
	orcamentos interfaces.IOrcamentoRepository,
	vencidos interfaces.IVencidoRepository,
	renderer interfaces.IDocumentoRenderer,
) *DocumentoUseCase {
	return &DocumentoUseCase{
		orcamentos: orcamentos,
		vencidos:   vencidos,
		renderer:   renderer,
		agora:      func() time.Time { return time.Now() },
	}
}

func (u *DocumentoUseCase) MontarOrcamento(ctx context.Context, usuarioID, orcamentoID string) (entities.Documento, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return entities.Documento{}, ErrUsuarioNaoInformado
	}
	orcamentoID = strings.TrimSpace(orcamentoID)
	if orcamentoID == "" {
		return entities.Documento{}, ErrOrcamentoIDInvalido
	}

	o, err := u.orcamentos.GetByID(ctx, usuarioID, orcamentoID)
	if err != nil {
		return entities.Documento{}, err
	}
	if o.ID == "" {
		return entities.Documento{}, ErrOrcamentoNaoEncontrado
	}
	return MontarDocumentoOrcamento(o, u.agora())
}

func (u *DocumentoUseCase) GerarPDFOrcamento(ctx context.Context, usuarioID, orcamentoID string) (PDFGerado, error) {
	doc, err := u.MontarOrcamento(ctx, usuarioID, orcamentoID)
	if err != nil {
		return PDFGerado{}, err
	}
	return u.renderizar(ctx, doc)
}

func (u *DocumentoUseCase) MontarVencidos(ctx context.Context, usuarioID string, tipo entities.TipoDocumentoVencidos, destinatario *entities.Destinatario) (entities.Documento, error) {
	usuarioID = strings.TrimSpace(usuarioID)
	if usuarioID == "" {
		return entities.Documento{}, ErrUsuarioNaoInformado
	}

	itens, err := u.vencidos.List(ctx, usuarioID)
	if err != nil {
		return entities.Documento{}, err
	}

	switch tipo {
	case entities.DocumentoVencidosNota:
		return MontarDocumentoNotaVencidos(itens, destinatario, u.agora())
	case entities.DocumentoVencidosDescarte:
		return MontarDocumentoDescarteVencidos(itens, u.agora())
	default:
		return entities.Documento{}, ErrTipoDocumentoInvalido
	}
}

func (u *DocumentoUseCase) GerarPDFVencidos(ctx context.Context, usuarioID string, tipo entities.TipoDocumentoVencidos, destinatario *entities.Destinatario) (PDFGerado, error) {
	doc, err := u.MontarVencidos(ctx, usuarioID, tipo, destinatario)
	if err != nil {
		return PDFGerado{}, err
	}
	return u.renderizar(ctx, doc)
}

func (u *DocumentoUseCase) renderizar(ctx context.Context, doc entities.Documento) (PDFGerado, error) {
	conteudo, err := u.renderer.Renderizar(ctx, doc)
	if err != nil {
		return PDFGerado{}, fmt.Errorf("%w: %v", ErrRenderizacao, err)
	}
	return PDFGerado{NomeArquivo: doc.NomeArquivo, Conteudo: conteudo}, nil
}

// MontarDocumentoOrcamento assembles the judicial budget quote. The block
// order mirrors the printed document: title, establishment, patient,
// numbered medication lines, totals, signature.
func MontarDocumentoOrcamento(o entities.Orcamento, agora time.Time) (entities.Documento, error) {
	if len(o.Medicamentos) == 0 {
		return entities.Documento{}, ErrOrcamentoSemMedicamentos
	}

	calc := entities.CalcularOrcamento(o.Medicamentos)

	blocos := []entities.Bloco{
		{Tipo: entities.BlocoTitulo, Texto: textoOrcamentoTitulo},
		{Tipo: entities.BlocoSecao, Texto: textoEstabelecimentoTitulo},
		{Tipo: entities.BlocoParagrafo, Texto: textoEstabelecimento},
		{Tipo: entities.BlocoSecao, Texto: textoPacienteTitulo},
		{Tipo: entities.BlocoParagrafo, Texto: textoPacienteNome + " " + o.Paciente.Identificador},
		{Tipo: entities.BlocoParagrafo, Texto: textoPacienteCPF + " " + pkg.FormatarCPF(o.Paciente.CPF)},
		{Tipo: entities.BlocoSecao, Texto: textoMedicamentosTitulo},
	}

	for i, med := range o.Medicamentos {
		blocos = append(blocos, entities.Bloco{
			Tipo:  entities.BlocoParagrafo,
			Texto: linhaMedicamento(i+1, med),
		})
	}

	blocos = append(blocos,
		entities.Bloco{Tipo: entities.BlocoSecao, Texto: textoTotaisTitulo},
		entities.Bloco{
			Tipo:  entities.BlocoParagrafo,
			Texto: textoTotalMensal + " " + pkg.FormatarMoeda(calc.TotalMensal),
		},
	)

	if calc.TotalTratamento.GreaterThan(calc.TotalMensal) {
		blocos = append(blocos, entities.Bloco{
			Tipo:  entities.BlocoParagrafo,
			Texto: linhaTotalTratamento(calc),
		})
	}

	blocos = append(blocos, entities.Bloco{
		Tipo: entities.BlocoAssinatura,
		Linhas: [][]string{{
			textoAssinaturaCidade + ", " + pkg.FormatarData(agora),
			textoAssinaturaLinha,
			textoAssinaturaFarmacia,
		}},
	})

	return entities.Documento{
		NomeArquivo: pkg.GerarNomeArquivo(formatoNomeArquivoOrcamento, o.Paciente.Identificador, agora) + ".pdf",
		Blocos:      blocos,
	}, nil
}

func linhaMedicamento(numero int, med entities.Medicamento) string {
	unidade := pkg.DeterminarUnidadePeloNome(med.Nome)
	if med.QuantidadeMensal > 1 {
		unidade += "s"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s", numero, med.Nome)
	if med.PrincipioAtivo != "" {
		fmt.Fprintf(&b, " (%s)", med.PrincipioAtivo)
	}
	fmt.Fprintf(&b, ", %s %d %s %s", textoMedicamentosQuantidade, med.QuantidadeMensal, unidade, textoMedicamentosPorMes)
	fmt.Fprintf(&b, ", %s %s", textoMedicamentosValorUnitario, pkg.FormatarMoeda(decimal.NewFromFloat(med.ValorUnitario)))
	fmt.Fprintf(&b, ", %s %s", textoMedicamentosCustoMensal, pkg.FormatarMoeda(med.CustoMensal()))
	if med.QuantidadeTratamento > 1 {
		fmt.Fprintf(&b, ", %s %d meses: %s", textoMedicamentosCustoTratamento, med.QuantidadeTratamento, pkg.FormatarMoeda(med.CustoTratamento()))
	}
	return b.String()
}

func linhaTotalTratamento(calc entities.CalculoOrcamento) string {
	if !calc.DuracaoUniforme {
		return textoTotalTratamentoVariavel + " " + pkg.FormatarMoeda(calc.TotalTratamento)
	}
	meses := "meses"
	if calc.MesesTratamento == 1 {
		meses = "mês"
	}
	return fmt.Sprintf("%s %d %s de tratamento: %s",
		textoTotalTratamentoFixo, calc.MesesTratamento, meses, pkg.FormatarMoeda(calc.TotalTratamento))
}

// MontarDocumentoNotaVencidos assembles the NFD request ("Nota") document.
// The recipient block is mandatory for this kind: assembling without a
// Destinatario is a precondition failure, never a silent omission.
func MontarDocumentoNotaVencidos(itens []entities.Vencido, destinatario *entities.Destinatario, agora time.Time) (entities.Documento, error) {
	if len(itens) == 0 {
		return entities.Documento{}, ErrVencidosVazio
	}
	if destinatario == nil {
		return entities.Documento{}, ErrDestinatarioObrigatorio
	}

	blocos := []entities.Bloco{
		{Tipo: entities.BlocoTitulo, Texto: textoNotaTitulo},
		{Tipo: entities.BlocoParagrafo, Texto: textoNotaParagrafo},
		{Tipo: entities.BlocoSecao, Texto: textoNotaDestinatario},
		{Tipo: entities.BlocoParagrafo, Texto: "Razão Social: " + destinatario.RazaoSocial},
		{Tipo: entities.BlocoParagrafo, Texto: "CNPJ: " + destinatario.CNPJ},
		{Tipo: entities.BlocoParagrafo, Texto: "Endereço: " + destinatario.Endereco},
		{Tipo: entities.BlocoParagrafo, Texto: "Cidade: " + destinatario.Cidade},
		{Tipo: entities.BlocoParagrafo, Texto: "CEP: " + destinatario.CEP},
	}

	tabela := entities.Bloco{
		Tipo:      entities.BlocoTabela,
		Cabecalho: []string{"Código", "Medicamento", "Qtd", "Lote", "NCM", "CEST", "CFOP", "Preço Unit", "Total"},
	}
	for _, item := range itens {
		preco := decimal.NewFromFloat(item.PrecoUnitario)
		total := preco.Mul(decimal.NewFromInt(int64(item.Quantidade)))
		tabela.Linhas = append(tabela.Linhas, []string{
			"",
			item.Medicamento,
			fmt.Sprintf("%d", item.Quantidade),
			item.Lote,
			item.NCM,
			item.CEST,
			item.CFOP,
			pkg.FormatarMoeda(preco),
			pkg.FormatarMoeda(total),
		})
	}
	blocos = append(blocos, tabela)

	return entities.Documento{
		NomeArquivo: "Pedido de NFD - " + agora.Format("02-01-2006") + ".pdf",
		Blocos:      blocos,
	}, nil
}

// MontarDocumentoDescarteVencidos assembles the disposal document: no
// pricing, fixed pharmacist signature.
func MontarDocumentoDescarteVencidos(itens []entities.Vencido, agora time.Time) (entities.Documento, error) {
	if len(itens) == 0 {
		return entities.Documento{}, ErrVencidosVazio
	}

	tabela := entities.Bloco{
		Tipo:      entities.BlocoTabela,
		Cabecalho: []string{"Medicamentos", "Qtd", "Fabricante", "MS", "Lote", "EAN"},
	}
	for _, item := range itens {
		tabela.Linhas = append(tabela.Linhas, []string{
			item.Medicamento,
			fmt.Sprintf("%d", item.Quantidade),
			item.Laboratorio,
			item.MSRegistro,
			item.Lote,
			item.CodigoBarras,
		})
	}

	blocos := []entities.Bloco{
		{Tipo: entities.BlocoTitulo, Texto: textoDescarteTitulo},
		{Tipo: entities.BlocoParagrafo, Texto: textoDescarteParagrafo1},
		{Tipo: entities.BlocoParagrafo, Texto: textoDescarteParagrafo2},
		tabela,
		{
			Tipo: entities.BlocoAssinatura,
			Linhas: [][]string{{
				textoAssinaturaLinha,
				textoDescarteSignatario,
				textoDescarteRegistro,
			}},
		},
	}

	return entities.Documento{
		NomeArquivo: "Etiqueta Descarte - " + agora.Format("02-01-2006") + ".pdf",
		Blocos:      blocos,
	}, nil
}
