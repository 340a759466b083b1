package usecase

// Fixed document texts. The wording is part of the printed documents and
// must not drift, so everything lives here instead of scattered literals.
const (
	textoEstabelecimentoTitulo = "1. Estabelecimento"
	textoEstabelecimento       = "Nome Fantasia: Agafarma Tuparendi. Razão Social: Luiz Moacir Machry. " +
		"CNPJ: 89.055.768/0001-76. Inscrição Estadual (IE): 1520012834. " +
		"Endereço: Avenida Mauá, 1761 - Tuparendi/RS"

	textoPacienteTitulo = "2. Dados do Paciente"
	textoPacienteNome   = "Nome:"
	textoPacienteCPF    = "CPF:"

	textoOrcamentoTitulo             = "Orçamento de Medicamentos"
	textoMedicamentosTitulo          = "3. Medicamentos"
	textoMedicamentosQuantidade      = "quantidade:"
	textoMedicamentosPorMes          = "por mês"
	textoMedicamentosValorUnitario   = "valor unitário:"
	textoMedicamentosCustoMensal     = "custo mensal:"
	textoMedicamentosCustoTratamento = "custo para"

	textoTotaisTitulo            = "4. Total do Orçamento"
	textoTotalMensal             = "Valor total do orçamento mensal:"
	textoTotalTratamentoVariavel = "Valor total do orçamento para o tratamento completo:"
	textoTotalTratamentoFixo     = "Valor total para"

	textoAssinaturaCidade   = "Tuparendi"
	textoAssinaturaLinha    = "_____________________________"
	textoAssinaturaFarmacia = "FARMACIA AGAFARMA TUPARENDI"

	formatoNomeArquivoOrcamento = "{{NOME}} - {{DD}}-{{MM}}"

	textoNotaTitulo    = "Solicitação de NFD"
	textoNotaParagrafo = "Solicito NFD, para dar baixa no sistema SNGPC, dos produtos controlado " +
		"e antimicrobiano, conforme a RDC 344/98."
	textoNotaDestinatario = "DESTINATÁRIO:"

	textoDescarteTitulo     = "MEDICAMENTOS VENCIDOS (PORTARIA 344/98 e Antimicrobianos)"
	textoDescarteParagrafo1 = "Por meio deste, estão recolhendo os seguintes medicamentos sujeitos " +
		"ao controle especial (portaria 344/98) e os antimicrobianos."
	textoDescarteParagrafo2 = "Ficando com a ARL Coleta e transporte de Resíduos LTDA, no momento da coleta."
	textoDescarteSignatario = "João Vitor Machry"
	textoDescarteRegistro   = "CRF/RS: 586549"
)
