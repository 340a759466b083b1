package pkg

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var mesesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatarMoeda renders a monetary value in BRL ("R$ 1.234,56").
// Rounding to two digits happens here and nowhere else.
func FormatarMoeda(v decimal.Decimal) string {
	fixed := v.StringFixed(2)

	negativo := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	inteiro, centavos := parts[0], parts[1]

	var b strings.Builder
	for i, d := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + "," + centavos
	if negativo {
		out = "R$ -" + b.String() + "," + centavos
	}
	return out
}

// FormatarCPF formats an 11-digit CPF as XXX.XXX.XXX-XX. Anything that is
// not a full CPF is returned unchanged.
func FormatarCPF(cpf string) string {
	clean := somenteDigitos(cpf)
	if len(clean) != 11 {
		return cpf
	}
	return clean[0:3] + "." + clean[3:6] + "." + clean[6:9] + "-" + clean[9:11]
}

func somenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatarData renders a date in long pt-BR form ("2 de janeiro de 2026").
func FormatarData(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), mesesPtBR[t.Month()-1], t.Year())
}

// DeterminarUnidadePeloNome infers the unit noun used in quantity phrases
// from the medication name.
func DeterminarUnidadePeloNome(nome string) string {
	if nome == "" {
		return "unidade"
	}
	lower := strings.ToLower(nome)

	if strings.Contains(lower, "drg") {
		return "caixa"
	}
	if strings.Contains(lower, "xarope") || strings.Contains(lower, "ml") {
		return "frasco"
	}
	return "unidade"
}

const nomeArquivoMaxNome = 40

// GerarNomeArquivo fills a filename template containing {{NOME}}, {{DD}} and
// {{MM}} placeholders.
func GerarNomeArquivo(formato, nome string, data time.Time) string {
	curto := nome
	if runes := []rune(curto); len(runes) > nomeArquivoMaxNome {
		curto = string(runes[:nomeArquivoMaxNome])
	}
	out := strings.ReplaceAll(formato, "{{NOME}}", curto)
	out = strings.ReplaceAll(out, "{{DD}}", zeroPad2(data.Day()))
	out = strings.ReplaceAll(out, "{{MM}}", zeroPad2(int(data.Month())))
	return out
}

func zeroPad2(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}
