package pkg

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

func TestFormatarMoeda(t *testing.T) {
	casos := []struct {
		valor    string
		esperado string
	}{
		{"0", "R$ 0,00"},
		{"1.5", "R$ 1,50"},
		{"10.005", "R$ 10,01"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.8", "R$ 1.234.567,80"},
		{"-42.1", "R$ -42,10"},
	}
	for _, c := range casos {
		v := decimal.RequireFromString(c.valor)
		if got := FormatarMoeda(v); got != c.esperado {
			t.Fatalf("FormatarMoeda(%s): expected %q, got %q", c.valor, c.esperado, got)
		}
	}
}

func TestFormatarCPF(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"12345678901", "123.456.789-01"},
		{"123.456.789-01", "123.456.789-01"},
		{"1234567890", "1234567890"},
		{"", ""},
		{"abc", "abc"},
	}
	for _, c := range casos {
		if got := FormatarCPF(c.entrada); got != c.esperado {
			t.Fatalf("FormatarCPF(%q): expected %q, got %q", c.entrada, c.esperado, got)
		}
	}
}

func TestFormatarData(t *testing.T) {
	d := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	if got := FormatarData(d); got != "2 de março de 2026" {
		t.Fatalf("expected %q, got %q", "2 de março de 2026", got)
	}
}

func TestDeterminarUnidadePeloNome(t *testing.T) {
	casos := []struct {
		nome     string
		esperado string
	}{
		{"Paracetamol Drg 500mg", "caixa"},
		{"Xarope Vick", "frasco"},
		{"Amoxicilina 250ml", "frasco"},
		{"Dipirona", "unidade"},
		{"", "unidade"},
	}
	for _, c := range casos {
		if got := DeterminarUnidadePeloNome(c.nome); got != c.esperado {
			t.Fatalf("unit for %q: expected %q, got %q", c.nome, c.esperado, got)
		}
	}
}

func TestGerarNomeArquivo(t *testing.T) {
	data := time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)

	t.Run("fills placeholders with padded day and month", func(t *testing.T) {
		got := GerarNomeArquivo("{{NOME}} - {{DD}}-{{MM}}", "Maria", data)
		if got != "Maria - 05-02" {
			t.Fatalf("expected %q, got %q", "Maria - 05-02", got)
		}
	})

	t.Run("truncates long names to 40 characters", func(t *testing.T) {
		longo := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"
		got := GerarNomeArquivo("{{NOME}}", longo, data)
		if got != longo[:40] {
			t.Fatalf("expected 40-char name, got %q (len %d)", got, len(got))
		}
	})

	t.Run("truncates accented names on runes", func(t *testing.T) {
		longo := strings.Repeat("ã", 45)
		got := GerarNomeArquivo("{{NOME}}", longo, data)
		if !utf8.ValidString(got) {
			t.Fatalf("expected valid utf-8, got %q", got)
		}
		if contagem := utf8.RuneCountInString(got); contagem != 40 {
			t.Fatalf("expected 40 runes, got %d (%q)", contagem, got)
		}
	})
}
