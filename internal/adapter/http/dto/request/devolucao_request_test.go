package request

import "testing"

func TestCriarDevolucaoRequest_ToInput(t *testing.T) {
	r := CriarDevolucaoRequest{
		NotaFiscalEntrada: "  NF-998  ",
		Distribuidora:     " Dimed ",
		Motivo:            "produto vencido",
		Produtos: []DevolucaoProdutoRequest{
			{Nome: " Dipirona 500mg ", Quantidade: 2},
		},
		Protocolo: " PRT-1 ",
	}

	in := r.ToInput()
	if in.NotaFiscalEntrada != "NF-998" || in.Distribuidora != "Dimed" || in.Protocolo != "PRT-1" {
		t.Fatalf("expected trimmed fields, got %+v", in)
	}
	if len(in.Produtos) != 1 || in.Produtos[0].Nome != "Dipirona 500mg" || in.Produtos[0].Quantidade != 2 {
		t.Fatalf("unexpected produtos: %+v", in.Produtos)
	}
}

func TestAtualizarDevolucaoRequest_ToInput(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		in := AtualizarDevolucaoRequest{}.ToInput()
		if in.NotaFiscalEntrada != nil || in.Motivo != nil || in.NFDValor != nil || in.DataColeta != nil {
			t.Fatalf("expected nil pointers, got %+v", in)
		}
		if in.Produtos != nil {
			t.Fatalf("expected nil produtos, got %+v", in.Produtos)
		}
	})

	t.Run("present fields pass through", func(t *testing.T) {
		motivo := "avaria no transporte"
		valor := 120.5
		produtos := []DevolucaoProdutoRequest{{Nome: "Xarope Vick", Quantidade: 1}}
		r := AtualizarDevolucaoRequest{
			Motivo:   &motivo,
			NFDValor: &valor,
			Produtos: &produtos,
		}

		in := r.ToInput()
		if in.Motivo == nil || *in.Motivo != motivo {
			t.Fatalf("expected motivo pointer, got %+v", in.Motivo)
		}
		if in.NFDValor == nil || *in.NFDValor != 120.5 {
			t.Fatalf("expected nfd_valor pointer, got %+v", in.NFDValor)
		}
		if len(in.Produtos) != 1 || in.Produtos[0].Nome != "Xarope Vick" {
			t.Fatalf("unexpected produtos: %+v", in.Produtos)
		}
	})

	t.Run("empty produtos slice clears the list", func(t *testing.T) {
		produtos := []DevolucaoProdutoRequest{}
		in := AtualizarDevolucaoRequest{Produtos: &produtos}.ToInput()
		if in.Produtos == nil || len(in.Produtos) != 0 {
			t.Fatalf("expected empty non-nil produtos, got %+v", in.Produtos)
		}
	})
}

func TestGerarDocumentoVencidosRequest_ResolveTipo(t *testing.T) {
	r := GerarDocumentoVencidosRequest{Tipo: "  NOTA "}
	if got := r.ResolveTipo(); string(got) != "nota" {
		t.Fatalf("expected nota, got %q", got)
	}

	r2 := GerarDocumentoVencidosRequest{Tipo: "Descarte"}
	if got := r2.ResolveTipo(); string(got) != "descarte" {
		t.Fatalf("expected descarte, got %q", got)
	}
}

func TestGerarDocumentoVencidosRequest_ResolveDestinatario(t *testing.T) {
	r := GerarDocumentoVencidosRequest{Tipo: "descarte"}
	if got := r.ResolveDestinatario(); got != nil {
		t.Fatalf("expected nil destinatario, got %+v", got)
	}

	r2 := GerarDocumentoVencidosRequest{
		Tipo: "nota",
		Destinatario: &DestinatarioRequest{
			RazaoSocial: " Dimed S.A. ",
			CNPJ:        "92.665.611/0001-77",
			Cidade:      " Porto Alegre ",
		},
	}
	dest := r2.ResolveDestinatario()
	if dest == nil {
		t.Fatal("expected destinatario")
	}
	if dest.RazaoSocial != "Dimed S.A." || dest.Cidade != "Porto Alegre" {
		t.Fatalf("expected trimmed destinatario, got %+v", dest)
	}
}
