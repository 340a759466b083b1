package entities

import (
	"testing"
	"time"
)

func TestStatusDevolucao_Proximo(t *testing.T) {
	t.Run("walks the lifecycle in order", func(t *testing.T) {
		s := StatusSolicitacaoNFD
		quer := []StatusDevolucao{StatusAguardarColeta, StatusAguardandoCredito, StatusDevolucaoFinalizada}
		for _, esperado := range quer {
			prox, ok := s.Proximo()
			if !ok {
				t.Fatalf("expected transition from %s, got none", s)
			}
			if prox != esperado {
				t.Fatalf("expected %s after %s, got %s", esperado, s, prox)
			}
			s = prox
		}
	})

	t.Run("terminal has no next", func(t *testing.T) {
		if _, ok := StatusDevolucaoFinalizada.Proximo(); ok {
			t.Fatalf("expected no transition from terminal status")
		}
	})

	t.Run("unknown has no next", func(t *testing.T) {
		if _, ok := StatusDevolucao("cancelada").Proximo(); ok {
			t.Fatalf("expected no transition from unknown status")
		}
	})
}

func TestStatusDevolucao_Etapa(t *testing.T) {
	casos := []struct {
		status StatusDevolucao
		etapa  int
	}{
		{StatusSolicitacaoNFD, 1},
		{StatusAguardarColeta, 2},
		{StatusAguardandoCredito, 3},
		{StatusDevolucaoFinalizada, 4},
		{StatusDevolucao("qualquer"), 0},
	}
	for _, c := range casos {
		if got := c.status.Etapa(); got != c.etapa {
			t.Fatalf("etapa of %q: expected %d, got %d", c.status, c.etapa, got)
		}
	}
}

func TestStatusDevolucao_Rotulo(t *testing.T) {
	casos := map[StatusDevolucao]string{
		StatusSolicitacaoNFD:      "Solicitação NFD",
		StatusAguardarColeta:      "Aguardar Coleta",
		StatusAguardandoCredito:   "Aguardando Crédito",
		StatusDevolucaoFinalizada: "Finalizada",
	}
	for status, rotulo := range casos {
		if got := status.Rotulo(); got != rotulo {
			t.Fatalf("rotulo of %q: expected %q, got %q", status, rotulo, got)
		}
	}
}

func TestStatusDevolucao_CamposEditaveis(t *testing.T) {
	t.Run("first stage unlocks the core fields only", func(t *testing.T) {
		campos := StatusSolicitacaoNFD.CamposEditaveis()
		for _, campo := range []string{CampoNotaFiscalEntrada, CampoDistribuidora, CampoMotivo, CampoProdutos, CampoProtocolo} {
			if !campos[campo] {
				t.Fatalf("expected %s editable at first stage", campo)
			}
		}
		if campos[CampoNFDNumero] || campos[CampoNFDValor] || campos[CampoDataColeta] {
			t.Fatalf("later-stage fields must be locked at first stage")
		}
	})

	t.Run("second stage adds nfd fields", func(t *testing.T) {
		campos := StatusAguardarColeta.CamposEditaveis()
		if !campos[CampoNFDNumero] || !campos[CampoNFDValor] {
			t.Fatalf("expected nfd fields editable at second stage")
		}
		if campos[CampoDataColeta] {
			t.Fatalf("data_coleta must stay locked at second stage")
		}
	})

	t.Run("third stage adds data_coleta", func(t *testing.T) {
		if !StatusAguardandoCredito.CamposEditaveis()[CampoDataColeta] {
			t.Fatalf("expected data_coleta editable at third stage")
		}
	})

	t.Run("set only grows until the terminal state", func(t *testing.T) {
		anterior := map[string]bool{}
		for _, s := range []StatusDevolucao{StatusSolicitacaoNFD, StatusAguardarColeta, StatusAguardandoCredito} {
			campos := s.CamposEditaveis()
			for campo := range anterior {
				if !campos[campo] {
					t.Fatalf("field %s was editable at an earlier stage but locked at %s", campo, s)
				}
			}
			anterior = campos
		}
	})

	t.Run("terminal locks everything", func(t *testing.T) {
		if len(StatusDevolucaoFinalizada.CamposEditaveis()) != 0 {
			t.Fatalf("expected no editable field after finalization")
		}
	})

	t.Run("unknown status locks everything", func(t *testing.T) {
		if len(StatusDevolucao("x").CamposEditaveis()) != 0 {
			t.Fatalf("expected no editable field for unknown status")
		}
	})
}

func TestOrdenarParaExibicao(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	entrada := []Devolucao{
		{ID: "a", Status: StatusDevolucaoFinalizada, DataRealizada: base.Add(48 * time.Hour)},
		{ID: "b", Status: StatusSolicitacaoNFD, DataRealizada: base},
		{ID: "c", Status: StatusAguardandoCredito, DataRealizada: base.Add(24 * time.Hour)},
		{ID: "d", Status: StatusDevolucaoFinalizada, DataRealizada: base.Add(-24 * time.Hour)},
	}

	ordenado := OrdenarParaExibicao(entrada)

	quer := []string{"c", "b", "a", "d"}
	for i, id := range quer {
		if ordenado[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, ordenado[i].ID)
		}
	}

	// Finalized entries come after every active entry, newest first inside
	// each partition.
	viuFinalizada := false
	for _, d := range ordenado {
		if d.Status.Terminal() {
			viuFinalizada = true
		} else if viuFinalizada {
			t.Fatalf("active return %s listed after a finalized one", d.ID)
		}
	}

	if entrada[0].ID != "a" {
		t.Fatalf("input slice must not be reordered")
	}
}
