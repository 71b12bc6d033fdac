package workflow

/*

go test -run 'TestFormFlow' -v ./internal/workflow -count=1

*/

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Werneck0live/consulta-cnpj/internal/form"
	"github.com/Werneck0live/consulta-cnpj/internal/planilha"
)

func novaPlanilhaContatos(t *testing.T) *planilha.Planilha {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contatos.xlsx")
	p, err := planilha.Abrir(path)
	if err != nil {
		t.Fatalf("abrir: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })

	header := []string{"Nome", "Email", "Telefone", "Sobre"}
	linhas := [][]string{
		{"Augusto Cesar", "augusto@example.com", "(31) 97185-0807", "Desenvolvedor RPA"},
		{"Ana Souza", "ana@example.com", "(11) 91234-5678", "QA"},
	}
	for _, l := range linhas {
		if err := p.AppendLinha(AbaContatos, header, l); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	return p
}

func TestFormFlow_EnviaTodosOsRegistros(t *testing.T) {
	p := novaPlanilhaContatos(t)

	var enviados []form.Registro
	flow := &FormFlow{
		Sheet: p,
		Preencher: func(_ context.Context, reg form.Registro) error {
			enviados = append(enviados, reg)
			return nil
		},
	}

	res, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Consultados != 2 || res.Falhas != 0 {
		t.Fatalf("resumo: %+v", res)
	}
	if enviados[0]["Nome"] != "Augusto Cesar" || enviados[1]["Email"] != "ana@example.com" {
		t.Fatalf("registros enviados: %#v", enviados)
	}
}

func TestFormFlow_FalhaNaoDerrubaOLote(t *testing.T) {
	p := novaPlanilhaContatos(t)

	calls := 0
	flow := &FormFlow{
		Sheet: p,
		Preencher: func(_ context.Context, _ form.Registro) error {
			calls++
			if calls == 1 {
				return errors.New("campo não encontrado")
			}
			return nil
		},
	}

	res, err := flow.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Falhas != 1 || res.Consultados != 1 {
		t.Fatalf("resumo: %+v", res)
	}
}
