package form

import (
	"fmt"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Campo liga uma coluna da planilha ao atributo name do input no
// formulário (o SurveyMonkey usa names numéricos, ex. "166517069").
type Campo struct {
	Coluna  string
	Seletor string
}

// Registro é uma linha da planilha indexada pelo cabeçalho.
type Registro map[string]string

// RegistroDaLinha monta o registro casando cabeçalho e linha. Colunas
// além do cabeçalho são ignoradas; faltantes ficam vazias.
func RegistroDaLinha(header, row []string) Registro {
	reg := make(Registro, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if i < len(row) {
			reg[h] = strings.TrimSpace(row[i])
		} else {
			reg[h] = ""
		}
	}
	return reg
}

// Preencher digita os valores do registro nos inputs mapeados e clica
// no botão de envio. A página já deve estar carregada.
func Preencher(page *rod.Page, campos []Campo, reg Registro, submit string) error {
	for _, c := range campos {
		val, ok := reg[c.Coluna]
		if !ok || val == "" {
			continue // coluna vazia não apaga o que o form tiver por padrão
		}
		el, err := page.Element(fmt.Sprintf(`[name=%q]`, c.Seletor))
		if err != nil {
			return fmt.Errorf("campo %s (name=%s): %w", c.Coluna, c.Seletor, err)
		}
		if err := el.Input(val); err != nil {
			return fmt.Errorf("digitar %s: %w", c.Coluna, err)
		}
	}

	btn, err := page.Element(submit)
	if err != nil {
		return fmt.Errorf("botão de envio %q: %w", submit, err)
	}
	if err := btn.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("enviar formulário: %w", err)
	}
	return nil
}
