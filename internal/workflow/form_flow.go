package workflow

import (
	"context"
	"log/slog"

	"github.com/Werneck0live/consulta-cnpj/internal/form"
)

const AbaContatos = "Contatos"

// FormFlow percorre as linhas da aba Contatos e envia cada registro
// para o preenchedor (no cmd/rpa, uma página go-rod; nos testes, um
// func mock).
type FormFlow struct {
	Sheet     Sheet
	Preencher func(ctx context.Context, reg form.Registro) error
	Log       *slog.Logger
}

func (f *FormFlow) Run(ctx context.Context) (*Resumo, error) {
	log := f.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With("flow", "form")

	header, rows, err := f.Sheet.LerTabela(AbaContatos)
	if err != nil {
		return nil, err
	}
	log.Info("flow_start", "total", len(rows))

	res := &Resumo{}
	for i, row := range rows {
		reg := form.RegistroDaLinha(header, row)
		if err := f.Preencher(ctx, reg); err != nil {
			// formulário que falhou não derruba o lote inteiro
			log.Warn("form_falhou", "linha", i+2, "err", err)
			res.Falhas++
			continue
		}
		res.Consultados++
		log.Info("form_enviado", "linha", i+2, "nome", reg["Nome"])
	}

	log.Info("flow_done", "enviados", res.Consultados, "falhas", res.Falhas)
	return res, nil
}
