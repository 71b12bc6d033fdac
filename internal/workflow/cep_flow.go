package workflow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Werneck0live/consulta-cnpj/internal/models"
	"github.com/Werneck0live/consulta-cnpj/internal/utils"
	"github.com/Werneck0live/consulta-cnpj/internal/viacep"
)

type ConsultadorCEP interface {
	Consultar(ctx context.Context, cep string) (*models.Endereco, error)
}

const AbaCEPs = "CEPS"

var headerDadosCEP = []string{"cep", "logradouro", "bairro", "localidade", "uf"}

// CEPFlow lê CEPs da aba de entrada, consulta a ViaCEP e grava os
// endereços na aba Dados do mesmo arquivo.
type CEPFlow struct {
	Sheet   Sheet
	Cliente ConsultadorCEP
	Log     *slog.Logger
}

func (f *CEPFlow) Run(ctx context.Context) (*Resumo, error) {
	log := f.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With("flow", "cep")

	ceps, err := f.Sheet.LerColuna(AbaCEPs)
	if err != nil {
		return nil, err
	}
	saved, err := f.Sheet.ChavesSalvas(AbaDados)
	if err != nil {
		return nil, err
	}
	log.Info("flow_start", "total", len(ceps), "ja_salvos", len(saved))

	res := &Resumo{}
	for _, raw := range ceps {
		if !utils.ValidateCEP(raw) {
			log.Warn("cep_invalido", "raw", raw)
			res.Invalidos++
			continue
		}
		cep := utils.SanitizeCEP(raw)
		if _, ok := saved[cep]; ok {
			log.Info("cep_ja_consultado", "cep", cep)
			res.Pulados++
			continue
		}

		end, err := f.Cliente.Consultar(ctx, cep)
		if err != nil {
			if errors.Is(err, viacep.ErrNaoEncontrado) {
				log.Warn("cep_nao_encontrado", "cep", cep)
			} else {
				log.Warn("consulta_falhou", "cep", cep, "err", err)
			}
			res.Falhas++
			continue
		}

		// a aba guarda o CEP sem máscara, igual à chave de deduplicação
		linha := []string{cep, end.Logradouro, end.Bairro, end.Localidade, end.UF}
		if err := f.Sheet.AppendLinha(AbaDados, headerDadosCEP, linha); err != nil {
			return res, err
		}
		saved[cep] = struct{}{}
		res.Consultados++
		log.Info("cep_salvo", "cep", cep, "localidade", end.Localidade)
	}

	if err := f.Sheet.Salvar(); err != nil {
		return res, err
	}
	log.Info("flow_done", "consultados", res.Consultados, "pulados", res.Pulados,
		"invalidos", res.Invalidos, "falhas", res.Falhas)
	return res, nil
}
