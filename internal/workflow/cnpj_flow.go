package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/consulta-cnpj/internal/models"
	"github.com/Werneck0live/consulta-cnpj/internal/receitaws"
	"github.com/Werneck0live/consulta-cnpj/internal/utils"
)

// Sheet é o que os fluxos precisam de uma planilha; implementado por
// planilha.Planilha.
type Sheet interface {
	LerColuna(sheet string) ([]string, error)
	ChavesSalvas(sheet string) (map[string]struct{}, error)
	AppendLinha(sheet string, header, valores []string) error
	LerTabela(sheet string) ([]string, [][]string, error)
	Salvar() error
}

type ConsultadorCNPJ interface {
	Consultar(ctx context.Context, cnpj string) (*models.Company, error)
}

type Publisher interface {
	Publish(ctx context.Context, body string, headers amqp.Table) error
	Close() error
}

// Resumo de uma execução: quanto foi consultado, pulado por já estar
// na aba de resultados e rejeitado pela validação.
type Resumo struct {
	Consultados int
	Pulados     int
	Invalidos   int
	Falhas      int
}

const (
	AbaCNPJs = "CNPJS"
	AbaDados = "Dados"
)

var headerDadosCNPJ = []string{"CNPJ", "nome", "situacao", "atividade_principal", "cep", "email"}

// CNPJFlow lê CNPJs da aba de entrada, consulta a ReceitaWS e grava o
// resultado na aba Dados. Pub é opcional (nil = sem eventos).
type CNPJFlow struct {
	Sheet   Sheet
	Cliente ConsultadorCNPJ
	Pub     Publisher
	Log     *slog.Logger
}

// Run processa um identificador por vez, sem retry: inválido e erro de
// consulta viram log; limite de requisições encerra a execução (plano
// gratuito da ReceitaWS: 3 por minuto).
func (f *CNPJFlow) Run(ctx context.Context) (*Resumo, error) {
	log := f.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With("flow", "cnpj")

	cnpjs, err := f.Sheet.LerColuna(AbaCNPJs)
	if err != nil {
		return nil, err
	}
	saved, err := f.Sheet.ChavesSalvas(AbaDados)
	if err != nil {
		return nil, err
	}
	log.Info("flow_start", "total", len(cnpjs), "ja_salvos", len(saved))

	res := &Resumo{}
	for _, raw := range cnpjs {
		if !utils.ValidateCNPJ(raw) {
			log.Warn("cnpj_invalido", "raw", raw)
			res.Invalidos++
			continue
		}
		cnpj := utils.SanitizeCNPJ(raw)
		if _, ok := saved[cnpj]; ok {
			log.Info("cnpj_ja_consultado", "cnpj", cnpj)
			res.Pulados++
			continue
		}

		doc, err := f.Cliente.Consultar(ctx, cnpj)
		if err != nil {
			if errors.Is(err, receitaws.ErrLimiteRequisicoes) {
				// sem retry/backoff: grava o que já temos e para
				log.Warn("limite_requisicoes", "cnpj", cnpj)
				if saveErr := f.Sheet.Salvar(); saveErr != nil {
					return res, saveErr
				}
				return res, err
			}
			log.Warn("consulta_falhou", "cnpj", cnpj, "err", err)
			res.Falhas++
			continue
		}

		linha := []string{doc.CNPJ, doc.RazaoSocial, doc.Situacao, doc.AtividadePrincipal, doc.CEP, doc.Email}
		if err := f.Sheet.AppendLinha(AbaDados, headerDadosCNPJ, linha); err != nil {
			return res, err
		}
		saved[cnpj] = struct{}{}
		res.Consultados++
		log.Info("cnpj_salvo", "cnpj", cnpj, "nome", doc.RazaoSocial)

		publishCompanyEvent(f.Pub, "Consulta", doc)
	}

	if err := f.Sheet.Salvar(); err != nil {
		return res, err
	}
	log.Info("flow_done", "consultados", res.Consultados, "pulados", res.Pulados,
		"invalidos", res.Invalidos, "falhas", res.Falhas)
	return res, nil
}

// mesmo formato de evento do cmd/api, para o feed websocket não
// distinguir origem
func publishCompanyEvent(pub Publisher, acao string, c *models.Company) {
	if pub == nil || c == nil {
		return
	}
	empresa := c.NomeFantasia
	if empresa == "" {
		if c.RazaoSocial != "" {
			empresa = c.RazaoSocial
		} else {
			empresa = c.CNPJ
		}
	}
	msg := fmt.Sprintf("%s de EMPRESA %s", acao, empresa)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_ = pub.Publish(ctx, msg, amqp.Table{
		"action":    strings.ToLower(acao),
		"cnpj":      c.CNPJ,
		"nome":      empresa,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
