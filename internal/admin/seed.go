package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Werneck0live/consulta-cnpj/internal/models"
	"github.com/Werneck0live/consulta-cnpj/internal/repository"
	"github.com/Werneck0live/consulta-cnpj/internal/utils"
)

//go:embed seeds/companies.json
var companiesJSON []byte

type seedItem struct {
	CNPJ               string `json:"cnpj"`
	RazaoSocial        string `json:"razao_social"`
	NomeFantasia       string `json:"nome_fantasia"`
	Situacao           string `json:"situacao"`
	AtividadePrincipal string `json:"atividade_principal"`
	CEP                string `json:"cep"`
	Email              string `json:"email"`
	Municipio          string `json:"municipio"`
	UF                 string `json:"uf"`
	NumeroFuncionarios int    `json:"numero_funcionarios"`
}

// Idempotente: cria se não existir; se já existir, ignora.
// Útil para subir o ambiente sem gastar as 3 requisições/minuto da
// ReceitaWS com empresas conhecidas.
func SeedCompanies(ctx context.Context, repo *repository.CompanyRepository, log *slog.Logger) error {
	var items []seedItem
	if err := json.Unmarshal(companiesJSON, &items); err != nil {
		return err
	}

	for _, s := range items {
		if !utils.ValidateCNPJ(s.CNPJ) {
			log.Warn("seed_skip_invalid_cnpj", "raw", s.CNPJ)
			continue
		}
		cnpj := utils.SanitizeCNPJ(s.CNPJ)

		c := models.Company{
			ID:                      cnpj, // _id é o CNPJ normalizado
			CNPJ:                    cnpj,
			RazaoSocial:             s.RazaoSocial,
			NomeFantasia:            s.NomeFantasia,
			Situacao:                s.Situacao,
			AtividadePrincipal:      s.AtividadePrincipal,
			CEP:                     s.CEP,
			Email:                   s.Email,
			Municipio:               s.Municipio,
			UF:                      s.UF,
			NumeroFuncionarios:      s.NumeroFuncionarios,
			NumeroMinimoPCDExigidos: utils.ComputeMinPCD(s.NumeroFuncionarios),
		}

		// timeout curto por item pra não travar
		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		_, err := repo.Create(ictx, &c)
		cancel()

		if err != nil {
			if errors.Is(err, repository.ErrDuplicateCNPJ) {
				log.Info("seed_company_exists", "cnpj", cnpj)
				continue
			}
			return err
		}
		log.Info("seed_company_created", "cnpj", cnpj)
	}

	log.Info("seed_companies_done", "count", len(items))
	return nil
}
