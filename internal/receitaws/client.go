package receitaws

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Werneck0live/consulta-cnpj/internal/models"
	"github.com/Werneck0live/consulta-cnpj/internal/utils"
)

var (
	// A API devolve 200 com status=ERROR quando o CNPJ não existe na base
	ErrNaoEncontrada = errors.New("cnpj not found at receitaws")
	// Plano gratuito: máximo de 3 requisições por minuto
	ErrLimiteRequisicoes = errors.New("receitaws rate limit reached")
	ErrTimeout           = errors.New("receitaws timeout")
)

type Client struct {
	http *resty.Client
}

// NewClient aponta para https://receitaws.com.br em produção; os testes
// passam a URL de um httptest.Server.
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

type atividade struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// payload bruto da ReceitaWS; só os campos que persistimos
type payload struct {
	Status             string      `json:"status"`
	Message            string      `json:"message"`
	CNPJ               string      `json:"cnpj"`
	Nome               string      `json:"nome"`
	Fantasia           string      `json:"fantasia"`
	Situacao           string      `json:"situacao"`
	AtividadePrincipal []atividade `json:"atividade_principal"`
	CEP                string      `json:"cep"`
	Email              string      `json:"email"`
	Logradouro         string      `json:"logradouro"`
	Numero             string      `json:"numero"`
	Municipio          string      `json:"municipio"`
	UF                 string      `json:"uf"`
}

// Consultar busca os dados cadastrais do CNPJ (já normalizado) na
// ReceitaWS e devolve o modelo pronto para persistir.
func (c *Client) Consultar(ctx context.Context, cnpj string) (*models.Company, error) {
	var p payload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&p).
		Get("/v1/cnpj/" + cnpj)
	if err != nil {
		return nil, fmt.Errorf("receitaws request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		// segue
	case http.StatusTooManyRequests:
		return nil, ErrLimiteRequisicoes
	case http.StatusGatewayTimeout:
		return nil, ErrTimeout
	default:
		return nil, fmt.Errorf("receitaws: unexpected status %d", resp.StatusCode())
	}

	if strings.EqualFold(p.Status, "ERROR") {
		return nil, ErrNaoEncontrada
	}

	doc := &models.Company{
		CNPJ:         utils.SanitizeCNPJ(p.CNPJ),
		RazaoSocial:  p.Nome,
		NomeFantasia: p.Fantasia,
		Situacao:     p.Situacao,
		CEP:          p.CEP,
		Email:        p.Email,
		Logradouro:   p.Logradouro,
		Numero:       p.Numero,
		Municipio:    p.Municipio,
		UF:           p.UF,
	}
	if doc.CNPJ == "" {
		// resposta sem cnpj no corpo: usa o consultado
		doc.CNPJ = cnpj
	}
	doc.ID = doc.CNPJ
	if len(p.AtividadePrincipal) > 0 {
		doc.AtividadePrincipal = p.AtividadePrincipal[0].Text
	}
	return doc, nil
}
