package viacep

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Werneck0live/consulta-cnpj/internal/models"
)

// A ViaCEP responde 200 com {"erro": true} para CEP inexistente
var ErrNaoEncontrado = errors.New("cep not found at viacep")

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

type payload struct {
	models.Endereco
	Erro bool `json:"erro"`
}

// Consultar busca o endereço de um CEP (só dígitos) na ViaCEP.
func (c *Client) Consultar(ctx context.Context, cep string) (*models.Endereco, error) {
	var p payload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&p).
		Get("/ws/" + cep + "/json/")
	if err != nil {
		return nil, fmt.Errorf("viacep request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("viacep: unexpected status %d", resp.StatusCode())
	}
	if p.Erro {
		return nil, ErrNaoEncontrado
	}
	end := p.Endereco
	return &end, nil
}
