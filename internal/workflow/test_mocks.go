package workflow

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/consulta-cnpj/internal/models"
)

type cnpjClientMock struct {
	ConsultarFn func(ctx context.Context, cnpj string) (*models.Company, error)
}

func (m *cnpjClientMock) Consultar(ctx context.Context, cnpj string) (*models.Company, error) {
	if m.ConsultarFn == nil {
		return nil, errors.New("ConsultarFn not set")
	}
	return m.ConsultarFn(ctx, cnpj)
}

type cepClientMock struct {
	ConsultarFn func(ctx context.Context, cep string) (*models.Endereco, error)
}

func (m *cepClientMock) Consultar(ctx context.Context, cep string) (*models.Endereco, error) {
	if m.ConsultarFn == nil {
		return nil, errors.New("ConsultarFn not set")
	}
	return m.ConsultarFn(ctx, cep)
}

type pubMock struct {
	PublishFn func(ctx context.Context, body string, headers amqp.Table) error
	CloseFn   func() error
}

func (p *pubMock) Publish(ctx context.Context, body string, headers amqp.Table) error {
	if p.PublishFn == nil {
		return nil
	}
	return p.PublishFn(ctx, body, headers)
}

func (p *pubMock) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}
