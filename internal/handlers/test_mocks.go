package handlers

import (
	"context"
	"errors"

	"github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/consulta-cnpj/internal/models"
)

type repoMock struct {
	GetAllFn    func(ctx context.Context, limit, skip int64) ([]models.Company, error)
	CreateFn    func(ctx context.Context, c *models.Company) (string, error)
	GetByCNPJFn func(ctx context.Context, cnpj string) (*models.Company, error)
	UpdateFn    func(ctx context.Context, cnpj string, upd *models.Company) error
	DeleteFn    func(ctx context.Context, cnpj string) error
}

func (m *repoMock) GetAll(ctx context.Context, limit, skip int64) ([]models.Company, error) {
	if m.GetAllFn == nil {
		return nil, errors.New("GetAllFn not set")
	}
	return m.GetAllFn(ctx, limit, skip)
}
func (m *repoMock) Create(ctx context.Context, c *models.Company) (string, error) {
	if m.CreateFn == nil {
		return "", errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, c)
}
func (m *repoMock) GetByCNPJ(ctx context.Context, cnpj string) (*models.Company, error) {
	if m.GetByCNPJFn == nil {
		return nil, errors.New("GetByCNPJFn not set")
	}
	return m.GetByCNPJFn(ctx, cnpj)
}
func (m *repoMock) Update(ctx context.Context, cnpj string, upd *models.Company) error {
	if m.UpdateFn == nil {
		return errors.New("UpdateFn not set")
	}
	return m.UpdateFn(ctx, cnpj, upd)
}
func (m *repoMock) Delete(ctx context.Context, cnpj string) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, cnpj)
}

type clienteMock struct {
	ConsultarFn func(ctx context.Context, cnpj string) (*models.Company, error)
}

func (m *clienteMock) Consultar(ctx context.Context, cnpj string) (*models.Company, error) {
	if m.ConsultarFn == nil {
		return nil, errors.New("ConsultarFn not set")
	}
	return m.ConsultarFn(ctx, cnpj)
}

type pubMock struct {
	PublishFn func(ctx context.Context, body string, headers amqp091.Table) error
	CloseFn   func() error
}

func (p *pubMock) Publish(ctx context.Context, body string, headers amqp091.Table) error {
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
