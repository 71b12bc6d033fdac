//go:build integration
// +build integration

package repository

/*
	Para rodar: go test -tags=integration -v ./internal/repository -run TestCompanyRepository_Integration -count=1
*/

import (
	"context"
	"errors"
	"testing"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/Werneck0live/consulta-cnpj/internal/db"
	"github.com/Werneck0live/consulta-cnpj/internal/models"
)

// Exercita: EnsureIndexes -> Create -> duplicata -> GetByCNPJ -> Update -> GetAll -> Delete
func TestCompanyRepository_Integration_CicloCompleto(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Sobe Mongo real
	mongoC, err := mongodb.RunContainer(ctx, tc.WithImage("mongo:7"))
	if err != nil {
		t.Fatalf("start mongo: %v", err)
	}
	t.Cleanup(func() { _ = mongoC.Terminate(ctx) })

	uri, err := mongoC.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("conn string: %v", err)
	}

	client, err := db.NewMongoClient(uri)
	if err != nil {
		t.Fatalf("mongo client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	repo := NewCompanyRepository(client.Database("testdb"))
	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	c := models.Company{
		ID:                 "11222333000181",
		CNPJ:               "11222333000181",
		RazaoSocial:        "ACME S.A.",
		NomeFantasia:       "ACME",
		Situacao:           "ATIVA",
		AtividadePrincipal: "Desenvolvimento de programas",
		CEP:                "01.001-000",
		Email:              "contato@acme.com.br",
		Municipio:          "SAO PAULO",
		UF:                 "SP",
	}

	// 1) Create
	id, err := repo.Create(ctx, &c)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != c.CNPJ {
		t.Fatalf("id=%q want=%q", id, c.CNPJ)
	}

	// 2) Duplicata -> ErrDuplicateCNPJ (índice único em cnpj)
	dup := c
	dup.ID = "" // força conflito no cnpj, não no _id
	if _, err := repo.Create(ctx, &dup); !errors.Is(err, ErrDuplicateCNPJ) {
		t.Fatalf("want ErrDuplicateCNPJ got %v", err)
	}

	// 3) GetByCNPJ
	got, err := repo.GetByCNPJ(ctx, c.CNPJ)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RazaoSocial != "ACME S.A." || got.CreatedAt.IsZero() {
		t.Fatalf("doc inesperado: %+v", got)
	}

	// 4) Update refresca só campos não vazios
	if err := repo.Update(ctx, c.CNPJ, &models.Company{Situacao: "BAIXADA"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.GetByCNPJ(ctx, c.CNPJ)
	if err != nil {
		t.Fatalf("get pós-update: %v", err)
	}
	if got.Situacao != "BAIXADA" || got.RazaoSocial != "ACME S.A." {
		t.Fatalf("update alterou o que não devia: %+v", got)
	}

	// 5) GetAll
	list, err := repo.GetAll(ctx, 50, 0)
	if err != nil {
		t.Fatalf("getall: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len=%d want 1", len(list))
	}

	// 6) Delete
	if err := repo.Delete(ctx, c.CNPJ); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByCNPJ(ctx, c.CNPJ); err == nil {
		t.Fatal("esperava not found após delete")
	}
}
