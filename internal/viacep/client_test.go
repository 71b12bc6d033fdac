package viacep

/*

go test -run 'TestConsultar' -v ./internal/viacep -count=1

*/

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestConsultar_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/01001000/json/" {
			t.Fatalf("path inesperado: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "01001-000",
			"logradouro": "Praça da Sé",
			"complemento": "lado ímpar",
			"bairro": "Sé",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5 * time.Second)
	end, err := c.Consultar(context.Background(), "01001000")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if end.Logradouro != "Praça da Sé" || end.UF != "SP" {
		t.Fatalf("payload mal mapeado: %+v", end)
	}
}

func TestConsultar_NaoEncontrado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5 * time.Second)
	_, err := c.Consultar(context.Background(), "99999999")
	if !errors.Is(err, ErrNaoEncontrado) {
		t.Fatalf("want ErrNaoEncontrado got %v", err)
	}
}

func TestConsultar_StatusInesperado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5 * time.Second)
	if _, err := c.Consultar(context.Background(), "abc"); err == nil {
		t.Fatal("esperava erro para status 400")
	}
}
