package ws

import (
	"log/slog"
	"testing"
	"time"
)

func TestHub_Broadcast(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	c1 := &Client{Send: make(chan []byte, 1)}
	c2 := &Client{Send: make(chan []byte, 1)}
	h.Register(c1)
	h.Register(c2)

	msg := []byte(`{"action":"consulta","cnpj":"11222333000181"}`)
	h.Broadcast(msg)

	for _, c := range []*Client{c1, c2} {
		select {
		case got := <-c.Send:
			if string(got) != string(msg) {
				t.Fatalf("cliente %s recebeu %q", c.ID, got)
			}
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("timeout esperando cliente %s", c.ID)
		}
	}
}

// cliente com buffer cheio é removido e tem o canal fechado
func TestHub_DropaClienteLento(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	lento := &Client{Send: make(chan []byte)} // sem buffer, nunca drena
	rapido := &Client{Send: make(chan []byte, 4)}
	h.Register(lento)
	h.Register(rapido)

	h.Broadcast([]byte("a"))
	h.Broadcast([]byte("b"))

	// o rápido recebe os dois; quando o segundo chegou, o hub já
	// processou os broadcasts e removeu o lento
	for i := 0; i < 2; i++ {
		select {
		case <-rapido.Send:
		case <-time.After(500 * time.Millisecond):
			t.Fatal("timeout esperando cliente rápido")
		}
	}

	select {
	case _, ok := <-lento.Send:
		if ok {
			t.Fatal("cliente lento não deveria receber mensagem")
		}
		// ok=false: canal fechado pelo drop, como esperado
	case <-time.After(time.Second):
		t.Fatal("timeout esperando fechamento do cliente lento")
	}
}
