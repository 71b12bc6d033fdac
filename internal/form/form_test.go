package form

import "testing"

func TestRegistroDaLinha(t *testing.T) {
	header := []string{"Nome", "Email", "Telefone", "Sobre"}

	reg := RegistroDaLinha(header, []string{"Augusto Cesar", "augusto@example.com", "(31) 97185-0807"})
	if reg["Nome"] != "Augusto Cesar" {
		t.Fatalf("Nome=%q", reg["Nome"])
	}
	if reg["Telefone"] != "(31) 97185-0807" {
		t.Fatalf("Telefone=%q", reg["Telefone"])
	}
	// coluna sem célula na linha fica vazia, não ausente
	if v, ok := reg["Sobre"]; !ok || v != "" {
		t.Fatalf("Sobre: ok=%v v=%q", ok, v)
	}
}

func TestRegistroDaLinha_TrimECabecalhoVazio(t *testing.T) {
	reg := RegistroDaLinha([]string{" Nome ", ""}, []string{"  Ana  ", "descartado"})
	if reg["Nome"] != "Ana" {
		t.Fatalf("esperava trim no cabeçalho e no valor: %#v", reg)
	}
	if _, ok := reg[""]; ok {
		t.Fatal("cabeçalho vazio não deveria virar chave")
	}
}
