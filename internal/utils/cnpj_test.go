package utils

/*

go test -run 'TestValidateCNPJ|TestSanitizeCNPJ' -v ./internal/utils -count=1

*/

import "testing"

func TestSanitizeCNPJ(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"11.222.333/0001-81", "11222333000181"},
		{"11222333000181", "11222333000181"},
		{"abc", ""},
		{"", ""},
		{"a1b2c3", "123"},
		{" 12.345 ", "12345"},
	}
	for _, tc := range cases {
		if got := SanitizeCNPJ(tc.in); got != tc.want {
			t.Fatalf("SanitizeCNPJ(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

// sanitizar duas vezes não pode mudar nada
func TestSanitizeCNPJ_Idempotente(t *testing.T) {
	for _, s := range []string{"11.222.333/0001-81", "abc123", "", "////--..", "11222333000181"} {
		once := SanitizeCNPJ(s)
		if twice := SanitizeCNPJ(once); twice != once {
			t.Fatalf("não idempotente: %q -> %q -> %q", s, once, twice)
		}
	}
}

func TestValidateCNPJ(t *testing.T) {
	cases := []struct {
		cnpj string
		want bool
	}{
		// mesmo CNPJ, com e sem máscara
		{"11.222.333/0001-81", true},
		{"11222333000181", true},
		{"11.444.777/0001-61", true},
		{"11444777000161", true},
		{"12345678000195", true},

		// base correta, DV errado
		{"11.222.333/0001-00", false},
		{"11222333000180", false},
		{"11222333000191", false},

		// todos os dígitos iguais passam no formato mas não são CNPJ
		{"00000000000000", false},
		{"11111111111111", false},
		{"11.111.111/1111-11", false},

		// formato quebrado é rejeitado antes do DV
		{"abc", false},
		{"", false},
		{"123", false},
		{"1122233300018", false},
		{"112223330001811", false},
		{"11-222-333/0001.81", false},
		{"11.222.333/0001-8a", false},
	}
	for _, tc := range cases {
		if got := ValidateCNPJ(tc.cnpj); got != tc.want {
			t.Fatalf("ValidateCNPJ(%q)=%v want=%v", tc.cnpj, got, tc.want)
		}
	}
}

// máscara não pode influenciar o resultado: só os dígitos contam
func TestValidateCNPJ_MascaraIndiferente(t *testing.T) {
	pares := [][2]string{
		{"11.222.333/0001-81", "11222333000181"},
		{"11.444.777/0001-61", "11444777000161"},
		{"11.222.333/0001-00", "11222333000100"},
		{"11.111.111/1111-11", "11111111111111"},
	}
	for _, p := range pares {
		if ValidateCNPJ(p[0]) != ValidateCNPJ(p[1]) {
			t.Fatalf("máscara mudou o resultado: %q vs %q", p[0], p[1])
		}
	}
}

func TestValidateCEP(t *testing.T) {
	cases := []struct {
		cep  string
		want bool
	}{
		{"01001000", true},
		{"77001-432", true},
		{"79117440", true},
		{"00000000", false},
		{"1234567", false},
		{"123456789", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateCEP(tc.cep); got != tc.want {
			t.Fatalf("ValidateCEP(%q)=%v want=%v", tc.cep, got, tc.want)
		}
	}
}
