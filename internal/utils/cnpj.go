package utils

import (
	"regexp"
	"unicode"
)

// Aceita CNPJ com máscara (00.000.000/0000-00) ou só os 14 dígitos
var cnpjShape = regexp.MustCompile(`^(\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}|\d{14})$`)

// Pesos oficiais da Receita Federal, alinhados pela DIREITA contra a
// base de 12 ou 13 dígitos (evita off-by-one entre o 1º e o 2º DV)
var cnpjWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// remove qualquer coisa que não seja dígito
func SanitizeCNPJ(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// ValidateCNPJ valida formato (com ou sem máscara), rejeita os 14 dígitos
// todos iguais e confere os dois dígitos verificadores pelo algoritmo
// oficial da Receita Federal. Nunca lança erro: entrada ruim é só false.
func ValidateCNPJ(cnpj string) bool {
	if !cnpjShape.MatchString(cnpj) {
		return false
	}

	digits := SanitizeCNPJ(cnpj)

	allEq := true
	for i := 1; i < 14; i++ {
		if digits[i] != digits[0] {
			allEq = false
			break
		}
	}
	if allEq {
		return false
	}

	first := calcCheckDigit(digits[:12])
	second := calcCheckDigit(digits[:12] + string(first))

	return digits[12] == first && digits[13] == second
}

// calcCheckDigit recebe a base de 12 ou 13 dígitos e devolve o DV.
// Soma ponderada módulo 11; resto 0 ou 1 vira dígito '0'.
func calcCheckDigit(partial string) byte {
	offset := len(cnpjWeights) - len(partial)
	total := 0
	for i := 0; i < len(partial); i++ {
		total += int(partial[i]-'0') * cnpjWeights[i+offset]
	}
	rest := total % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + 11 - rest)
}
