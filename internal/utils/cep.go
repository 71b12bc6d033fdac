package utils

// SanitizeCEP remove máscara e qualquer outro caractere não numérico
// ("77001-432" -> "77001432").
func SanitizeCEP(s string) string {
	return SanitizeCNPJ(s) // mesma regra: só dígitos
}

// CEP válido = exatamente 8 dígitos, não todos iguais
func ValidateCEP(cep string) bool {
	digits := SanitizeCEP(cep)
	if len(digits) != 8 {
		return false
	}
	allEq := true
	for i := 1; i < 8; i++ {
		if digits[i] != digits[0] {
			allEq = false
			break
		}
	}
	return !allEq
}
