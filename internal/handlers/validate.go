package handlers

import "errors"

func validateConsultaDTO(d ConsultaDTO) error {
	if d.CNPJ == "" {
		return errors.New("cnpj is required")
	}
	if d.NumeroFuncionarios != nil && *d.NumeroFuncionarios < 0 {
		return errors.New("numero_funcionarios must be >= 0")
	}
	return nil
}
