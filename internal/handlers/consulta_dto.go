package handlers

// ConsultaDTO é o contrato do POST /api/consultas. Os dados cadastrais
// vêm da ReceitaWS; o cliente só informa o CNPJ e, opcionalmente, o
// quadro de funcionários (para o cálculo da cota PcD).
type ConsultaDTO struct {
	CNPJ               string `json:"cnpj"`
	NumeroFuncionarios *int   `json:"numero_funcionarios,omitempty"`
}
