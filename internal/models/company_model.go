package models

import "time"

// Company é o registro persistido de uma consulta bem-sucedida na
// ReceitaWS. O _id é o próprio CNPJ normalizado (apenas dígitos).
type Company struct {
	ID                      string    `bson:"_id,omitempty" json:"id"`
	CNPJ                    string    `bson:"cnpj" json:"cnpj"` // armazenado normalizado (apenas dígitos)
	RazaoSocial             string    `bson:"razao_social" json:"razao_social"`
	NomeFantasia            string    `bson:"nome_fantasia" json:"nome_fantasia"`
	Situacao                string    `bson:"situacao" json:"situacao"`
	AtividadePrincipal      string    `bson:"atividade_principal" json:"atividade_principal"`
	CEP                     string    `bson:"cep" json:"cep"`
	Email                   string    `bson:"email" json:"email"`
	Logradouro              string    `bson:"logradouro" json:"logradouro"`
	Numero                  string    `bson:"numero" json:"numero"`
	Municipio               string    `bson:"municipio" json:"municipio"`
	UF                      string    `bson:"uf" json:"uf"`
	NumeroFuncionarios      int       `bson:"numero_funcionarios" json:"numero_funcionarios"`
	NumeroMinimoPCDExigidos int       `bson:"numero_minimo_pcd_exigidos" json:"numero_minimo_pcd_exigidos"`
	CreatedAt               time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt               time.Time `bson:"updated_at" json:"updated_at"`
}
