package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Werneck0live/consulta-cnpj/internal/models"
)

var ErrDuplicateCNPJ = errors.New("cnpj already exists")

// CompanyRepository guarda o resultado das consultas à ReceitaWS.
// O índice único no cnpj é o que garante "uma consulta persistida por
// empresa" mesmo com execuções repetidas.
type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection("empresas")}
}

func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "cnpj", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_cnpj"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	if err == nil {
		return nil
	}
	// Se já existir com outra opção, dropa e recria
	if ce, ok := err.(mongo.CommandError); ok && ce.Code == 85 { // IndexOptionsConflict
		if _, dropErr := r.coll.Indexes().DropOne(ctx, "uniq_cnpj"); dropErr != nil {
			return fmt.Errorf("drop index uniq_cnpj: %w", dropErr)
		}
		_, createErr := r.coll.Indexes().CreateOne(ctx, model)
		return createErr
	}
	return err
}

func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) (string, error) {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		if isDuplicate(err) {
			return "", ErrDuplicateCNPJ
		}
		return "", err
	}
	id, _ := res.InsertedID.(string) // _id é o CNPJ normalizado
	return id, nil
}

func (r *CompanyRepository) GetByCNPJ(ctx context.Context, cnpj string) (*models.Company, error) {
	var c models.Company
	if err := r.coll.FindOne(ctx, bson.M{"_id": cnpj}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) GetAll(ctx context.Context, limit, skip int64) ([]models.Company, error) {
	opts := options.Find().SetLimit(limit).SetSkip(skip).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := []models.Company{}
	for cur.Next(ctx) {
		var c models.Company
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, cur.Err()
}

// Update refresca os campos cadastrais de uma consulta repetida.
// Só campos não vazios entram no $set.
func (r *CompanyRepository) Update(ctx context.Context, cnpj string, c *models.Company) error {
	set := bson.M{
		"updated_at": time.Now(),
	}
	if c.RazaoSocial != "" {
		set["razao_social"] = c.RazaoSocial
	}
	if c.NomeFantasia != "" {
		set["nome_fantasia"] = c.NomeFantasia
	}
	if c.Situacao != "" {
		set["situacao"] = c.Situacao
	}
	if c.AtividadePrincipal != "" {
		set["atividade_principal"] = c.AtividadePrincipal
	}
	if c.CEP != "" {
		set["cep"] = c.CEP
	}
	if c.Email != "" {
		set["email"] = c.Email
	}
	if c.Logradouro != "" {
		set["logradouro"] = c.Logradouro
	}
	if c.Numero != "" {
		set["numero"] = c.Numero
	}
	if c.Municipio != "" {
		set["municipio"] = c.Municipio
	}
	if c.UF != "" {
		set["uf"] = c.UF
	}
	if c.NumeroFuncionarios != 0 {
		set["numero_funcionarios"] = c.NumeroFuncionarios
	}
	if c.NumeroMinimoPCDExigidos != 0 {
		set["numero_minimo_pcd_exigidos"] = c.NumeroMinimoPCDExigidos
	}

	_, err := r.coll.UpdateByID(ctx, cnpj, bson.M{"$set": set})
	if err != nil && isDuplicate(err) {
		return ErrDuplicateCNPJ
	}
	return err
}

func (r *CompanyRepository) Delete(ctx context.Context, cnpj string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": cnpj})
	return err
}

func isDuplicate(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
