package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/consulta-cnpj/internal/models"
	"github.com/Werneck0live/consulta-cnpj/internal/receitaws"
	"github.com/Werneck0live/consulta-cnpj/internal/repository"
	"github.com/Werneck0live/consulta-cnpj/internal/utils"
)

type Repository interface {
	GetAll(ctx context.Context, limit, skip int64) ([]models.Company, error)
	Create(ctx context.Context, c *models.Company) (string, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*models.Company, error)
	Update(ctx context.Context, cnpj string, upd *models.Company) error
	Delete(ctx context.Context, cnpj string) error
}

type Consultador interface {
	Consultar(ctx context.Context, cnpj string) (*models.Company, error)
}

type Publisher interface {
	Publish(ctx context.Context, body string, headers amqp.Table) error
	Close() error
}

// ConsultaHandler expõe a consulta de CNPJ por HTTP: valida, busca no
// cache (mongo), consulta a ReceitaWS quando necessário e persiste.
type ConsultaHandler struct {
	Repo    Repository
	Cliente Consultador
	Pub     Publisher // opcional
}

func NewConsultaHandler(repo Repository, cliente Consultador, pub Publisher) *ConsultaHandler {
	return &ConsultaHandler{Repo: repo, Cliente: cliente, Pub: pub}
}

// garante que a requisição venha no padrão /api/empresas/{cnpj}
func parseCNPJFromPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 3 && parts[0] == "api" && parts[1] == "empresas" && parts[2] != "" {
		return parts[2], true
	}
	return "", false
}

func (h *ConsultaHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /api/consultas
func (h *ConsultaHandler) Consultas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var dto ConsultaDTO
	if err := utils.DecodeStrict(r.Body, &dto); err != nil {
		utils.BadRequest(w, utils.FormatUnknownFieldError(err))
		return
	}
	if err := validateConsultaDTO(dto); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}
	if !utils.ValidateCNPJ(dto.CNPJ) {
		utils.BadRequest(w, "invalid cnpj")
		return
	}
	cnpj := utils.SanitizeCNPJ(dto.CNPJ)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// cache: consulta já persistida não volta na ReceitaWS
	if cached, err := h.Repo.GetByCNPJ(ctx, cnpj); err == nil {
		utils.WriteJSON(w, http.StatusOK, cached)
		return
	}

	doc, err := h.Cliente.Consultar(ctx, cnpj)
	if err != nil {
		switch {
		case errors.Is(err, receitaws.ErrNaoEncontrada):
			utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "cnpj not found"})
		case errors.Is(err, receitaws.ErrLimiteRequisicoes):
			utils.WriteJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit reached"})
		case errors.Is(err, receitaws.ErrTimeout):
			utils.WriteJSON(w, http.StatusGatewayTimeout, map[string]string{"error": "registry timeout"})
		default:
			utils.WriteJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return
	}

	if dto.NumeroFuncionarios != nil {
		doc.NumeroFuncionarios = *dto.NumeroFuncionarios
		doc.NumeroMinimoPCDExigidos = utils.ComputeMinPCD(*dto.NumeroFuncionarios)
	}

	if _, err := h.Repo.Create(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicateCNPJ) {
			// consulta concorrente ganhou a corrida; não é erro do cliente
			utils.WriteJSON(w, http.StatusConflict, map[string]string{"error": "cnpj already exists"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.publishEvent("Consulta", doc)
	utils.WriteJSON(w, http.StatusCreated, doc)
}

// GET /api/empresas (lista paginada das consultas persistidas)
func (h *ConsultaHandler) Empresas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	limit := int64(50)
	skip := int64(0)
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}
	if s := q.Get("skip"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil && v >= 0 {
			skip = v
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	list, err := h.Repo.GetAll(ctx, limit, skip)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// GET/DELETE /api/empresas/{cnpj}
func (h *ConsultaHandler) EmpresaByCNPJ(w http.ResponseWriter, r *http.Request) {
	cnpj, ok := parseCNPJFromPath(r.URL.Path)
	if !ok {
		utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		c, err := h.Repo.GetByCNPJ(ctx, cnpj)
		if err != nil {
			utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, c)

	case http.MethodDelete:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		// busca antes de deletar para montar o evento com o nome
		c, err := h.Repo.GetByCNPJ(ctx, cnpj)
		if err != nil {
			utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}

		if err := h.Repo.Delete(ctx, cnpj); err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		h.publishEvent("Exclusão", c)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *ConsultaHandler) publishEvent(acao string, c *models.Company) {
	if h.Pub == nil || c == nil {
		return
	}
	empresa := c.NomeFantasia
	if empresa == "" {
		if c.RazaoSocial != "" {
			empresa = c.RazaoSocial
		} else {
			empresa = c.CNPJ
		}
	}
	msg := fmt.Sprintf("%s de EMPRESA %s", acao, empresa)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_ = h.Pub.Publish(ctx, msg, amqp.Table{
		"action":    strings.ToLower(acao), // consulta|exclusão
		"cnpj":      c.CNPJ,
		"nome":      empresa,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
