package motorista

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/orgao"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var schemaCriar = validation.Schema{
	"orgaoId": {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"nome":    {Obrigatorio: true, Tipo: validation.Texto},
	"cpf":     {Obrigatorio: true, Tipo: validation.Texto},
	"cnh":     {Obrigatorio: true, Tipo: validation.Texto},
	"ativo":   {Tipo: validation.Booleano},
}

var schemaAtualizar = validation.Schema{
	"orgaoId": {Tipo: validation.Inteiro, Positivo: true},
	"nome":    {Tipo: validation.Texto},
	"cnh":     {Tipo: validation.Texto},
	"ativo":   {Tipo: validation.Booleano},
}

type criarMotoristaRequest struct {
	OrgaoID uint   `json:"orgaoId"`
	Nome    string `json:"nome"`
	CPF     string `json:"cpf"`
	CNH     string `json:"cnh"`
	Ativo   *bool  `json:"ativo"`
}

type atualizarMotoristaRequest struct {
	OrgaoID *uint   `json:"orgaoId"`
	Nome    *string `json:"nome"`
	CNH     *string `json:"cnh"`
	Ativo   *bool   `json:"ativo"`
}

type Handler struct {
	DB        *gorm.DB
	Repo      *Repository
	OrgaoRepo orgao.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db), OrgaoRepo: orgao.NewRepository()}
}

// POST /motoristas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	corpo, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "corpo ilegível", http.StatusBadRequest)
		return
	}
	if viol := schemaCriar.ValidarJSON(corpo); len(viol) > 0 {
		validation.EscreverViolacoes(w, viol)
		return
	}
	var req criarMotoristaRequest
	json.Unmarshal(corpo, &req)

	if _, err := h.OrgaoRepo.BuscarPorID(h.DB, req.OrgaoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperror.Escrever(w, apperror.NaoEncontrado("orgao", req.OrgaoID))
			return
		}
		http.Error(w, "erro ao consultar órgão", http.StatusInternalServerError)
		return
	}
	if _, err := h.Repo.BuscarPorCPF(req.CPF); err == nil {
		apperror.Escrever(w, apperror.Conflito("motorista", req.CPF, "já existe motorista com esse CPF"))
		return
	}

	m := Motorista{
		OrgaoID: req.OrgaoID,
		Nome:    req.Nome,
		CPF:     req.CPF,
		CNH:     req.CNH,
		Ativo:   true,
	}
	if req.Ativo != nil {
		m.Ativo = *req.Ativo
	}
	if err := h.Repo.Criar(&m); err != nil {
		http.Error(w, "erro ao criar motorista", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"mensagem": "motorista criado com sucesso", "motorista": m})
}

// GET /motoristas?page&limit&ativo&orgaoId
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := paginacao.Normalizar(q.Get("page"), q.Get("limit"))

	filtro := Filtro{Ativo: paginacao.BoolQuery(q.Get("ativo"))}
	if id, err := strconv.Atoi(q.Get("orgaoId")); err == nil && id > 0 {
		v := uint(id)
		filtro.OrgaoID = &v
	}

	var (
		itens []Motorista
		total int64
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		itens, err = h.Repo.Listar(filtro, params.Offset(), params.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = h.Repo.Contar(filtro)
		return err
	})
	if err := g.Wait(); err != nil {
		http.Error(w, "erro ao listar motoristas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"mensagem":   "motoristas listados com sucesso",
		"itens":      itens,
		"pagination": params.Montar(total),
	})
}

// GET /motoristas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		apperror.Escrever(w, apperror.NaoEncontrado("motorista", uint(id)))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"mensagem": "motorista encontrado", "motorista": m})
}

// PATCH /motoristas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	corpo, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "corpo ilegível", http.StatusBadRequest)
		return
	}
	if viol := schemaAtualizar.ValidarJSON(corpo); len(viol) > 0 {
		validation.EscreverViolacoes(w, viol)
		return
	}
	var req atualizarMotoristaRequest
	json.Unmarshal(corpo, &req)

	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		apperror.Escrever(w, apperror.NaoEncontrado("motorista", uint(id)))
		return
	}
	if req.OrgaoID != nil {
		if _, err := h.OrgaoRepo.BuscarPorID(h.DB, *req.OrgaoID); err != nil {
			apperror.Escrever(w, apperror.NaoEncontrado("orgao", *req.OrgaoID))
			return
		}
		m.OrgaoID = *req.OrgaoID
	}
	if req.Nome != nil {
		m.Nome = *req.Nome
	}
	if req.CNH != nil {
		m.CNH = *req.CNH
	}
	if req.Ativo != nil {
		m.Ativo = *req.Ativo
	}
	if err := h.Repo.Atualizar(m); err != nil {
		http.Error(w, "erro ao atualizar motorista", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"mensagem": "motorista atualizado com sucesso", "motorista": m})
}

// DELETE /motoristas/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.BuscarPorID(uint(id)); err != nil {
		apperror.Escrever(w, apperror.NaoEncontrado("motorista", uint(id)))
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao excluir motorista", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "motorista excluído com sucesso"})
}
