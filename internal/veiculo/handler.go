package veiculo

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/categoria"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var schemaCriar = validation.Schema{
	"categoriaId": {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"placa":       {Obrigatorio: true, Tipo: validation.Texto},
	"modelo":      {Obrigatorio: true, Tipo: validation.Texto},
	"ano":         {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"ativo":       {Tipo: validation.Booleano},
}

var schemaAtualizar = validation.Schema{
	"categoriaId": {Tipo: validation.Inteiro, Positivo: true},
	"placa":       {Tipo: validation.Texto},
	"modelo":      {Tipo: validation.Texto},
	"ano":         {Tipo: validation.Inteiro, Positivo: true},
	"ativo":       {Tipo: validation.Booleano},
}

type criarVeiculoRequest struct {
	CategoriaID uint   `json:"categoriaId"`
	Placa       string `json:"placa"`
	Modelo      string `json:"modelo"`
	Ano         int    `json:"ano"`
	Ativo       *bool  `json:"ativo"`
}

type atualizarVeiculoRequest struct {
	CategoriaID *uint   `json:"categoriaId"`
	Placa       *string `json:"placa"`
	Modelo      *string `json:"modelo"`
	Ano         *int    `json:"ano"`
	Ativo       *bool   `json:"ativo"`
}

type Handler struct {
	DB            *gorm.DB
	Repo          *Repository
	CategoriaRepo categoria.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db), CategoriaRepo: categoria.NewRepository()}
}

// POST /veiculos
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
	var req criarVeiculoRequest
	json.Unmarshal(corpo, &req)

	if _, err := h.CategoriaRepo.BuscarPorID(h.DB, req.CategoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperror.Escrever(w, apperror.NaoEncontrado("categoria", req.CategoriaID))
			return
		}
		http.Error(w, "erro ao consultar categoria", http.StatusInternalServerError)
		return
	}
	if _, err := h.Repo.BuscarPorPlaca(req.Placa); err == nil {
		apperror.Escrever(w, apperror.Conflito("veiculo", req.Placa, "já existe veículo com essa placa"))
		return
	}

	v := Veiculo{
		CategoriaID: req.CategoriaID,
		Placa:       req.Placa,
		Modelo:      req.Modelo,
		Ano:         req.Ano,
		Ativo:       true,
	}
	if req.Ativo != nil {
		v.Ativo = *req.Ativo
	}
	if err := h.Repo.Criar(&v); err != nil {
		http.Error(w, "erro ao criar veículo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"mensagem": "veículo criado com sucesso", "veiculo": v})
}

// GET /veiculos?page&limit&ativo&categoriaId
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := paginacao.Normalizar(q.Get("page"), q.Get("limit"))

	filtro := Filtro{Ativo: paginacao.BoolQuery(q.Get("ativo"))}
	if id, err := strconv.Atoi(q.Get("categoriaId")); err == nil && id > 0 {
		v := uint(id)
		filtro.CategoriaID = &v
	}

	var (
		itens []Veiculo
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
		http.Error(w, "erro ao listar veículos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"mensagem":   "veículos listados com sucesso",
		"itens":      itens,
		"pagination": params.Montar(total),
	})
}

// GET /veiculos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		apperror.Escrever(w, apperror.NaoEncontrado("veiculo", uint(id)))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"mensagem": "veículo encontrado", "veiculo": v})
}

// PATCH /veiculos/{id}
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
	var req atualizarVeiculoRequest
	json.Unmarshal(corpo, &req)

	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		apperror.Escrever(w, apperror.NaoEncontrado("veiculo", uint(id)))
		return
	}
	if req.CategoriaID != nil {
		if _, err := h.CategoriaRepo.BuscarPorID(h.DB, *req.CategoriaID); err != nil {
			apperror.Escrever(w, apperror.NaoEncontrado("categoria", *req.CategoriaID))
			return
		}
		v.CategoriaID = *req.CategoriaID
	}
	if req.Placa != nil && *req.Placa != v.Placa {
		if existente, err := h.Repo.BuscarPorPlaca(*req.Placa); err == nil && existente.ID != v.ID {
			apperror.Escrever(w, apperror.Conflito("veiculo", *req.Placa, "já existe veículo com essa placa"))
			return
		}
		v.Placa = *req.Placa
	}
	if req.Modelo != nil {
		v.Modelo = *req.Modelo
	}
	if req.Ano != nil {
		v.Ano = *req.Ano
	}
	if req.Ativo != nil {
		v.Ativo = *req.Ativo
	}
	if err := h.Repo.Atualizar(v); err != nil {
		http.Error(w, "erro ao atualizar veículo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"mensagem": "veículo atualizado com sucesso", "veiculo": v})
}

// DELETE /veiculos/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.BuscarPorID(uint(id)); err != nil {
		apperror.Escrever(w, apperror.NaoEncontrado("veiculo", uint(id)))
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao excluir veículo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "veículo excluído com sucesso"})
}
