package combustivel

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// POST /combustiveis
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	corpo, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "corpo ilegível", http.StatusBadRequest)
		return
	}
	if v := schemaCriar.ValidarJSON(corpo); len(v) > 0 {
		validation.EscreverViolacoes(w, v)
		return
	}
	var req criarCombustivelRequest
	json.Unmarshal(corpo, &req)

	c, err := h.Service.Criar(req)
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(respostaCombustivel{Mensagem: "combustível criado com sucesso", Combustivel: *c})
}

// GET /combustiveis?page&limit&ativo
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := paginacao.Normalizar(q.Get("page"), q.Get("limit"))
	filtro := Filtro{Ativo: paginacao.BoolQuery(q.Get("ativo"))}

	itens, pag, err := h.Service.Listar(params, filtro)
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(respostaLista{Mensagem: "combustíveis listados com sucesso", Itens: itens, Pagination: pag})
}

// GET /combustiveis/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Service.BuscarPorID(uint(id))
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(respostaCombustivel{Mensagem: "combustível encontrado", Combustivel: *c})
}

// PATCH /combustiveis/{id}
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
	if v := schemaAtualizar.ValidarJSON(corpo); len(v) > 0 {
		validation.EscreverViolacoes(w, v)
		return
	}
	var req atualizarCombustivelRequest
	json.Unmarshal(corpo, &req)

	c, err := h.Service.Atualizar(uint(id), req)
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(respostaCombustivel{Mensagem: "combustível atualizado com sucesso", Combustivel: *c})
}

// DELETE /combustiveis/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Service.Remover(uint(id)); err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "combustível excluído com sucesso"})
}
