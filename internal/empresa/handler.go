package empresa

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

// POST /empresas
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
	var req criarEmpresaRequest
	json.Unmarshal(corpo, &req)

	e, err := h.Service.Criar(req)
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(respostaEmpresa{Mensagem: "empresa criada com sucesso", Empresa: *e})
}

// GET /empresas?page&limit&ativo
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
	json.NewEncoder(w).Encode(respostaLista{Mensagem: "empresas listadas com sucesso", Itens: itens, Pagination: pag})
}

// GET /empresas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	e, err := h.Service.BuscarPorID(uint(id))
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(respostaEmpresa{Mensagem: "empresa encontrada", Empresa: *e})
}

// PATCH /empresas/{id}
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
	var req atualizarEmpresaRequest
	json.Unmarshal(corpo, &req)

	e, err := h.Service.Atualizar(uint(id), req)
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(respostaEmpresa{Mensagem: "empresa atualizada com sucesso", Empresa: *e})
}

// DELETE /empresas/{id}
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
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "empresa excluída com sucesso"})
}
