package cotaorgao

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

// POST /cotas-orgao
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
	var req criarCotaRequest
	json.Unmarshal(corpo, &req)

	dto, err := h.Service.Criar(req)
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(respostaCota{Mensagem: "cota criada com sucesso", Cota: *dto})
}

// GET /cotas-orgao?page&limit&ativa&processoId&orgaoId
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := paginacao.Normalizar(q.Get("page"), q.Get("limit"))

	filtro := Filtro{Ativa: paginacao.BoolQuery(q.Get("ativa"))}
	if id, err := strconv.Atoi(q.Get("processoId")); err == nil && id > 0 {
		v := uint(id)
		filtro.ProcessoID = &v
	}
	if id, err := strconv.Atoi(q.Get("orgaoId")); err == nil && id > 0 {
		v := uint(id)
		filtro.OrgaoID = &v
	}

	itens, pag, err := h.Service.Listar(params, filtro)
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(respostaLista{Mensagem: "cotas listadas com sucesso", Itens: itens, Pagination: pag})
}

// GET /cotas-orgao/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	dto, err := h.Service.BuscarPorID(uint(id))
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(respostaCota{Mensagem: "cota encontrada", Cota: *dto})
}

// PATCH /cotas-orgao/{id}
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
	var req atualizarCotaRequest
	json.Unmarshal(corpo, &req)

	dto, err := h.Service.Atualizar(uint(id), req)
	if err != nil {
		apperror.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(respostaCota{Mensagem: "cota atualizada com sucesso", Cota: *dto})
}

// DELETE /cotas-orgao/{id}
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
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "cota excluída com sucesso"})
}
