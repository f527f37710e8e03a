package qrcode

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/motorista"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
	"github.com/GestaoGas/api-abastecimento/internal/veiculo"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var schemaItem = validation.Schema{
	"tipo":        {Obrigatorio: true, Tipo: validation.Texto, Enum: Tipos},
	"motoristaId": {Tipo: validation.Inteiro, Positivo: true},
	"veiculoId":   {Tipo: validation.Inteiro, Positivo: true},
	"validoAte":   {Obrigatorio: true, Tipo: validation.Texto},
}

var schemaLote = validation.Schema{
	"itens": {Obrigatorio: true, Tipo: validation.Lista, MinItens: 1, Itens: &schemaItem},
}

type itemLoteRequest struct {
	Tipo        string `json:"tipo"`
	MotoristaID *uint  `json:"motoristaId"`
	VeiculoID   *uint  `json:"veiculoId"`
	ValidoAte   string `json:"validoAte"`
}

type loteRequest struct {
	Itens []itemLoteRequest `json:"itens"`
}

type Handler struct {
	DB            *gorm.DB
	Repo          *Repository
	MotoristaRepo *motorista.Repository
	VeiculoRepo   *veiculo.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:            db,
		Repo:          NewRepository(db),
		MotoristaRepo: motorista.NewRepository(db),
		VeiculoRepo:   veiculo.NewRepository(db),
	}
}

// POST /qrcodes/lote — emite um lote de credenciais em uma só operação
func (h *Handler) EmitirLote(w http.ResponseWriter, r *http.Request) {
	corpo, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "corpo ilegível", http.StatusBadRequest)
		return
	}
	if viol := schemaLote.ValidarJSON(corpo); len(viol) > 0 {
		validation.EscreverViolacoes(w, viol)
		return
	}
	var req loteRequest
	json.Unmarshal(corpo, &req)

	codes := make([]QRCode, 0, len(req.Itens))
	for i, item := range req.Itens {
		validoAte, err := time.Parse(time.RFC3339, item.ValidoAte)
		if err != nil {
			apperror.Escrever(w, apperror.Invalido("qrcode", i,
				fmt.Sprintf("itens[%d].validoAte fora do formato RFC3339", i)))
			return
		}
		if !validoAte.After(time.Now()) {
			apperror.Escrever(w, apperror.Invalido("qrcode", i,
				fmt.Sprintf("itens[%d].validoAte já expirado", i)))
			return
		}

		code := QRCode{
			Codigo:    uuid.NewString(),
			Tipo:      item.Tipo,
			ValidoAte: validoAte,
			Ativo:     true,
		}
		switch item.Tipo {
		case TipoMotorista:
			if item.MotoristaID == nil {
				apperror.Escrever(w, apperror.Invalido("qrcode", i,
					fmt.Sprintf("itens[%d].motoristaId obrigatório para tipo MOTORISTA", i)))
				return
			}
			if _, err := h.MotoristaRepo.BuscarPorID(*item.MotoristaID); err != nil {
				apperror.Escrever(w, apperror.NaoEncontrado("motorista", *item.MotoristaID))
				return
			}
			code.MotoristaID = item.MotoristaID
		case TipoVeiculo:
			if item.VeiculoID == nil {
				apperror.Escrever(w, apperror.Invalido("qrcode", i,
					fmt.Sprintf("itens[%d].veiculoId obrigatório para tipo VEICULO", i)))
				return
			}
			if _, err := h.VeiculoRepo.BuscarPorID(*item.VeiculoID); err != nil {
				apperror.Escrever(w, apperror.NaoEncontrado("veiculo", *item.VeiculoID))
				return
			}
			code.VeiculoID = item.VeiculoID
		}
		codes = append(codes, code)
	}

	if err := h.Repo.CriarLote(codes); err != nil {
		http.Error(w, "erro ao emitir lote de QR codes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"mensagem": "lote emitido com sucesso",
		"itens":    codes,
	})
}

// GET /qrcodes?page&limit&ativo&tipo&motoristaId&veiculoId
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := paginacao.Normalizar(q.Get("page"), q.Get("limit"))

	filtro := Filtro{Ativo: paginacao.BoolQuery(q.Get("ativo"))}
	if tipo := q.Get("tipo"); tipo != "" {
		filtro.Tipo = &tipo
	}
	if id, err := strconv.Atoi(q.Get("motoristaId")); err == nil && id > 0 {
		v := uint(id)
		filtro.MotoristaID = &v
	}
	if id, err := strconv.Atoi(q.Get("veiculoId")); err == nil && id > 0 {
		v := uint(id)
		filtro.VeiculoID = &v
	}

	var (
		itens []QRCode
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
		http.Error(w, "erro ao listar QR codes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"mensagem":   "QR codes listados com sucesso",
		"itens":      itens,
		"pagination": params.Montar(total),
	})
}

// GET /qrcodes/{codigo} — consulta pelo próprio código emitido
func (h *Handler) BuscarPorCodigo(w http.ResponseWriter, r *http.Request) {
	codigo := mux.Vars(r)["codigo"]
	c, err := h.Repo.BuscarPorCodigo(codigo)
	if err != nil {
		apperror.Escrever(w, apperror.NaoEncontrado("qrcode", codigo))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// PATCH /qrcodes/{codigo}/revogar — desativa a credencial
func (h *Handler) Revogar(w http.ResponseWriter, r *http.Request) {
	codigo := mux.Vars(r)["codigo"]
	c, err := h.Repo.BuscarPorCodigo(codigo)
	if err != nil {
		apperror.Escrever(w, apperror.NaoEncontrado("qrcode", codigo))
		return
	}
	if !c.Ativo {
		apperror.Escrever(w, apperror.Conflito("qrcode", codigo, "credencial já revogada"))
		return
	}
	c.Ativo = false
	if err := h.Repo.Atualizar(c); err != nil {
		http.Error(w, "erro ao revogar QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "QR code revogado com sucesso"})
}
