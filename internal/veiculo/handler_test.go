package veiculo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GestaoGas/api-abastecimento/internal/categoria"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type cenario struct {
	router *mux.Router
	cat    categoria.Categoria
}

func montarCenario(t *testing.T) cenario {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// banco em memória existe por conexão, então o pool fica em uma só
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&categoria.Categoria{}, &Veiculo{}))

	cat := categoria.Categoria{PrefeituraID: 1, TipoCategoria: "FROTA_LEVE", Nome: "Frota leve", Ativo: true}
	require.NoError(t, db.Create(&cat).Error)

	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/veiculos", h.Criar).Methods("POST")
	r.HandleFunc("/veiculos", h.Listar).Methods("GET")
	r.HandleFunc("/veiculos/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/veiculos/{id}", h.Atualizar).Methods("PATCH")
	r.HandleFunc("/veiculos/{id}", h.Remover).Methods("DELETE")

	return cenario{router: r, cat: cat}
}

func (c cenario) requisitar(t *testing.T, metodo, caminho, corpo string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if corpo == "" {
		req = httptest.NewRequest(metodo, caminho, nil)
	} else {
		req = httptest.NewRequest(metodo, caminho, strings.NewReader(corpo))
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

func TestCriarVeiculo(t *testing.T) {
	c := montarCenario(t)

	t.Run("categoria inexistente", func(t *testing.T) {
		rec := c.requisitar(t, "POST", "/veiculos",
			`{"categoriaId":999,"placa":"ABC1D23","modelo":"Saveiro","ano":2023}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("criado com envelope", func(t *testing.T) {
		rec := c.requisitar(t, "POST", "/veiculos",
			fmt.Sprintf(`{"categoriaId":%d,"placa":"ABC1D23","modelo":"Saveiro","ano":2023}`, c.cat.ID))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Mensagem string  `json:"mensagem"`
			Veiculo  Veiculo `json:"veiculo"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "veículo criado com sucesso", resp.Mensagem)
		assert.Equal(t, "ABC1D23", resp.Veiculo.Placa)
		assert.True(t, resp.Veiculo.Ativo)
	})

	t.Run("placa duplicada", func(t *testing.T) {
		rec := c.requisitar(t, "POST", "/veiculos",
			fmt.Sprintf(`{"categoriaId":%d,"placa":"ABC1D23","modelo":"Strada","ano":2024}`, c.cat.ID))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestBuscarVeiculoPorID(t *testing.T) {
	c := montarCenario(t)

	t.Run("inexistente", func(t *testing.T) {
		rec := c.requisitar(t, "GET", "/veiculos/404", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("encontrado com envelope", func(t *testing.T) {
		rec := c.requisitar(t, "POST", "/veiculos",
			fmt.Sprintf(`{"categoriaId":%d,"placa":"DEF4G56","modelo":"Hilux","ano":2022}`, c.cat.ID))
		require.Equal(t, http.StatusCreated, rec.Code)

		var criado struct {
			Veiculo Veiculo `json:"veiculo"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))

		rec = c.requisitar(t, "GET", fmt.Sprintf("/veiculos/%d", criado.Veiculo.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Mensagem string  `json:"mensagem"`
			Veiculo  Veiculo `json:"veiculo"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "veículo encontrado", resp.Mensagem)
		assert.Equal(t, "DEF4G56", resp.Veiculo.Placa)
	})
}

func TestAtualizarVeiculoParcial(t *testing.T) {
	c := montarCenario(t)

	rec := c.requisitar(t, "POST", "/veiculos",
		fmt.Sprintf(`{"categoriaId":%d,"placa":"GHI7J89","modelo":"Saveiro","ano":2021}`, c.cat.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	var criado struct {
		Veiculo Veiculo `json:"veiculo"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))

	t.Run("inexistente", func(t *testing.T) {
		rec := c.requisitar(t, "PATCH", "/veiculos/404", `{"modelo":"Strada"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("só o modelo muda", func(t *testing.T) {
		rec := c.requisitar(t, "PATCH", fmt.Sprintf("/veiculos/%d", criado.Veiculo.ID), `{"modelo":"Strada"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Mensagem string  `json:"mensagem"`
			Veiculo  Veiculo `json:"veiculo"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "veículo atualizado com sucesso", resp.Mensagem)
		assert.Equal(t, "Strada", resp.Veiculo.Modelo)
		assert.Equal(t, "GHI7J89", resp.Veiculo.Placa)
		assert.Equal(t, 2021, resp.Veiculo.Ano)
	})

	t.Run("categoria nova inexistente", func(t *testing.T) {
		rec := c.requisitar(t, "PATCH", fmt.Sprintf("/veiculos/%d", criado.Veiculo.ID), `{"categoriaId":999}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRemoverVeiculo(t *testing.T) {
	c := montarCenario(t)

	rec := c.requisitar(t, "DELETE", "/veiculos/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.requisitar(t, "POST", "/veiculos",
		fmt.Sprintf(`{"categoriaId":%d,"placa":"JKL0M12","modelo":"Hilux","ano":2020}`, c.cat.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	var criado struct {
		Veiculo Veiculo `json:"veiculo"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criado))

	rec = c.requisitar(t, "DELETE", fmt.Sprintf("/veiculos/%d", criado.Veiculo.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = c.requisitar(t, "GET", fmt.Sprintf("/veiculos/%d", criado.Veiculo.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
