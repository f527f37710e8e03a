package prefeitura

import (
	"errors"
	"testing"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Prefeitura{}))
	return db
}

func TestCriarPrefeitura(t *testing.T) {
	svc := NewService(bancoDeTeste(t))

	p, err := svc.Criar(criarPrefeituraRequest{Nome: "Prefeitura de Niterói", CNPJ: "00.111.222/0001-33"})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)

	_, err = svc.Criar(criarPrefeituraRequest{Nome: "Outra", CNPJ: "00.111.222/0001-33"})
	var de *apperror.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperror.KindConflito, de.Kind)
}

func TestOperacoesComIDInexistente(t *testing.T) {
	svc := NewService(bancoDeTeste(t))

	nome := "Novo nome"
	casos := []struct {
		nome string
		op   func() error
	}{
		{"buscar", func() error { _, err := svc.BuscarPorID(404); return err }},
		{"atualizar", func() error { _, err := svc.Atualizar(404, atualizarPrefeituraRequest{Nome: &nome}); return err }},
		{"remover", func() error { return svc.Remover(404) }},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			var de *apperror.Error
			require.True(t, errors.As(c.op(), &de))
			assert.Equal(t, apperror.KindNaoEncontrado, de.Kind)
		})
	}
}

func TestAtualizarPrefeituraParcial(t *testing.T) {
	svc := NewService(bancoDeTeste(t))

	p, err := svc.Criar(criarPrefeituraRequest{Nome: "Prefeitura de Niterói", CNPJ: "00.111.222/0001-33"})
	require.NoError(t, err)

	nome := "Prefeitura Municipal de Niterói"
	atualizado, err := svc.Atualizar(p.ID, atualizarPrefeituraRequest{Nome: &nome})
	require.NoError(t, err)
	assert.Equal(t, nome, atualizado.Nome)
	assert.Equal(t, "00.111.222/0001-33", atualizado.CNPJ)
}

func TestListarPrefeiturasPaginado(t *testing.T) {
	svc := NewService(bancoDeTeste(t))

	cnpjs := []string{"00.111.222/0001-01", "00.111.222/0001-02", "00.111.222/0001-03"}
	for i, cnpj := range cnpjs {
		_, err := svc.Criar(criarPrefeituraRequest{Nome: "Prefeitura " + cnpj[len(cnpj)-2:], CNPJ: cnpj})
		require.NoError(t, err, i)
	}

	itens, pag, err := svc.Listar(paginacao.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, itens, 2)
	assert.Equal(t, int64(3), pag.Total)
	assert.Equal(t, 2, pag.TotalPages)
}
