package empresa

import (
	"errors"
	"fmt"
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

	require.NoError(t, db.AutoMigrate(&Empresa{}))
	return db
}

func TestCriarEmpresa(t *testing.T) {
	svc := NewService(bancoDeTeste(t))

	e, err := svc.Criar(criarEmpresaRequest{Nome: "Posto Serra Azul", CNPJ: "11.222.333/0001-44"})
	require.NoError(t, err)
	assert.NotZero(t, e.ID)
	assert.True(t, e.Ativo)
}

func TestCriarEmpresaCNPJDuplicado(t *testing.T) {
	svc := NewService(bancoDeTeste(t))

	_, err := svc.Criar(criarEmpresaRequest{Nome: "Posto Serra Azul", CNPJ: "11.222.333/0001-44"})
	require.NoError(t, err)

	_, err = svc.Criar(criarEmpresaRequest{Nome: "Posto Serra Verde", CNPJ: "11.222.333/0001-44"})
	var de *apperror.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperror.KindConflito, de.Kind)
}

func TestListarEmpresasPaginado(t *testing.T) {
	db := bancoDeTeste(t)
	svc := NewService(db)

	inativo := false
	for i := 0; i < 23; i++ {
		req := criarEmpresaRequest{
			Nome: fmt.Sprintf("Posto %02d", i),
			CNPJ: fmt.Sprintf("11.222.333/%04d-00", i),
		}
		if i%4 == 0 {
			req.Ativo = &inativo
		}
		_, err := svc.Criar(req)
		require.NoError(t, err)
	}

	itens, pag, err := svc.Listar(paginacao.Params{Page: 1, Limit: 10}, Filtro{})
	require.NoError(t, err)
	assert.Len(t, itens, 10)
	assert.Equal(t, int64(23), pag.Total)
	assert.Equal(t, 3, pag.TotalPages)

	// última página carrega só o resto
	itens, _, err = svc.Listar(paginacao.Params{Page: 3, Limit: 10}, Filtro{})
	require.NoError(t, err)
	assert.Len(t, itens, 3)

	// filtro booleano restringe e o total acompanha
	ativo := true
	itens, pag, err = svc.Listar(paginacao.Params{Page: 1, Limit: 50}, Filtro{Ativo: &ativo})
	require.NoError(t, err)
	assert.Len(t, itens, 17)
	assert.Equal(t, int64(17), pag.Total)
	assert.Equal(t, 1, pag.TotalPages)
}

func TestAtualizarEmpresaParcial(t *testing.T) {
	svc := NewService(bancoDeTeste(t))

	e, err := svc.Criar(criarEmpresaRequest{Nome: "Posto Serra Azul", CNPJ: "11.222.333/0001-44"})
	require.NoError(t, err)

	inativo := false
	atualizado, err := svc.Atualizar(e.ID, atualizarEmpresaRequest{Ativo: &inativo})
	require.NoError(t, err)
	assert.False(t, atualizado.Ativo)
	assert.Equal(t, "Posto Serra Azul", atualizado.Nome)
	assert.Equal(t, "11.222.333/0001-44", atualizado.CNPJ)
}

func TestRemoverEmpresaInexistente(t *testing.T) {
	svc := NewService(bancoDeTeste(t))

	err := svc.Remover(404)
	var de *apperror.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperror.KindNaoEncontrado, de.Kind)
}
