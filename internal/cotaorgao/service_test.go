package cotaorgao

import (
	"errors"
	"testing"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/combustivel"
	"github.com/GestaoGas/api-abastecimento/internal/orgao"
	"github.com/GestaoGas/api-abastecimento/internal/prefeitura"
	"github.com/GestaoGas/api-abastecimento/internal/processo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type cenario struct {
	db   *gorm.DB
	svc  *Service
	proc processo.Processo
	org  orgao.Orgao
	comb combustivel.Combustivel
}

func montarCenario(t *testing.T) cenario {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&prefeitura.Prefeitura{},
		&orgao.Orgao{},
		&combustivel.Combustivel{},
		&processo.Processo{},
		&CotaOrgao{},
	))

	pref := prefeitura.Prefeitura{Nome: "Prefeitura de Niterói", CNPJ: "00.111.222/0001-33"}
	require.NoError(t, db.Create(&pref).Error)

	org := orgao.Orgao{PrefeituraID: pref.ID, Nome: "Secretaria de Saúde", Sigla: "SMS", Ativo: true}
	require.NoError(t, db.Create(&org).Error)

	comb := combustivel.Combustivel{Nome: "Gasolina Comum", Sigla: "GAC", Ativo: true}
	require.NoError(t, db.Create(&comb).Error)

	proc := processo.Processo{PrefeituraID: pref.ID, Numero: "PROC-2026/001", Ativo: true}
	require.NoError(t, db.Create(&proc).Error)

	return cenario{db: db, svc: NewService(db), proc: proc, org: org, comb: comb}
}

func requisicaoValida(c cenario) criarCotaRequest {
	return criarCotaRequest{
		ProcessoID:    c.proc.ID,
		OrgaoID:       c.org.ID,
		CombustivelID: c.comb.ID,
		Quantidade:    1500.125,
	}
}

func TestCriarCota(t *testing.T) {
	c := montarCenario(t)

	dto, err := c.svc.Criar(requisicaoValida(c))
	require.NoError(t, err)
	assert.True(t, dto.Ativa)
	assert.Equal(t, 1500.125, dto.Quantidade)
	assert.Equal(t, "SMS", dto.Orgao.Sigla)
	assert.Equal(t, "GAC", dto.Combustivel.Sigla)
	assert.Equal(t, "PROC-2026/001", dto.Processo.Numero)
}

func TestCriarCotaPaisInexistentes(t *testing.T) {
	c := montarCenario(t)

	casos := []struct {
		nome    string
		mudar   func(*criarCotaRequest)
		recurso string
	}{
		{"processo", func(r *criarCotaRequest) { r.ProcessoID = 999 }, "processo"},
		{"órgão", func(r *criarCotaRequest) { r.OrgaoID = 999 }, "orgao"},
		{"combustível", func(r *criarCotaRequest) { r.CombustivelID = 999 }, "combustivel"},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			req := requisicaoValida(c)
			caso.mudar(&req)

			_, err := c.svc.Criar(req)
			var de *apperror.Error
			require.True(t, errors.As(err, &de))
			assert.Equal(t, apperror.KindNaoEncontrado, de.Kind)
			assert.Equal(t, caso.recurso, de.Recurso)
		})
	}
}

func TestCriarCotaDuplicada(t *testing.T) {
	c := montarCenario(t)

	_, err := c.svc.Criar(requisicaoValida(c))
	require.NoError(t, err)

	_, err = c.svc.Criar(requisicaoValida(c))
	var de *apperror.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperror.KindConflito, de.Kind)

	// outro combustível para o mesmo órgão no mesmo processo passa
	outro := combustivel.Combustivel{Nome: "Etanol", Sigla: "ETA", Ativo: true}
	require.NoError(t, c.db.Create(&outro).Error)

	req := requisicaoValida(c)
	req.CombustivelID = outro.ID
	_, err = c.svc.Criar(req)
	assert.NoError(t, err)
}

func TestAtualizarERemoverCota(t *testing.T) {
	c := montarCenario(t)

	dto, err := c.svc.Criar(requisicaoValida(c))
	require.NoError(t, err)

	quantidade := 2000.5
	inativa := false
	atualizado, err := c.svc.Atualizar(dto.ID, atualizarCotaRequest{Quantidade: &quantidade, Ativa: &inativa})
	require.NoError(t, err)
	assert.Equal(t, 2000.5, atualizado.Quantidade)
	assert.False(t, atualizado.Ativa)

	require.NoError(t, c.svc.Remover(dto.ID))

	_, err = c.svc.BuscarPorID(dto.ID)
	var de *apperror.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperror.KindNaoEncontrado, de.Kind)
}
