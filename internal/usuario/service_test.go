package usuario

import (
	"errors"
	"testing"

	"github.com/GestaoGas/api-abastecimento/internal/apperror"
	"github.com/GestaoGas/api-abastecimento/internal/empresa"
	"github.com/GestaoGas/api-abastecimento/internal/prefeitura"
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

	require.NoError(t, db.AutoMigrate(&prefeitura.Prefeitura{}, &empresa.Empresa{}, &Usuario{}))
	return db
}

func prefeituraDeTeste(t *testing.T, db *gorm.DB) prefeitura.Prefeitura {
	t.Helper()
	p := prefeitura.Prefeitura{Nome: "Prefeitura de Niterói", CNPJ: "00.111.222/0001-33"}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func requisicaoValida(prefeituraID uint) criarUsuarioRequest {
	return criarUsuarioRequest{
		Nome:         "Maria Souza",
		Email:        "maria@niteroi.rj.gov.br",
		CPF:          "123.456.789-00",
		Senha:        "senha-forte",
		TipoUsuario:  "ADMIN_PREFEITURA",
		PrefeituraID: &prefeituraID,
	}
}

func TestCriarUsuario(t *testing.T) {
	db := bancoDeTeste(t)
	svc := NewService(db)
	pref := prefeituraDeTeste(t, db)

	u, err := svc.Criar(requisicaoValida(pref.ID))
	require.NoError(t, err)
	assert.Equal(t, "PENDENTE", u.StatusAcesso)
	assert.True(t, u.Ativo)
	assert.NotEqual(t, "senha-forte", u.Senha)
}

func TestCriarUsuarioContextoObrigatorio(t *testing.T) {
	db := bancoDeTeste(t)
	svc := NewService(db)
	pref := prefeituraDeTeste(t, db)

	emp := empresa.Empresa{Nome: "Posto Estrela", CNPJ: "11.222.333/0001-44", Ativo: true}
	require.NoError(t, db.Create(&emp).Error)

	var de *apperror.Error

	// nenhum contexto
	req := requisicaoValida(pref.ID)
	req.PrefeituraID = nil
	_, err := svc.Criar(req)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperror.KindInvalido, de.Kind)

	// os dois ao mesmo tempo
	req = requisicaoValida(pref.ID)
	req.EmpresaID = &emp.ID
	_, err = svc.Criar(req)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperror.KindInvalido, de.Kind)
}

func TestCriarUsuarioPaiInexistente(t *testing.T) {
	svc := NewService(bancoDeTeste(t))

	_, err := svc.Criar(requisicaoValida(999))
	var de *apperror.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperror.KindNaoEncontrado, de.Kind)
}

func TestCriarUsuarioDuplicado(t *testing.T) {
	db := bancoDeTeste(t)
	svc := NewService(db)
	pref := prefeituraDeTeste(t, db)

	_, err := svc.Criar(requisicaoValida(pref.ID))
	require.NoError(t, err)

	var de *apperror.Error

	// mesmo e-mail
	req := requisicaoValida(pref.ID)
	req.CPF = "987.654.321-00"
	_, err = svc.Criar(req)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperror.KindConflito, de.Kind)

	// mesmo CPF
	req = requisicaoValida(pref.ID)
	req.Email = "outra@niteroi.rj.gov.br"
	_, err = svc.Criar(req)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperror.KindConflito, de.Kind)
}

func TestAutenticar(t *testing.T) {
	db := bancoDeTeste(t)
	svc := NewService(db)
	pref := prefeituraDeTeste(t, db)

	criado, err := svc.Criar(requisicaoValida(pref.ID))
	require.NoError(t, err)

	t.Run("cadastro pendente não autentica", func(t *testing.T) {
		_, err := svc.Autenticar("maria@niteroi.rj.gov.br", "senha-forte")
		var de *apperror.Error
		require.True(t, errors.As(err, &de))
		assert.Equal(t, apperror.KindProibido, de.Kind)
	})

	liberado := "LIBERADO"
	_, err = svc.Atualizar(criado.ID, atualizarUsuarioRequest{StatusAcesso: &liberado})
	require.NoError(t, err)

	t.Run("por e-mail", func(t *testing.T) {
		u, err := svc.Autenticar("maria@niteroi.rj.gov.br", "senha-forte")
		require.NoError(t, err)
		assert.Equal(t, criado.ID, u.ID)
	})

	t.Run("por CPF", func(t *testing.T) {
		u, err := svc.Autenticar("123.456.789-00", "senha-forte")
		require.NoError(t, err)
		assert.Equal(t, criado.ID, u.ID)
	})

	t.Run("senha errada", func(t *testing.T) {
		_, err := svc.Autenticar("maria@niteroi.rj.gov.br", "senha-errada")
		var de *apperror.Error
		require.True(t, errors.As(err, &de))
		assert.Equal(t, apperror.KindProibido, de.Kind)
	})

	t.Run("usuário desconhecido", func(t *testing.T) {
		_, err := svc.Autenticar("ninguem@nada.com", "senha-forte")
		var de *apperror.Error
		require.True(t, errors.As(err, &de))
		assert.Equal(t, apperror.KindProibido, de.Kind)
	})

	t.Run("acesso bloqueado", func(t *testing.T) {
		bloqueado := "BLOQUEADO"
		_, err := svc.Atualizar(criado.ID, atualizarUsuarioRequest{StatusAcesso: &bloqueado})
		require.NoError(t, err)

		_, err = svc.Autenticar("maria@niteroi.rj.gov.br", "senha-forte")
		var de *apperror.Error
		require.True(t, errors.As(err, &de))
		assert.Equal(t, apperror.KindProibido, de.Kind)
	})
}
