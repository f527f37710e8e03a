package combustivel

import (
	"testing"

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

	require.NoError(t, db.AutoMigrate(&Combustivel{}))
	return db
}

func semear(t *testing.T, db *gorm.DB, repo Repository) {
	t.Helper()
	for _, c := range Catalogo {
		item := c
		require.NoError(t, repo.UpsertPorSigla(db, &item))
	}
}

func TestSeedIdempotente(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository()

	semear(t, db, repo)
	semear(t, db, repo)

	var total int64
	require.NoError(t, db.Model(&Combustivel{}).Count(&total).Error)
	assert.Equal(t, int64(len(Catalogo)), total)

	for _, c := range Catalogo {
		achado, err := repo.BuscarPorSigla(db, c.Sigla)
		require.NoError(t, err, c.Sigla)
		assert.Equal(t, c.Nome, achado.Nome)
	}
}

func TestSeedAtualizaRegistroExistente(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository()
	semear(t, db, repo)

	// edição manual é sobrescrita na próxima semeadura
	alterado, err := repo.BuscarPorSigla(db, "S10")
	require.NoError(t, err)
	alterado.Nome = "Diesel qualquer"
	require.NoError(t, repo.Atualizar(db, alterado))

	semear(t, db, repo)

	depois, err := repo.BuscarPorSigla(db, "S10")
	require.NoError(t, err)
	assert.Equal(t, "Diesel S10", depois.Nome)
}

func TestCatalogoSemSiglaRepetida(t *testing.T) {
	vistas := map[string]bool{}
	for _, c := range Catalogo {
		assert.False(t, vistas[c.Sigla], c.Sigla)
		vistas[c.Sigla] = true
	}
}
