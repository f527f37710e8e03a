package combustivel

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Filtro struct {
	Ativo *bool
}

func (f Filtro) aplicar(db *gorm.DB) *gorm.DB {
	if f.Ativo != nil {
		db = db.Where("ativo = ?", *f.Ativo)
	}
	return db
}

type Repository interface {
	Criar(db *gorm.DB, c *Combustivel) error
	BuscarPorID(db *gorm.DB, id uint) (*Combustivel, error)
	BuscarPorSigla(db *gorm.DB, sigla string) (*Combustivel, error)
	Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Combustivel, error)
	Contar(db *gorm.DB, f Filtro) (int64, error)
	Atualizar(db *gorm.DB, c *Combustivel) error
	Deletar(db *gorm.DB, id uint) error
	UpsertPorSigla(db *gorm.DB, c *Combustivel) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Combustivel) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Combustivel, error) {
	var c Combustivel
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorSigla(db *gorm.DB, sigla string) (*Combustivel, error) {
	var c Combustivel
	if err := db.Where("sigla = ?", sigla).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Combustivel, error) {
	var list []Combustivel
	err := f.aplicar(db).Order("nome ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(db.Model(&Combustivel{})).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Combustivel) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Combustivel{}, id).Error
}

// UpsertPorSigla insere ou atualiza o registro chaveado pela sigla;
// rodar o seed duas vezes não duplica o catálogo.
func (r *repositoryImpl) UpsertPorSigla(db *gorm.DB, c *Combustivel) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sigla"}},
		DoUpdates: clause.AssignmentColumns([]string{"nome", "descricao", "ativo", "updated_at"}),
	}).Create(c).Error
}
