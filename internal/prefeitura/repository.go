package prefeitura

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, p *Prefeitura) error
	BuscarPorID(db *gorm.DB, id uint) (*Prefeitura, error)
	BuscarPorCNPJ(db *gorm.DB, cnpj string) (*Prefeitura, error)
	Listar(db *gorm.DB, offset, limit int) ([]Prefeitura, error)
	Contar(db *gorm.DB) (int64, error)
	Atualizar(db *gorm.DB, p *Prefeitura) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *Prefeitura) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Prefeitura, error) {
	var p Prefeitura
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) BuscarPorCNPJ(db *gorm.DB, cnpj string) (*Prefeitura, error) {
	var p Prefeitura
	if err := db.Where("cnpj = ?", cnpj).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB, offset, limit int) ([]Prefeitura, error) {
	var list []Prefeitura
	err := db.Order("nome ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&Prefeitura{}).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, p *Prefeitura) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Prefeitura{}, id).Error
}
