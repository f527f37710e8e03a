package empresa

import "gorm.io/gorm"

// Filtro de listagem; campo nil omite a condição em vez de casar null.
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
	Criar(db *gorm.DB, e *Empresa) error
	BuscarPorID(db *gorm.DB, id uint) (*Empresa, error)
	BuscarPorCNPJ(db *gorm.DB, cnpj string) (*Empresa, error)
	Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Empresa, error)
	Contar(db *gorm.DB, f Filtro) (int64, error)
	Atualizar(db *gorm.DB, e *Empresa) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, e *Empresa) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Empresa, error) {
	var e Empresa
	if err := db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repositoryImpl) BuscarPorCNPJ(db *gorm.DB, cnpj string) (*Empresa, error) {
	var e Empresa
	if err := db.Where("cnpj = ?", cnpj).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Empresa, error) {
	var list []Empresa
	err := f.aplicar(db).Order("nome ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(db.Model(&Empresa{})).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, e *Empresa) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Empresa{}, id).Error
}
