package veiculo

import "gorm.io/gorm"

type Filtro struct {
	Ativo       *bool
	CategoriaID *uint
}

func (f Filtro) aplicar(db *gorm.DB) *gorm.DB {
	if f.Ativo != nil {
		db = db.Where("ativo = ?", *f.Ativo)
	}
	if f.CategoriaID != nil {
		db = db.Where("categoria_id = ?", *f.CategoriaID)
	}
	return db
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(v *Veiculo) error {
	return r.DB.Create(v).Error
}

func (r *Repository) BuscarPorID(id uint) (*Veiculo, error) {
	var v Veiculo
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) BuscarPorPlaca(placa string) (*Veiculo, error) {
	var v Veiculo
	if err := r.DB.Where("placa = ?", placa).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Listar(f Filtro, offset, limit int) ([]Veiculo, error) {
	var list []Veiculo
	err := f.aplicar(r.DB).Order("placa ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *Repository) Contar(f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(r.DB.Model(&Veiculo{})).Count(&total).Error
	return total, err
}

func (r *Repository) Atualizar(v *Veiculo) error {
	return r.DB.Save(v).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Veiculo{}, id).Error
}
