package motorista

import "gorm.io/gorm"

type Filtro struct {
	Ativo   *bool
	OrgaoID *uint
}

func (f Filtro) aplicar(db *gorm.DB) *gorm.DB {
	if f.Ativo != nil {
		db = db.Where("ativo = ?", *f.Ativo)
	}
	if f.OrgaoID != nil {
		db = db.Where("orgao_id = ?", *f.OrgaoID)
	}
	return db
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(m *Motorista) error {
	return r.DB.Create(m).Error
}

func (r *Repository) BuscarPorID(id uint) (*Motorista, error) {
	var m Motorista
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) BuscarPorCPF(cpf string) (*Motorista, error) {
	var m Motorista
	if err := r.DB.Where("cpf = ?", cpf).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Listar(f Filtro, offset, limit int) ([]Motorista, error) {
	var list []Motorista
	err := f.aplicar(r.DB).Order("nome ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *Repository) Contar(f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(r.DB.Model(&Motorista{})).Count(&total).Error
	return total, err
}

func (r *Repository) Atualizar(m *Motorista) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Motorista{}, id).Error
}
