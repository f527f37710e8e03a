package contrato

import "gorm.io/gorm"

type Filtro struct {
	Ativo     *bool
	EmpresaID *uint
}

func (f Filtro) aplicar(db *gorm.DB) *gorm.DB {
	if f.Ativo != nil {
		db = db.Where("ativo = ?", *f.Ativo)
	}
	if f.EmpresaID != nil {
		db = db.Where("empresa_id = ?", *f.EmpresaID)
	}
	return db
}

type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	BuscarPorEmpresa(db *gorm.DB, empresaID uint) (*Contrato, error)
	Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Contrato, error)
	Contar(db *gorm.DB, f Filtro) (int64, error)
	Atualizar(db *gorm.DB, c *Contrato) error
	Deletar(db *gorm.DB, id uint) error
	ContarCombustiveis(db *gorm.DB, contratoID uint) (int64, error)
	ContarAditivos(db *gorm.DB, contratoID uint) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var c Contrato
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorEmpresa(db *gorm.DB, empresaID uint) (*Contrato, error) {
	var c Contrato
	if err := db.Where("empresa_id = ?", empresaID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Contratos são listados do mais recente para o mais antigo.
func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Contrato, error) {
	var list []Contrato
	err := f.aplicar(db).Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(db.Model(&Contrato{})).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Contrato) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Contrato{}, id).Error
}

func (r *repositoryImpl) ContarCombustiveis(db *gorm.DB, contratoID uint) (int64, error) {
	var total int64
	err := db.Model(&ContratoCombustivel{}).Where("contrato_id = ?", contratoID).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) ContarAditivos(db *gorm.DB, contratoID uint) (int64, error) {
	var total int64
	err := db.Model(&ContratoAditivo{}).Where("contrato_id = ?", contratoID).Count(&total).Error
	return total, err
}
