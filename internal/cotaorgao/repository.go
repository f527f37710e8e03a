package cotaorgao

import "gorm.io/gorm"

type Filtro struct {
	Ativa      *bool
	ProcessoID *uint
	OrgaoID    *uint
}

func (f Filtro) aplicar(db *gorm.DB) *gorm.DB {
	if f.Ativa != nil {
		db = db.Where("ativa = ?", *f.Ativa)
	}
	if f.ProcessoID != nil {
		db = db.Where("processo_id = ?", *f.ProcessoID)
	}
	if f.OrgaoID != nil {
		db = db.Where("orgao_id = ?", *f.OrgaoID)
	}
	return db
}

type Repository interface {
	Criar(db *gorm.DB, c *CotaOrgao) error
	BuscarPorID(db *gorm.DB, id uint) (*CotaOrgao, error)
	BuscarPorChave(db *gorm.DB, processoID, orgaoID, combustivelID uint) (*CotaOrgao, error)
	Listar(db *gorm.DB, f Filtro, offset, limit int) ([]CotaOrgao, error)
	Contar(db *gorm.DB, f Filtro) (int64, error)
	Atualizar(db *gorm.DB, c *CotaOrgao) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *CotaOrgao) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*CotaOrgao, error) {
	var c CotaOrgao
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorChave(db *gorm.DB, processoID, orgaoID, combustivelID uint) (*CotaOrgao, error) {
	var c CotaOrgao
	err := db.Where("processo_id = ? AND orgao_id = ? AND combustivel_id = ?",
		processoID, orgaoID, combustivelID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro, offset, limit int) ([]CotaOrgao, error) {
	var list []CotaOrgao
	err := f.aplicar(db).Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(db.Model(&CotaOrgao{})).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *CotaOrgao) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&CotaOrgao{}, id).Error
}
