package orgao

import "gorm.io/gorm"

type Filtro struct {
	Ativo        *bool
	PrefeituraID *uint
}

func (f Filtro) aplicar(db *gorm.DB) *gorm.DB {
	if f.Ativo != nil {
		db = db.Where("ativo = ?", *f.Ativo)
	}
	if f.PrefeituraID != nil {
		db = db.Where("prefeitura_id = ?", *f.PrefeituraID)
	}
	return db
}

type Repository interface {
	Criar(db *gorm.DB, o *Orgao) error
	BuscarPorID(db *gorm.DB, id uint) (*Orgao, error)
	Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Orgao, error)
	Contar(db *gorm.DB, f Filtro) (int64, error)
	Atualizar(db *gorm.DB, o *Orgao) error
	Deletar(db *gorm.DB, id uint) error

	CriarConta(db *gorm.DB, c *ContaFaturamentoOrgao) error
	BuscarConta(db *gorm.DB, id uint) (*ContaFaturamentoOrgao, error)
	ListarContas(db *gorm.DB, orgaoID *uint, offset, limit int) ([]ContaFaturamentoOrgao, error)
	ContarContas(db *gorm.DB, orgaoID *uint) (int64, error)
	AtualizarConta(db *gorm.DB, c *ContaFaturamentoOrgao) error
	DeletarConta(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, o *Orgao) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Orgao, error) {
	var o Orgao
	if err := db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Orgao, error) {
	var list []Orgao
	err := f.aplicar(db).Order("nome ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(db.Model(&Orgao{})).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *Orgao) error {
	return db.Save(o).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Orgao{}, id).Error
}

func (r *repositoryImpl) CriarConta(db *gorm.DB, c *ContaFaturamentoOrgao) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarConta(db *gorm.DB, id uint) (*ContaFaturamentoOrgao, error) {
	var c ContaFaturamentoOrgao
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func contasComOrgao(db *gorm.DB, orgaoID *uint) *gorm.DB {
	q := db.Model(&ContaFaturamentoOrgao{})
	if orgaoID != nil {
		q = q.Where("orgao_id = ?", *orgaoID)
	}
	return q
}

func (r *repositoryImpl) ListarContas(db *gorm.DB, orgaoID *uint, offset, limit int) ([]ContaFaturamentoOrgao, error) {
	var list []ContaFaturamentoOrgao
	err := contasComOrgao(db, orgaoID).Order("nome ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ContarContas(db *gorm.DB, orgaoID *uint) (int64, error) {
	var total int64
	err := contasComOrgao(db, orgaoID).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) AtualizarConta(db *gorm.DB, c *ContaFaturamentoOrgao) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) DeletarConta(db *gorm.DB, id uint) error {
	return db.Delete(&ContaFaturamentoOrgao{}, id).Error
}
