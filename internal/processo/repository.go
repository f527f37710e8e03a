package processo

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
	Criar(db *gorm.DB, p *Processo) error
	BuscarPorID(db *gorm.DB, id uint) (*Processo, error)
	Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Processo, error)
	Contar(db *gorm.DB, f Filtro) (int64, error)
	Atualizar(db *gorm.DB, p *Processo) error
	Deletar(db *gorm.DB, id uint) error

	CriarCombustivel(db *gorm.DB, pc *ProcessoCombustivel) error
	BuscarCombustivel(db *gorm.DB, id uint) (*ProcessoCombustivel, error)
	BuscarCombustivelDoProcesso(db *gorm.DB, processoID, combustivelID uint) (*ProcessoCombustivel, error)
	ListarCombustiveis(db *gorm.DB, processoID *uint, offset, limit int) ([]ProcessoCombustivel, error)
	ContarCombustiveis(db *gorm.DB, processoID *uint) (int64, error)
	AtualizarCombustivel(db *gorm.DB, pc *ProcessoCombustivel) error
	DeletarCombustivel(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *Processo) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Processo, error) {
	var p Processo
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Processos são listados do mais recente para o mais antigo.
func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Processo, error) {
	var list []Processo
	err := f.aplicar(db).Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(db.Model(&Processo{})).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, p *Processo) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Processo{}, id).Error
}

func (r *repositoryImpl) CriarCombustivel(db *gorm.DB, pc *ProcessoCombustivel) error {
	return db.Create(pc).Error
}

func (r *repositoryImpl) BuscarCombustivel(db *gorm.DB, id uint) (*ProcessoCombustivel, error) {
	var pc ProcessoCombustivel
	if err := db.First(&pc, id).Error; err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *repositoryImpl) BuscarCombustivelDoProcesso(db *gorm.DB, processoID, combustivelID uint) (*ProcessoCombustivel, error) {
	var pc ProcessoCombustivel
	err := db.Where("processo_id = ? AND combustivel_id = ?", processoID, combustivelID).First(&pc).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func combustiveisDoProcesso(db *gorm.DB, processoID *uint) *gorm.DB {
	q := db.Model(&ProcessoCombustivel{})
	if processoID != nil {
		q = q.Where("processo_id = ?", *processoID)
	}
	return q
}

func (r *repositoryImpl) ListarCombustiveis(db *gorm.DB, processoID *uint, offset, limit int) ([]ProcessoCombustivel, error) {
	var list []ProcessoCombustivel
	err := combustiveisDoProcesso(db, processoID).Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ContarCombustiveis(db *gorm.DB, processoID *uint) (int64, error) {
	var total int64
	err := combustiveisDoProcesso(db, processoID).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) AtualizarCombustivel(db *gorm.DB, pc *ProcessoCombustivel) error {
	return db.Save(pc).Error
}

func (r *repositoryImpl) DeletarCombustivel(db *gorm.DB, id uint) error {
	return db.Delete(&ProcessoCombustivel{}, id).Error
}
