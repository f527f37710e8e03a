package usuario

import "gorm.io/gorm"

type Filtro struct {
	Ativo        *bool
	TipoUsuario  *string
	PrefeituraID *uint
	EmpresaID    *uint
}

func (f Filtro) aplicar(db *gorm.DB) *gorm.DB {
	if f.Ativo != nil {
		db = db.Where("ativo = ?", *f.Ativo)
	}
	if f.TipoUsuario != nil {
		db = db.Where("tipo_usuario = ?", *f.TipoUsuario)
	}
	if f.PrefeituraID != nil {
		db = db.Where("prefeitura_id = ?", *f.PrefeituraID)
	}
	if f.EmpresaID != nil {
		db = db.Where("empresa_id = ?", *f.EmpresaID)
	}
	return db
}

type Repository interface {
	Criar(db *gorm.DB, u *Usuario) error
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	BuscarPorEmailOuCPF(db *gorm.DB, login string) (*Usuario, error)
	Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Usuario, error)
	Contar(db *gorm.DB, f Filtro) (int64, error)
	Atualizar(db *gorm.DB, u *Usuario) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, u *Usuario) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorEmailOuCPF(db *gorm.DB, login string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("email = ? OR cpf = ?", login, login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Usuario, error) {
	var list []Usuario
	err := f.aplicar(db).Order("nome ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(db.Model(&Usuario{})).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}
