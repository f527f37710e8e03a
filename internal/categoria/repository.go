package categoria

import "gorm.io/gorm"

type Filtro struct {
	Ativo         *bool
	PrefeituraID  *uint
	TipoCategoria *string
}

func (f Filtro) aplicar(db *gorm.DB) *gorm.DB {
	if f.Ativo != nil {
		db = db.Where("ativo = ?", *f.Ativo)
	}
	if f.PrefeituraID != nil {
		db = db.Where("prefeitura_id = ?", *f.PrefeituraID)
	}
	if f.TipoCategoria != nil {
		db = db.Where("tipo_categoria = ?", *f.TipoCategoria)
	}
	return db
}

type Repository interface {
	Criar(db *gorm.DB, c *Categoria) error
	BuscarPorID(db *gorm.DB, id uint) (*Categoria, error)
	Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Categoria, error)
	Contar(db *gorm.DB, f Filtro) (int64, error)
	Atualizar(db *gorm.DB, c *Categoria) error
	Deletar(db *gorm.DB, id uint) error
	ContarVeiculos(db *gorm.DB, categoriaID uint) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Categoria) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Categoria, error) {
	var c Categoria
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro, offset, limit int) ([]Categoria, error) {
	var list []Categoria
	err := f.aplicar(db).Order("nome ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(db.Model(&Categoria{})).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Categoria) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Categoria{}, id).Error
}

// ContarVeiculos consulta a tabela de veículos pelo nome para não
// acoplar o pacote ao modelo filho.
func (r *repositoryImpl) ContarVeiculos(db *gorm.DB, categoriaID uint) (int64, error) {
	var total int64
	err := db.Table("veiculos").Where("categoria_id = ? AND deleted_at IS NULL", categoriaID).Count(&total).Error
	return total, err
}
