package qrcode

import "gorm.io/gorm"

type Filtro struct {
	Ativo       *bool
	Tipo        *string
	MotoristaID *uint
	VeiculoID   *uint
}

func (f Filtro) aplicar(db *gorm.DB) *gorm.DB {
	if f.Ativo != nil {
		db = db.Where("ativo = ?", *f.Ativo)
	}
	if f.Tipo != nil {
		db = db.Where("tipo = ?", *f.Tipo)
	}
	if f.MotoristaID != nil {
		db = db.Where("motorista_id = ?", *f.MotoristaID)
	}
	if f.VeiculoID != nil {
		db = db.Where("veiculo_id = ?", *f.VeiculoID)
	}
	return db
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) CriarLote(codes []QRCode) error {
	return r.DB.Create(&codes).Error
}

func (r *Repository) BuscarPorID(id uint) (*QRCode, error) {
	var c QRCode
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) BuscarPorCodigo(codigo string) (*QRCode, error) {
	var c QRCode
	if err := r.DB.Where("codigo = ?", codigo).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Listar(f Filtro, offset, limit int) ([]QRCode, error) {
	var list []QRCode
	err := f.aplicar(r.DB).Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *Repository) Contar(f Filtro) (int64, error) {
	var total int64
	err := f.aplicar(r.DB.Model(&QRCode{})).Count(&total).Error
	return total, err
}

func (r *Repository) Atualizar(c *QRCode) error {
	return r.DB.Save(c).Error
}
