package categoria

import "gorm.io/gorm"

// Tipos de categoria de veículo aceitos.
const (
	TipoLeve       = "LEVE"
	TipoPesado     = "PESADO"
	TipoMaquinario = "MAQUINARIO"
	TipoUtilitario = "UTILITARIO"
)

var Tipos = []string{TipoLeve, TipoPesado, TipoMaquinario, TipoUtilitario}

// Categoria classifica veículos dentro de uma prefeitura.
type Categoria struct {
	gorm.Model
	PrefeituraID  uint   `gorm:"not null;index" json:"prefeituraId"`
	TipoCategoria string `gorm:"size:50;not null" json:"tipoCategoria"`
	Nome          string `gorm:"size:255;not null" json:"nome"`
	Descricao     string `gorm:"size:500" json:"descricao"`
	Ativo         bool   `gorm:"not null;default:true" json:"ativo"`
}
