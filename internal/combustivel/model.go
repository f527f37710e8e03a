package combustivel

import "gorm.io/gorm"

// Combustivel é um tipo de combustível do catálogo fixo; a sigla é a
// chave de negócio usada pelo seed idempotente.
type Combustivel struct {
	gorm.Model
	Nome      string `gorm:"size:255;not null" json:"nome"`
	Sigla     string `gorm:"size:10;not null;unique" json:"sigla"`
	Descricao string `gorm:"size:500" json:"descricao"`
	Ativo     bool   `gorm:"not null;default:true" json:"ativo"`
}

// Catalogo é o conjunto fixo semeado em toda instalação.
var Catalogo = []Combustivel{
	{Nome: "Etanol", Sigla: "ETA", Descricao: "Etanol hidratado", Ativo: true},
	{Nome: "Gasolina Comum", Sigla: "GAC", Descricao: "Gasolina comum tipo C", Ativo: true},
	{Nome: "Gasolina Aditivada", Sigla: "GAD", Descricao: "Gasolina aditivada", Ativo: true},
	{Nome: "GLP", Sigla: "GLP", Descricao: "Gás liquefeito de petróleo", Ativo: true},
	{Nome: "GNV", Sigla: "GNV", Descricao: "Gás natural veicular", Ativo: true},
	{Nome: "Diesel S500", Sigla: "S500", Descricao: "Óleo diesel S500", Ativo: true},
	{Nome: "Diesel S10", Sigla: "S10", Descricao: "Óleo diesel S10", Ativo: true},
}
