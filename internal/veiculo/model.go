package veiculo

import "gorm.io/gorm"

// Veiculo é a frota vinculada a uma categoria da prefeitura.
type Veiculo struct {
	gorm.Model
	CategoriaID uint   `gorm:"not null;index" json:"categoriaId"`
	Placa       string `gorm:"size:10;uniqueIndex;not null" json:"placa"`
	Modelo      string `gorm:"size:255;not null" json:"modelo"`
	Ano         int    `gorm:"not null" json:"ano"`
	Ativo       bool   `gorm:"not null;default:true" json:"ativo"`
}
