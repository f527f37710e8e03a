package empresa

import "gorm.io/gorm"

// Empresa é a fornecedora de combustível contratada. Cada empresa
// possui no máximo um contrato vigente.
type Empresa struct {
	gorm.Model
	Nome  string `gorm:"size:255;not null" json:"nome"`
	CNPJ  string `gorm:"size:18;not null;unique" json:"cnpj"`
	Ativo bool   `gorm:"not null;default:true" json:"ativo"`
}
