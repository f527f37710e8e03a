package motorista

import "gorm.io/gorm"

// Motorista é o condutor habilitado vinculado a um órgão.
type Motorista struct {
	gorm.Model
	OrgaoID uint   `gorm:"not null;index" json:"orgaoId"`
	Nome    string `gorm:"size:255;not null" json:"nome"`
	CPF     string `gorm:"size:14;uniqueIndex;not null" json:"cpf"`
	CNH     string `gorm:"size:20;not null" json:"cnh"`
	Ativo   bool   `gorm:"not null;default:true" json:"ativo"`
}
