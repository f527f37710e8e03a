package orgao

import "gorm.io/gorm"

// Orgao é uma secretaria ou departamento de uma prefeitura.
type Orgao struct {
	gorm.Model
	PrefeituraID uint   `gorm:"not null;index" json:"prefeituraId"`
	Nome         string `gorm:"size:255;not null" json:"nome"`
	Sigla        string `gorm:"size:20" json:"sigla"`
	Ativo        bool   `gorm:"not null;default:true" json:"ativo"`
}

// ContaFaturamentoOrgao é a conta de faturamento de um órgão dentro de
// uma prefeitura.
type ContaFaturamentoOrgao struct {
	gorm.Model
	PrefeituraID uint   `gorm:"not null;index" json:"prefeituraId"`
	OrgaoID      uint   `gorm:"not null;index" json:"orgaoId"`
	Nome         string `gorm:"size:255;not null" json:"nome"`
	Descricao    string `gorm:"size:500" json:"descricao"`
}
