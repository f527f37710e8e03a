package cotaorgao

import "gorm.io/gorm"

// CotaOrgao é a cota de volume de combustível alocada a um órgão
// dentro de um processo licitatório. Quantidade em litros, até 3
// casas decimais.
type CotaOrgao struct {
	gorm.Model
	ProcessoID    uint    `gorm:"not null;index" json:"processoId"`
	OrgaoID       uint    `gorm:"not null;index" json:"orgaoId"`
	CombustivelID uint    `gorm:"not null;index" json:"combustivelId"`
	Quantidade    float64 `gorm:"not null" json:"quantidade"`
	Ativa         bool    `gorm:"not null;default:true" json:"ativa"`
}
