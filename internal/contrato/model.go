package contrato

import (
	"time"

	"gorm.io/gorm"
)

// Contrato é o vínculo comercial entre o programa municipal e uma
// empresa fornecedora. Uma empresa tem no máximo um contrato; o índice
// único em empresa_id fecha a corrida que a checagem prévia deixaria.
type Contrato struct {
	gorm.Model

	EmpresaID uint `gorm:"not null;uniqueIndex" json:"empresaId"`

	EmpresaContratante string `gorm:"size:255;not null" json:"empresaContratante"`
	EmpresaContratada  string `gorm:"size:255;not null" json:"empresaContratada"`
	Titulo             string `gorm:"size:255;not null" json:"titulo"`
	CNPJEmpresa        string `gorm:"size:18;not null" json:"cnpjEmpresa"`

	VigenciaInicio time.Time `json:"vigenciaInicio"`
	VigenciaFim    time.Time `json:"vigenciaFim"`
	Ativo          bool      `gorm:"not null;default:true" json:"ativo"`

	// Suporta múltiplos anexos de arquivos em JSONB
	Anexos []string `gorm:"type:jsonb;serializer:json" json:"anexos"`

	Combustiveis []ContratoCombustivel `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"combustiveis,omitempty"`
	Aditivos     []ContratoAditivo     `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"aditivos,omitempty"`
}

// ContratoCombustivel é o preço acordado por combustível dentro do
// contrato; a existência de registros bloqueia a exclusão do contrato.
type ContratoCombustivel struct {
	gorm.Model
	ContratoID    uint    `gorm:"not null;index" json:"contratoId"`
	CombustivelID uint    `gorm:"not null;index" json:"combustivelId"`
	ValorUnitario float64 `gorm:"not null;default:0" json:"valorUnitario"`
}

// ContratoAditivo registra um termo aditivo de vigência.
type ContratoAditivo struct {
	gorm.Model
	ContratoID      uint      `gorm:"not null;index" json:"contratoId"`
	Descricao       string    `gorm:"size:500;not null" json:"descricao"`
	NovaVigenciaFim time.Time `json:"novaVigenciaFim"`
}
