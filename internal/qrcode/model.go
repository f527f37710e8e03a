package qrcode

import (
	"time"

	"gorm.io/gorm"
)

const (
	TipoMotorista = "MOTORISTA"
	TipoVeiculo   = "VEICULO"
)

var Tipos = []string{TipoMotorista, TipoVeiculo}

// QRCode é a credencial de abastecimento emitida para um motorista
// ou um veículo. O código é um UUID gerado na emissão.
type QRCode struct {
	gorm.Model
	Codigo      string    `gorm:"size:36;uniqueIndex;not null" json:"codigo"`
	Tipo        string    `gorm:"size:20;not null" json:"tipo"`
	MotoristaID *uint     `gorm:"index" json:"motoristaId,omitempty"`
	VeiculoID   *uint     `gorm:"index" json:"veiculoId,omitempty"`
	ValidoAte   time.Time `gorm:"not null" json:"validoAte"`
	Ativo       bool      `gorm:"not null;default:true" json:"ativo"`
}
