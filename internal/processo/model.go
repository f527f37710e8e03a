package processo

import "gorm.io/gorm"

// Processo é o processo licitatório que agrega as alocações de
// combustível de uma prefeitura.
type Processo struct {
	gorm.Model
	PrefeituraID uint   `gorm:"not null;index" json:"prefeituraId"`
	Numero       string `gorm:"size:50;not null" json:"numero"`
	Objeto       string `gorm:"size:500" json:"objeto"`
	Ativo        bool   `gorm:"not null;default:true" json:"ativo"`
}

// ProcessoCombustivel acompanha o saldo comprometido e disponível por
// combustível dentro do processo. Invariante de escrita:
// saldo_bloqueado + saldo_disponivel <= quantidade_litros.
type ProcessoCombustivel struct {
	gorm.Model
	ProcessoID              uint    `gorm:"not null;index" json:"processoId"`
	CombustivelID           uint    `gorm:"not null;index" json:"combustivelId"`
	QuantidadeLitros        float64 `gorm:"not null;default:0" json:"quantidadeLitros"`
	ValorUnitario           float64 `gorm:"not null;default:0" json:"valorUnitario"`
	SaldoBloqueadoProcesso  float64 `gorm:"not null;default:0" json:"saldoBloqueadoProcesso"`
	SaldoDisponivelProcesso float64 `gorm:"not null;default:0" json:"saldoDisponivelProcesso"`
}
