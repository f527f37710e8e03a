package prefeitura

import "gorm.io/gorm"

// Prefeitura é o tenant de topo: todo órgão, categoria e processo
// licitatório pertence a uma prefeitura.
type Prefeitura struct {
	gorm.Model
	Nome string `gorm:"size:255;not null" json:"nome"`
	CNPJ string `gorm:"size:18;not null;unique" json:"cnpj"`
}
