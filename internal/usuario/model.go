package usuario

import "gorm.io/gorm"

// Perfis e status de acesso aceitos.
var (
	Perfis = []string{"SUPER_ADMIN", "ADMIN_PREFEITURA", "ADMIN_EMPRESA", "COLABORADOR_EMPRESA"}
	Status = []string{"PENDENTE", "LIBERADO", "BLOQUEADO"}
)

// Usuario pertence ao contexto de uma prefeitura OU de uma empresa,
// nunca aos dois. O perfil decide quais rotas o guard libera.
type Usuario struct {
	gorm.Model
	Nome         string `gorm:"size:255;not null" json:"nome"`
	Email        string `gorm:"size:255;not null;unique" json:"email"`
	CPF          string `gorm:"size:14;not null;unique" json:"cpf"`
	Senha        string `gorm:"not null" json:"-"`
	TipoUsuario  string `gorm:"size:50;not null" json:"tipoUsuario"`
	StatusAcesso string `gorm:"size:50;not null;default:'PENDENTE'" json:"statusAcesso"`
	Ativo        bool   `gorm:"not null;default:true" json:"ativo"`
	PrefeituraID *uint  `gorm:"index" json:"prefeituraId,omitempty"`
	EmpresaID    *uint  `gorm:"index" json:"empresaId,omitempty"`
}
