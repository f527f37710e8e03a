package usuario

import (
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type criarUsuarioRequest struct {
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	CPF          string `json:"cpf"`
	Senha        string `json:"senha"`
	TipoUsuario  string `json:"tipoUsuario"`
	PrefeituraID *uint  `json:"prefeituraId"`
	EmpresaID    *uint  `json:"empresaId"`
}

type atualizarUsuarioRequest struct {
	Nome         *string `json:"nome"`
	Email        *string `json:"email"`
	TipoUsuario  *string `json:"tipoUsuario"`
	StatusAcesso *string `json:"statusAcesso"`
	Ativo        *bool   `json:"ativo"`
}

var schemaCriar = validation.Schema{
	"nome":         {Obrigatorio: true, Tipo: validation.Texto},
	"email":        {Obrigatorio: true, Tipo: validation.Texto},
	"cpf":          {Obrigatorio: true, Tipo: validation.Texto},
	"senha":        {Obrigatorio: true, Tipo: validation.Texto},
	"tipoUsuario":  {Obrigatorio: true, Tipo: validation.Texto, Enum: Perfis},
	"prefeituraId": {Tipo: validation.Inteiro, Positivo: true},
	"empresaId":    {Tipo: validation.Inteiro, Positivo: true},
}

var schemaAtualizar = validation.Schema{
	"nome":         {Tipo: validation.Texto},
	"email":        {Tipo: validation.Texto},
	"tipoUsuario":  {Tipo: validation.Texto, Enum: Perfis},
	"statusAcesso": {Tipo: validation.Texto, Enum: Status},
	"ativo":        {Tipo: validation.Booleano},
}

type respostaUsuario struct {
	Mensagem string  `json:"mensagem"`
	Usuario  Usuario `json:"usuario"`
}

type respostaLista struct {
	Mensagem   string               `json:"mensagem"`
	Itens      []Usuario            `json:"itens"`
	Pagination paginacao.Pagination `json:"pagination"`
}
