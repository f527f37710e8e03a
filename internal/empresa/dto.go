package empresa

import (
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
)

type criarEmpresaRequest struct {
	Nome  string `json:"nome"`
	CNPJ  string `json:"cnpj"`
	Ativo *bool  `json:"ativo"`
}

type atualizarEmpresaRequest struct {
	Nome  *string `json:"nome"`
	CNPJ  *string `json:"cnpj"`
	Ativo *bool   `json:"ativo"`
}

var schemaCriar = validation.Schema{
	"nome":  {Obrigatorio: true, Tipo: validation.Texto},
	"cnpj":  {Obrigatorio: true, Tipo: validation.Texto},
	"ativo": {Tipo: validation.Booleano},
}

var schemaAtualizar = validation.Schema{
	"nome":  {Tipo: validation.Texto},
	"cnpj":  {Tipo: validation.Texto},
	"ativo": {Tipo: validation.Booleano},
}

// ResumoEmpresa é a projeção mínima exposta pelos filhos da empresa.
type ResumoEmpresa struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
	CNPJ string `json:"cnpj"`
}

func Resumo(e Empresa) ResumoEmpresa {
	return ResumoEmpresa{ID: e.ID, Nome: e.Nome, CNPJ: e.CNPJ}
}

type respostaEmpresa struct {
	Mensagem string  `json:"mensagem"`
	Empresa  Empresa `json:"empresa"`
}

type respostaLista struct {
	Mensagem   string               `json:"mensagem"`
	Itens      []Empresa            `json:"itens"`
	Pagination paginacao.Pagination `json:"pagination"`
}
