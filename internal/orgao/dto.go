package orgao

import (
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/prefeitura"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
)

type criarOrgaoRequest struct {
	PrefeituraID uint   `json:"prefeituraId"`
	Nome         string `json:"nome"`
	Sigla        string `json:"sigla"`
	Ativo        *bool  `json:"ativo"`
}

type atualizarOrgaoRequest struct {
	Nome  *string `json:"nome"`
	Sigla *string `json:"sigla"`
	Ativo *bool   `json:"ativo"`
}

type criarContaRequest struct {
	PrefeituraID uint   `json:"prefeituraId"`
	OrgaoID      uint   `json:"orgaoId"`
	Nome         string `json:"nome"`
	Descricao    string `json:"descricao"`
}

type atualizarContaRequest struct {
	Nome      *string `json:"nome"`
	Descricao *string `json:"descricao"`
}

var schemaCriarOrgao = validation.Schema{
	"prefeituraId": {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"nome":         {Obrigatorio: true, Tipo: validation.Texto},
	"sigla":        {Tipo: validation.Texto},
	"ativo":        {Tipo: validation.Booleano},
}

var schemaAtualizarOrgao = validation.Schema{
	"nome":  {Tipo: validation.Texto},
	"sigla": {Tipo: validation.Texto},
	"ativo": {Tipo: validation.Booleano},
}

var schemaCriarConta = validation.Schema{
	"prefeituraId": {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"orgaoId":      {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"nome":         {Obrigatorio: true, Tipo: validation.Texto},
	"descricao":    {Tipo: validation.Texto},
}

var schemaAtualizarConta = validation.Schema{
	"nome":      {Tipo: validation.Texto},
	"descricao": {Tipo: validation.Texto},
}

// ResumoOrgao projeta id, nome e sigla para filhos do órgão.
type ResumoOrgao struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Sigla string `json:"sigla"`
}

func Resumo(o Orgao) ResumoOrgao {
	return ResumoOrgao{ID: o.ID, Nome: o.Nome, Sigla: o.Sigla}
}

type OrgaoDTO struct {
	Orgao
	Prefeitura prefeitura.ResumoPrefeitura `json:"prefeitura"`
}

type ContaDTO struct {
	ContaFaturamentoOrgao
	Orgao ResumoOrgao `json:"orgao"`
}

type respostaOrgao struct {
	Mensagem string   `json:"mensagem"`
	Orgao    OrgaoDTO `json:"orgao"`
}

type respostaListaOrgaos struct {
	Mensagem   string               `json:"mensagem"`
	Itens      []OrgaoDTO           `json:"itens"`
	Pagination paginacao.Pagination `json:"pagination"`
}

type respostaConta struct {
	Mensagem string   `json:"mensagem"`
	Conta    ContaDTO `json:"conta"`
}

type respostaListaContas struct {
	Mensagem   string               `json:"mensagem"`
	Itens      []ContaDTO           `json:"itens"`
	Pagination paginacao.Pagination `json:"pagination"`
}
