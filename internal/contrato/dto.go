package contrato

import (
	"github.com/GestaoGas/api-abastecimento/internal/empresa"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
)

type criarContratoRequest struct {
	EmpresaID          uint     `json:"empresaId"`
	EmpresaContratante string   `json:"empresaContratante"`
	EmpresaContratada  string   `json:"empresaContratada"`
	Titulo             string   `json:"titulo"`
	CNPJEmpresa        string   `json:"cnpjEmpresa"`
	VigenciaInicio     string   `json:"vigenciaInicio"`
	VigenciaFim        string   `json:"vigenciaFim"`
	Ativo              *bool    `json:"ativo"`
	Anexos             []string `json:"anexos"`
}

type atualizarContratoRequest struct {
	EmpresaContratante *string   `json:"empresaContratante"`
	EmpresaContratada  *string   `json:"empresaContratada"`
	Titulo             *string   `json:"titulo"`
	CNPJEmpresa        *string   `json:"cnpjEmpresa"`
	VigenciaInicio     *string   `json:"vigenciaInicio"`
	VigenciaFim        *string   `json:"vigenciaFim"`
	Ativo              *bool     `json:"ativo"`
	Anexos             *[]string `json:"anexos"`
}

var schemaCriar = validation.Schema{
	"empresaId":          {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"empresaContratante": {Obrigatorio: true, Tipo: validation.Texto},
	"empresaContratada":  {Obrigatorio: true, Tipo: validation.Texto},
	"titulo":             {Obrigatorio: true, Tipo: validation.Texto},
	"cnpjEmpresa":        {Obrigatorio: true, Tipo: validation.Texto},
	"vigenciaInicio":     {Obrigatorio: true, Tipo: validation.Texto},
	"vigenciaFim":        {Obrigatorio: true, Tipo: validation.Texto},
	"ativo":              {Tipo: validation.Booleano},
	"anexos":             {Tipo: validation.Lista, ItensTipo: validation.Texto},
}

var schemaAtualizar = validation.Schema{
	"empresaContratante": {Tipo: validation.Texto},
	"empresaContratada":  {Tipo: validation.Texto},
	"titulo":             {Tipo: validation.Texto},
	"cnpjEmpresa":        {Tipo: validation.Texto},
	"vigenciaInicio":     {Tipo: validation.Texto},
	"vigenciaFim":        {Tipo: validation.Texto},
	"ativo":              {Tipo: validation.Booleano},
	"anexos":             {Tipo: validation.Lista, ItensTipo: validation.Texto},
}

// ContratoDTO devolve o contrato com a projeção mínima da empresa,
// nunca o objeto completo do pai.
type ContratoDTO struct {
	Contrato
	Empresa empresa.ResumoEmpresa `json:"empresa"`
}

// DetalheContratoDTO acrescenta os agregados contados no findOne.
type DetalheContratoDTO struct {
	ContratoDTO
	TotalCombustiveis int64 `json:"totalCombustiveis"`
	TotalAditivos     int64 `json:"totalAditivos"`
}

type respostaContrato struct {
	Mensagem string      `json:"mensagem"`
	Contrato ContratoDTO `json:"contrato"`
}

type respostaDetalhe struct {
	Mensagem string             `json:"mensagem"`
	Contrato DetalheContratoDTO `json:"contrato"`
}

type respostaLista struct {
	Mensagem   string               `json:"mensagem"`
	Itens      []ContratoDTO        `json:"itens"`
	Pagination paginacao.Pagination `json:"pagination"`
}
