package processo

import (
	"github.com/GestaoGas/api-abastecimento/internal/combustivel"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/prefeitura"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
)

type criarProcessoRequest struct {
	PrefeituraID uint   `json:"prefeituraId"`
	Numero       string `json:"numero"`
	Objeto       string `json:"objeto"`
	Ativo        *bool  `json:"ativo"`
}

type atualizarProcessoRequest struct {
	Numero *string `json:"numero"`
	Objeto *string `json:"objeto"`
	Ativo  *bool   `json:"ativo"`
}

type criarProcessoCombustivelRequest struct {
	ProcessoID       uint    `json:"processoId"`
	CombustivelID    uint    `json:"combustivelId"`
	QuantidadeLitros float64 `json:"quantidadeLitros"`
	ValorUnitario    float64 `json:"valorUnitario"`
}

type atualizarProcessoCombustivelRequest struct {
	QuantidadeLitros        *float64 `json:"quantidadeLitros"`
	ValorUnitario           *float64 `json:"valorUnitario"`
	SaldoBloqueadoProcesso  *float64 `json:"saldoBloqueadoProcesso"`
	SaldoDisponivelProcesso *float64 `json:"saldoDisponivelProcesso"`
}

var schemaCriar = validation.Schema{
	"prefeituraId": {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"numero":       {Obrigatorio: true, Tipo: validation.Texto},
	"objeto":       {Tipo: validation.Texto},
	"ativo":        {Tipo: validation.Booleano},
}

var schemaAtualizar = validation.Schema{
	"numero": {Tipo: validation.Texto},
	"objeto": {Tipo: validation.Texto},
	"ativo":  {Tipo: validation.Booleano},
}

// Quantidade contratada é litro com 2 casas; saldos são não negativos.
var schemaCriarCombustivel = validation.Schema{
	"processoId":       {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"combustivelId":    {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"quantidadeLitros": {Obrigatorio: true, Tipo: validation.Numero, Positivo: true, CasasDecimais: 2},
	"valorUnitario":    {Obrigatorio: true, Tipo: validation.Numero, Positivo: true},
}

var schemaAtualizarCombustivel = validation.Schema{
	"quantidadeLitros":        {Tipo: validation.Numero, Positivo: true, CasasDecimais: 2},
	"valorUnitario":           {Tipo: validation.Numero, Positivo: true},
	"saldoBloqueadoProcesso":  {Tipo: validation.Numero, NaoNegativo: true, CasasDecimais: 2},
	"saldoDisponivelProcesso": {Tipo: validation.Numero, NaoNegativo: true, CasasDecimais: 2},
}

// ResumoProcesso projeta id, número e objeto para as cotas.
type ResumoProcesso struct {
	ID     uint   `json:"id"`
	Numero string `json:"numero"`
	Objeto string `json:"objeto"`
}

func Resumo(p Processo) ResumoProcesso {
	return ResumoProcesso{ID: p.ID, Numero: p.Numero, Objeto: p.Objeto}
}

type ProcessoDTO struct {
	Processo
	Prefeitura prefeitura.ResumoPrefeitura `json:"prefeitura"`
}

type ProcessoCombustivelDTO struct {
	ProcessoCombustivel
	Processo    ResumoProcesso                `json:"processo"`
	Combustivel combustivel.ResumoCombustivel `json:"combustivel"`
}

type respostaProcesso struct {
	Mensagem string      `json:"mensagem"`
	Processo ProcessoDTO `json:"processo"`
}

type respostaListaProcessos struct {
	Mensagem   string               `json:"mensagem"`
	Itens      []ProcessoDTO        `json:"itens"`
	Pagination paginacao.Pagination `json:"pagination"`
}

type respostaProcessoCombustivel struct {
	Mensagem            string                 `json:"mensagem"`
	ProcessoCombustivel ProcessoCombustivelDTO `json:"processoCombustivel"`
}

type respostaListaCombustiveis struct {
	Mensagem   string                   `json:"mensagem"`
	Itens      []ProcessoCombustivelDTO `json:"itens"`
	Pagination paginacao.Pagination     `json:"pagination"`
}
