package combustivel

import (
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
)

type criarCombustivelRequest struct {
	Nome      string `json:"nome"`
	Sigla     string `json:"sigla"`
	Descricao string `json:"descricao"`
	Ativo     *bool  `json:"ativo"`
}

type atualizarCombustivelRequest struct {
	Nome      *string `json:"nome"`
	Descricao *string `json:"descricao"`
	Ativo     *bool   `json:"ativo"`
}

var schemaCriar = validation.Schema{
	"nome":      {Obrigatorio: true, Tipo: validation.Texto},
	"sigla":     {Obrigatorio: true, Tipo: validation.Texto},
	"descricao": {Tipo: validation.Texto},
	"ativo":     {Tipo: validation.Booleano},
}

var schemaAtualizar = validation.Schema{
	"nome":      {Tipo: validation.Texto},
	"descricao": {Tipo: validation.Texto},
	"ativo":     {Tipo: validation.Booleano},
}

// ResumoCombustivel projeta id, nome e sigla para entidades que
// referenciam o catálogo.
type ResumoCombustivel struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Sigla string `json:"sigla"`
}

func Resumo(c Combustivel) ResumoCombustivel {
	return ResumoCombustivel{ID: c.ID, Nome: c.Nome, Sigla: c.Sigla}
}

type respostaCombustivel struct {
	Mensagem    string      `json:"mensagem"`
	Combustivel Combustivel `json:"combustivel"`
}

type respostaLista struct {
	Mensagem   string               `json:"mensagem"`
	Itens      []Combustivel        `json:"itens"`
	Pagination paginacao.Pagination `json:"pagination"`
}
