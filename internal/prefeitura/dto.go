package prefeitura

import (
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
)

type criarPrefeituraRequest struct {
	Nome string `json:"nome"`
	CNPJ string `json:"cnpj"`
}

type atualizarPrefeituraRequest struct {
	Nome *string `json:"nome"`
	CNPJ *string `json:"cnpj"`
}

var schemaCriar = validation.Schema{
	"nome": {Obrigatorio: true, Tipo: validation.Texto},
	"cnpj": {Obrigatorio: true, Tipo: validation.Texto},
}

var schemaAtualizar = validation.Schema{
	"nome": {Tipo: validation.Texto},
	"cnpj": {Tipo: validation.Texto},
}

// ResumoPrefeitura é a projeção mínima usada pelos filhos (id, nome e
// chave de negócio; nunca o objeto completo).
type ResumoPrefeitura struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
	CNPJ string `json:"cnpj"`
}

func Resumo(p Prefeitura) ResumoPrefeitura {
	return ResumoPrefeitura{ID: p.ID, Nome: p.Nome, CNPJ: p.CNPJ}
}

type respostaPrefeitura struct {
	Mensagem   string     `json:"mensagem"`
	Prefeitura Prefeitura `json:"prefeitura"`
}

type respostaLista struct {
	Mensagem   string               `json:"mensagem"`
	Itens      []Prefeitura         `json:"itens"`
	Pagination paginacao.Pagination `json:"pagination"`
}
