package categoria

import (
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/prefeitura"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
)

type criarCategoriaRequest struct {
	PrefeituraID  uint   `json:"prefeituraId"`
	TipoCategoria string `json:"tipoCategoria"`
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	Ativo         *bool  `json:"ativo"`
}

type atualizarCategoriaRequest struct {
	TipoCategoria *string `json:"tipoCategoria"`
	Nome          *string `json:"nome"`
	Descricao     *string `json:"descricao"`
	Ativo         *bool   `json:"ativo"`
}

var schemaCriar = validation.Schema{
	"prefeituraId":  {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"tipoCategoria": {Obrigatorio: true, Tipo: validation.Texto, Enum: Tipos},
	"nome":          {Obrigatorio: true, Tipo: validation.Texto},
	"descricao":     {Tipo: validation.Texto},
	"ativo":         {Tipo: validation.Booleano},
}

var schemaAtualizar = validation.Schema{
	"tipoCategoria": {Tipo: validation.Texto, Enum: Tipos},
	"nome":          {Tipo: validation.Texto},
	"descricao":     {Tipo: validation.Texto},
	"ativo":         {Tipo: validation.Booleano},
}

type CategoriaDTO struct {
	Categoria
	Prefeitura prefeitura.ResumoPrefeitura `json:"prefeitura"`
}

// DetalheCategoriaDTO inclui a contagem de veículos da categoria.
type DetalheCategoriaDTO struct {
	CategoriaDTO
	TotalVeiculos int64 `json:"totalVeiculos"`
}

type respostaCategoria struct {
	Mensagem  string       `json:"mensagem"`
	Categoria CategoriaDTO `json:"categoria"`
}

type respostaDetalhe struct {
	Mensagem  string              `json:"mensagem"`
	Categoria DetalheCategoriaDTO `json:"categoria"`
}

type respostaLista struct {
	Mensagem   string               `json:"mensagem"`
	Itens      []CategoriaDTO       `json:"itens"`
	Pagination paginacao.Pagination `json:"pagination"`
}
