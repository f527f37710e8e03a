package cotaorgao

import (
	"github.com/GestaoGas/api-abastecimento/internal/combustivel"
	"github.com/GestaoGas/api-abastecimento/internal/orgao"
	"github.com/GestaoGas/api-abastecimento/internal/paginacao"
	"github.com/GestaoGas/api-abastecimento/internal/processo"
	"github.com/GestaoGas/api-abastecimento/internal/validation"
)

type criarCotaRequest struct {
	ProcessoID    uint    `json:"processoId"`
	OrgaoID       uint    `json:"orgaoId"`
	CombustivelID uint    `json:"combustivelId"`
	Quantidade    float64 `json:"quantidade"`
	Ativa         *bool   `json:"ativa"`
}

type atualizarCotaRequest struct {
	Quantidade *float64 `json:"quantidade"`
	Ativa      *bool    `json:"ativa"`
}

// Quantidade é litro com até 3 casas e estritamente positiva.
var schemaCriar = validation.Schema{
	"processoId":    {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"orgaoId":       {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"combustivelId": {Obrigatorio: true, Tipo: validation.Inteiro, Positivo: true},
	"quantidade":    {Obrigatorio: true, Tipo: validation.Numero, Positivo: true, CasasDecimais: 3},
	"ativa":         {Tipo: validation.Booleano},
}

var schemaAtualizar = validation.Schema{
	"quantidade": {Tipo: validation.Numero, Positivo: true, CasasDecimais: 3},
	"ativa":      {Tipo: validation.Booleano},
}

type CotaDTO struct {
	CotaOrgao
	Processo    processo.ResumoProcesso       `json:"processo"`
	Orgao       orgao.ResumoOrgao             `json:"orgao"`
	Combustivel combustivel.ResumoCombustivel `json:"combustivel"`
}

type respostaCota struct {
	Mensagem string  `json:"mensagem"`
	Cota     CotaDTO `json:"cota"`
}

type respostaLista struct {
	Mensagem   string               `json:"mensagem"`
	Itens      []CotaDTO            `json:"itens"`
	Pagination paginacao.Pagination `json:"pagination"`
}
