package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violacaoNoCampo(violacoes []Violacao, campo string) bool {
	for _, v := range violacoes {
		if v.Campo == campo {
			return true
		}
	}
	return false
}

func TestObrigatorio(t *testing.T) {
	schema := Schema{
		"nome": {Obrigatorio: true, Tipo: Texto},
		"cnpj": {Obrigatorio: true, Tipo: Texto},
	}

	v := schema.ValidarJSON([]byte(`{"nome":"Prefeitura de Niterói"}`))
	require.Len(t, v, 1)
	assert.Equal(t, "cnpj", v[0].Campo)

	v = schema.ValidarJSON([]byte(`{"nome":"   ","cnpj":"00.000.000/0001-00"}`))
	require.Len(t, v, 1)
	assert.Equal(t, "nome", v[0].Campo)

	v = schema.ValidarJSON([]byte(`{"nome":"Prefeitura","cnpj":"00.000.000/0001-00"}`))
	assert.Empty(t, v)
}

func TestCampoOpcionalAusente(t *testing.T) {
	schema := Schema{"descricao": {Tipo: Texto}}
	assert.Empty(t, schema.ValidarJSON([]byte(`{}`)))
}

func TestTipos(t *testing.T) {
	schema := Schema{
		"nome":  {Tipo: Texto},
		"ano":   {Tipo: Inteiro},
		"valor": {Tipo: Numero},
		"ativo": {Tipo: Booleano},
	}

	v := schema.ValidarJSON([]byte(`{"nome":123,"ano":"2024","valor":"caro","ativo":"sim"}`))
	assert.True(t, violacaoNoCampo(v, "nome"))
	assert.True(t, violacaoNoCampo(v, "ano"))
	assert.True(t, violacaoNoCampo(v, "valor"))
	assert.True(t, violacaoNoCampo(v, "ativo"))

	// inteiro não aceita fração
	v = schema.ValidarJSON([]byte(`{"ano":2024.5}`))
	assert.True(t, violacaoNoCampo(v, "ano"))

	v = schema.ValidarJSON([]byte(`{"nome":"ok","ano":2024,"valor":3.14,"ativo":true}`))
	assert.Empty(t, v)
}

func TestEnum(t *testing.T) {
	schema := Schema{
		"tipo": {Obrigatorio: true, Tipo: Texto, Enum: []string{"LEVE", "PESADO"}},
	}

	v := schema.ValidarJSON([]byte(`{"tipo":"AQUATICO"}`))
	require.Len(t, v, 1)
	assert.Equal(t, "tipo", v[0].Campo)

	assert.Empty(t, schema.ValidarJSON([]byte(`{"tipo":"PESADO"}`)))
}

func TestFaixasNumericas(t *testing.T) {
	schema := Schema{
		"quantidade": {Tipo: Numero, Positivo: true, CasasDecimais: 3},
		"saldo":      {Tipo: Numero, NaoNegativo: true},
	}

	v := schema.ValidarJSON([]byte(`{"quantidade":0}`))
	assert.True(t, violacaoNoCampo(v, "quantidade"))

	v = schema.ValidarJSON([]byte(`{"quantidade":10.1234}`))
	assert.True(t, violacaoNoCampo(v, "quantidade"))

	v = schema.ValidarJSON([]byte(`{"saldo":-0.01}`))
	assert.True(t, violacaoNoCampo(v, "saldo"))

	v = schema.ValidarJSON([]byte(`{"quantidade":1500.125,"saldo":0}`))
	assert.Empty(t, v)
}

func TestListaAninhada(t *testing.T) {
	item := Schema{
		"tipo":      {Obrigatorio: true, Tipo: Texto, Enum: []string{"MOTORISTA", "VEICULO"}},
		"validoAte": {Obrigatorio: true, Tipo: Texto},
	}
	schema := Schema{
		"itens": {Obrigatorio: true, Tipo: Lista, MinItens: 1, Itens: &item},
	}

	v := schema.ValidarJSON([]byte(`{"itens":[]}`))
	assert.True(t, violacaoNoCampo(v, "itens"))

	v = schema.ValidarJSON([]byte(`{"itens":[{"tipo":"MOTORISTA","validoAte":"2026-12-31T00:00:00Z"},{"tipo":"BICICLETA"}]}`))
	assert.True(t, violacaoNoCampo(v, "itens[1].tipo"))
	assert.True(t, violacaoNoCampo(v, "itens[1].validoAte"))
	assert.False(t, violacaoNoCampo(v, "itens[0].tipo"))

	v = schema.ValidarJSON([]byte(`{"itens":["texto"]}`))
	assert.True(t, violacaoNoCampo(v, "itens"))
}

func TestListaDeTextos(t *testing.T) {
	schema := Schema{
		"anexos": {Tipo: Lista, ItensTipo: Texto},
	}

	v := schema.ValidarJSON([]byte(`{"anexos":["edital.pdf",123,true]}`))
	assert.True(t, violacaoNoCampo(v, "anexos[1]"))
	assert.True(t, violacaoNoCampo(v, "anexos[2]"))
	assert.False(t, violacaoNoCampo(v, "anexos[0]"))

	assert.Empty(t, schema.ValidarJSON([]byte(`{"anexos":["edital.pdf","ata.pdf"]}`)))
	assert.Empty(t, schema.ValidarJSON([]byte(`{"anexos":[]}`)))
}

func TestJSONMalFormado(t *testing.T) {
	schema := Schema{"nome": {Tipo: Texto}}
	v := schema.ValidarJSON([]byte(`{invalido`))
	require.Len(t, v, 1)
	assert.Equal(t, "_corpo", v[0].Campo)
}
