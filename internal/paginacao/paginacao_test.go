package paginacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		nome       string
		page       string
		limit      string
		esperaPage int
		esperaLim  int
	}{
		{"valores válidos", "3", "25", 3, 25},
		{"vazios caem no padrão", "", "", 1, 10},
		{"não numéricos caem no padrão", "abc", "xyz", 1, 10},
		{"zero cai no padrão", "0", "0", 1, 10},
		{"negativos caem no padrão", "-2", "-5", 1, 10},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			p := Normalizar(c.page, c.limit)
			assert.Equal(t, c.esperaPage, p.Page)
			assert.Equal(t, c.esperaLim, p.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, Params{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 50, Params{Page: 6, Limit: 10}.Offset())
}

func TestMontar(t *testing.T) {
	p := Params{Page: 2, Limit: 10}

	pag := p.Montar(35)
	assert.Equal(t, 2, pag.Page)
	assert.Equal(t, 10, pag.Limit)
	assert.Equal(t, int64(35), pag.Total)
	assert.Equal(t, 4, pag.TotalPages)

	// total múltiplo exato do limite não gera página extra
	pag = p.Montar(30)
	assert.Equal(t, 3, pag.TotalPages)

	pag = p.Montar(0)
	assert.Equal(t, 0, pag.TotalPages)
}

func TestBoolQuery(t *testing.T) {
	v := BoolQuery("true")
	if assert.NotNil(t, v) {
		assert.True(t, *v)
	}

	v = BoolQuery("false")
	if assert.NotNil(t, v) {
		assert.False(t, *v)
	}

	assert.Nil(t, BoolQuery(""))
	assert.Nil(t, BoolQuery("1"))
	assert.Nil(t, BoolQuery("sim"))
}
