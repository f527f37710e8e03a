package paginacao

import (
	"math"
	"strconv"
)

const (
	PaginaPadrao = 1
	LimitePadrao = 10
)

// Pagination descreve a página devolvida em toda listagem.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Params são os parâmetros já normalizados de uma listagem.
type Params struct {
	Page  int
	Limit int
}

// Offset calcula o deslocamento da consulta paginada.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Montar fecha o envelope de paginação a partir do total contado.
func (p Params) Montar(total int64) Pagination {
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}
}

// Normalizar converte page/limit vindos da query string. Valor ausente,
// não numérico, zero ou negativo cai no padrão em vez de propagar erro.
func Normalizar(pageStr, limitStr string) Params {
	return Params{
		Page:  inteiroOuPadrao(pageStr, PaginaPadrao),
		Limit: inteiroOuPadrao(limitStr, LimitePadrao),
	}
}

func inteiroOuPadrao(s string, padrao int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return padrao
	}
	return n
}

// BoolQuery coage "true"/"false" da query string para filtro booleano.
// Qualquer outro valor omite o filtro (nil), nunca erro.
func BoolQuery(s string) *bool {
	switch s {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
