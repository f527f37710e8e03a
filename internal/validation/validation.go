package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Tipo primitivo aceito por uma regra.
type Tipo string

const (
	Texto    Tipo = "texto"
	Inteiro  Tipo = "inteiro"
	Numero   Tipo = "numero"
	Booleano Tipo = "booleano"
	Lista    Tipo = "lista"
)

// Regra descreve as restrições de um campo.
type Regra struct {
	Obrigatorio   bool
	Tipo          Tipo
	Enum          []string // pertinência obrigatória quando não vazio
	Positivo      bool     // > 0
	NaoNegativo   bool     // >= 0
	CasasDecimais int      // máximo de casas decimais; 0 = sem limite
	MinItens      int      // tamanho mínimo para listas
	ItensTipo     Tipo     // tipo primitivo de cada elemento da lista
	Itens         *Schema  // schema de cada elemento-objeto da lista
}

// Schema mapeia nome do campo para a sua regra. Campos ausentes e
// opcionais são pulados; campos presentes sempre são validados.
type Schema map[string]Regra

// Violacao é uma falha de validação em um campo.
type Violacao struct {
	Campo  string `json:"campo"`
	Motivo string `json:"motivo"`
}

// Validar avalia o objeto cru contra o schema e devolve todas as
// violações encontradas; lista vazia significa entrada válida.
func (s Schema) Validar(raw map[string]any) []Violacao {
	var out []Violacao
	for campo, regra := range s {
		valor, presente := raw[campo]
		if !presente || valor == nil {
			if regra.Obrigatorio {
				out = append(out, Violacao{Campo: campo, Motivo: "campo obrigatório ausente"})
			}
			continue
		}
		out = append(out, regra.validarValor(campo, valor)...)
	}
	return out
}

func (r Regra) validarValor(campo string, valor any) []Violacao {
	var out []Violacao
	falha := func(motivo string) {
		out = append(out, Violacao{Campo: campo, Motivo: motivo})
	}

	switch r.Tipo {
	case Texto:
		s, ok := valor.(string)
		if !ok {
			falha("deve ser texto")
			return out
		}
		if r.Obrigatorio && strings.TrimSpace(s) == "" {
			falha("não pode ser vazio")
		}
		if len(r.Enum) > 0 && !contem(r.Enum, s) {
			falha(fmt.Sprintf("valor fora do conjunto permitido: %s", strings.Join(r.Enum, ", ")))
		}

	case Inteiro:
		n, ok := valor.(float64)
		if !ok || n != math.Trunc(n) {
			falha("deve ser inteiro")
			return out
		}
		out = append(out, r.validarFaixa(campo, n)...)

	case Numero:
		n, ok := valor.(float64)
		if !ok {
			falha("deve ser numérico")
			return out
		}
		if r.CasasDecimais > 0 && !cabeNasCasas(n, r.CasasDecimais) {
			falha(fmt.Sprintf("máximo de %d casas decimais", r.CasasDecimais))
		}
		out = append(out, r.validarFaixa(campo, n)...)

	case Booleano:
		if _, ok := valor.(bool); !ok {
			falha("deve ser booleano")
		}

	case Lista:
		itens, ok := valor.([]any)
		if !ok {
			falha("deve ser uma lista")
			return out
		}
		if len(itens) < r.MinItens {
			falha(fmt.Sprintf("mínimo de %d item(ns)", r.MinItens))
		}
		if r.ItensTipo != "" {
			elemento := Regra{Tipo: r.ItensTipo}
			for i, item := range itens {
				out = append(out, elemento.validarValor(fmt.Sprintf("%s[%d]", campo, i), item)...)
			}
		}
		if r.Itens != nil {
			for i, item := range itens {
				obj, ok := item.(map[string]any)
				if !ok {
					falha(fmt.Sprintf("item %d deve ser um objeto", i))
					continue
				}
				for _, v := range r.Itens.Validar(obj) {
					out = append(out, Violacao{
						Campo:  fmt.Sprintf("%s[%d].%s", campo, i, v.Campo),
						Motivo: v.Motivo,
					})
				}
			}
		}
	}
	return out
}

func (r Regra) validarFaixa(campo string, n float64) []Violacao {
	var out []Violacao
	if r.Positivo && n <= 0 {
		out = append(out, Violacao{Campo: campo, Motivo: "deve ser maior que zero"})
	}
	if r.NaoNegativo && n < 0 {
		out = append(out, Violacao{Campo: campo, Motivo: "não pode ser negativo"})
	}
	return out
}

// cabeNasCasas verifica se n tem no máximo `casas` casas decimais,
// com tolerância para o ruído de ponto flutuante do JSON.
func cabeNasCasas(n float64, casas int) bool {
	escala := n * math.Pow10(casas)
	return math.Abs(escala-math.Round(escala)) < 1e-6
}

func contem(lista []string, v string) bool {
	for _, item := range lista {
		if item == v {
			return true
		}
	}
	return false
}

// ValidarJSON desserializa o corpo cru e aplica o schema. Erro de
// sintaxe JSON também vira violação, para o handler responder 400.
func (s Schema) ValidarJSON(corpo []byte) []Violacao {
	var raw map[string]any
	if err := json.Unmarshal(corpo, &raw); err != nil {
		return []Violacao{{Campo: "_corpo", Motivo: "JSON mal formado"}}
	}
	return s.Validar(raw)
}
