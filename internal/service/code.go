package service

import (
	"math/rand/v2"
	"strconv"
)

const (
	numeralMin  = 1000000
	numeralSpan = 9000000
)

// CodeGenerator builds registration codes.
type CodeGenerator struct {
	intn func(n int) int
}

// NewCodeGenerator uses the global source when src is nil.
func NewCodeGenerator(src rand.Source) *CodeGenerator {
	if src == nil {
		return &CodeGenerator{intn: rand.IntN}
	}
	return &CodeGenerator{intn: rand.New(src).IntN}
}

// Numeral returns a uniformly drawn number in [1000000, 9999999].
func (g *CodeGenerator) Numeral() string {
	return strconv.Itoa(numeralMin + g.intn(numeralSpan))
}

// Compose returns <numeral><category><rule>, drawing a fresh numeral.
func (g *CodeGenerator) Compose(category, rule string) string {
	return g.Numeral() + category + rule
}
