// Package vmath содержит чистые операции над векторами эмбеддингов.
package vmath

import (
	"math"

	"github.com/DRSN-tech/substitution-engine/pkg/e"
)

// Cosine возвращает косинусную близость двух векторов в диапазоне [-1, 1].
// Векторы разной длины — нарушение инварианта, возвращается e.ErrDimensionMismatch.
// Если хотя бы один вектор нулевой, результат определён как 0.0 (не ошибка),
// чтобы подсчёт по множеству кандидатов оставался тотальным.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, e.ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// CosineScorer — stateless-обёртка над Cosine для передачи по интерфейсу.
type CosineScorer struct{}

func NewCosineScorer() *CosineScorer {
	return &CosineScorer{}
}

func (CosineScorer) Score(a, b []float32) (float64, error) {
	return Cosine(a, b)
}
