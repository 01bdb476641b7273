// Package tfidf реализует локальный детерминированный энкодер текста
// на основе TF-IDF. Используется как бэкенд векторизации, когда внешний
// сервис недоступен или не нужен (разработка, тесты, небольшие каталоги).
package tfidf

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/DRSN-tech/substitution-engine/pkg/e"
)

// Encoder строит словарь по корпусу каталога и считает сглаженный IDF.
// Размерность вектора равна размеру словаря и фиксируется в Prepare;
// перестроение индекса создаёт новый экземпляр с новым словарём.
type Encoder struct {
	vocabulary   map[string]int
	idf          []float64
	dimension    int
	prepared     bool
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

func NewEncoder() *Encoder {
	return &Encoder{
		vocabulary:   make(map[string]int),
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+`),
		stopwords:    defaultStopwords(),
	}
}

func (t *Encoder) Name() string { return "tfidf-local" }

// Prepare строит словарь и значения IDF по переданному корпусу.
// Термы упорядочиваются лексикографически, поэтому при неизменном корпусе
// словарь (и все последующие векторы) воспроизводятся в точности.
func (t *Encoder) Prepare(ctx context.Context, corpus []string) error {
	const op = "tfidf.Prepare"

	if len(corpus) == 0 {
		return e.Wrap(op, e.ErrEmptyCorpus)
	}

	df := make(map[string]int)
	for _, text := range corpus {
		if err := ctx.Err(); err != nil {
			return e.Wrap(op, err)
		}

		seen := make(map[string]struct{})
		for _, tok := range t.tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) == 0 {
		return e.Wrap(op, e.ErrEmptyCorpus)
	}

	t.vocabulary = make(map[string]int, len(terms))
	t.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		t.vocabulary[term] = i
		// Сглаженный IDF
		t.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	t.dimension = len(terms)
	t.prepared = true

	return nil
}

func (t *Encoder) Dimension() int { return t.dimension }

// EncodeText возвращает L2-нормированный TF-IDF вектор текста.
// Токены вне словаря игнорируются; текст без известных токенов даёт
// нулевой вектор (не ошибку) — такой вектор имеет нулевую близость ко всем.
func (t *Encoder) EncodeText(ctx context.Context, text string) ([]float32, error) {
	const op = "tfidf.EncodeText"

	if !t.prepared {
		return nil, e.Wrap(op, e.ErrIndexNotBuilt)
	}

	vec := make([]float64, t.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range t.tokenize(text) {
		if idx, ok := t.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}

	if total > 0 {
		for idx, count := range tf {
			tfv := float64(count) / float64(total)
			vec[idx] = tfv * t.idf[idx]
		}

		norm := 0.0
		for _, v := range vec {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm > 0 {
			for i := range vec {
				vec[i] /= norm
			}
		}
	}

	out := make([]float32, t.dimension)
	for i, v := range vec {
		out[i] = float32(v)
	}

	return out, nil
}

func (t *Encoder) tokenize(text string) []string {
	lower := strings.ToLower(text)
	raw := t.tokenPattern.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}
	out := raw[:0]
	for _, tok := range raw {
		if _, isStop := t.stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that", "these",
		"those", "from", "up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "out", "off", "own",
		"same", "too", "very", "can", "will", "just", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
