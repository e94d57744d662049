// Package textutil provides the tokenizer and term-frequency scorer used by
// the keyword retriever. Both functions are pure.
package textutil

import (
	"regexp"
	"strings"
)

// Unicode-aware word class; Go's \w only covers ASCII and would split
// accented words in crawled pages.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize splits text into lowercase word tokens. Any run of non-word
// characters acts as a delimiter.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Score returns the sum over query terms of the term's raw occurrence count
// in the text. Plain term frequency: no IDF weighting, no length
// normalization. The corpus is small enough that anything fancier would not
// change the ranking in practice.
func Score(text string, queryTerms []string) float64 {
	counts := make(map[string]int)
	for _, tok := range Tokenize(text) {
		counts[tok]++
	}

	var score float64
	for _, term := range queryTerms {
		score += float64(counts[term])
	}
	return score
}
