package scoring

import (
	"math"
	"regexp"
	"strings"
)

var tfidfTokenRe = regexp.MustCompile(`\b\w\w+\b`)

// tfidfSimilarity computes cosine similarity between two documents using
// TF-IDF vectors over unigrams and bigrams. IDF is computed over exactly
// this 2-document corpus, which makes the weighting degenerate for very
// short inputs; callers rely on that behavior staying put.
func tfidfSimilarity(a, b string) float64 {
	docA := tfidfTerms(a)
	docB := tfidfTerms(b)
	if len(docA) == 0 || len(docB) == 0 {
		return 0
	}

	vocab := map[string]int{}
	for term := range docA {
		if _, ok := vocab[term]; !ok {
			vocab[term] = len(vocab)
		}
	}
	for term := range docB {
		if _, ok := vocab[term]; !ok {
			vocab[term] = len(vocab)
		}
	}

	vecA := tfidfVector(docA, docB, vocab)
	vecB := tfidfVector(docB, docA, vocab)
	return cosine(vecA, vecB)
}

// tfidfTerms tokenizes a document into unigram and bigram counts.
func tfidfTerms(text string) map[string]int {
	tokens := tfidfTokenRe.FindAllString(strings.ToLower(text), -1)

	counts := map[string]int{}
	for _, tok := range tokens {
		counts[tok]++
	}
	for i := 0; i+1 < len(tokens); i++ {
		counts[tokens[i]+" "+tokens[i+1]]++
	}
	return counts
}

// tfidfVector builds the l2-normalized TF-IDF vector for doc against the
// shared vocabulary, with smoothed IDF: ln((1+n)/(1+df)) + 1 for n=2.
func tfidfVector(doc, other map[string]int, vocab map[string]int) []float64 {
	vec := make([]float64, len(vocab))
	for term, idx := range vocab {
		tf := doc[term]
		if tf == 0 {
			continue
		}
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(3.0/float64(1+df)) + 1
		vec[idx] = float64(tf) * idf
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func cosine(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot < 0 {
		return 0
	}
	return dot
}
