// Package classify implements the per-company account suggester: a TF-IDF
// text model over transaction descriptions, retrainable from user
// corrections. Consumers only see Train and Model.Predict.
package classify

import (
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/cimax123/asistente-contable/internal/common"
)

// Example is one labeled training row: a free-text transaction description
// and its account name.
type Example struct {
	Text  string
	Label string
}

// Model scores descriptions against per-account centroids in TF-IDF space.
type Model struct {
	idf       map[string]float64
	centroids map[string]map[string]float64
	labels    []string
	docs      int
}

// minExamplesPerLabel drops accounts that appear fewer than this many
// times; a single example gives the model nothing to generalize from.
const minExamplesPerLabel = 2

// Train builds a model from labeled examples. Labels with fewer than two
// occurrences are filtered out first; when nothing survives the filter the
// training set is unusable and ErrInsufficientData comes back.
func Train(examples []Example, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	counts := make(map[string]int)
	for _, ex := range examples {
		counts[ex.Label]++
	}
	var retained []Example
	for _, ex := range examples {
		if counts[ex.Label] >= minExamplesPerLabel {
			retained = append(retained, ex)
		}
	}
	if len(retained) == 0 {
		return nil, common.NewAppError("TRAIN", "no label retains two or more examples", common.ErrInsufficientData)
	}

	// Document frequencies over the retained set.
	df := make(map[string]int)
	tokenized := make([][]string, len(retained))
	for i, ex := range retained {
		terms := ngrams(tokenize(ex.Text))
		tokenized[i] = terms
		for _, t := range uniqueTerms(terms) {
			df[t]++
		}
	}

	n := len(retained)
	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	m := &Model{idf: idf, centroids: make(map[string]map[string]float64), docs: n}
	perLabel := make(map[string]int)
	for i, ex := range retained {
		vec := m.vectorize(tokenized[i])
		c, ok := m.centroids[ex.Label]
		if !ok {
			c = make(map[string]float64)
			m.centroids[ex.Label] = c
		}
		for t, w := range vec {
			c[t] += w
		}
		perLabel[ex.Label]++
	}
	for label, c := range m.centroids {
		for t := range c {
			c[t] /= float64(perLabel[label])
		}
		normalize(c)
		m.labels = append(m.labels, label)
	}
	sort.Strings(m.labels)

	logger.Info("classify.train.ok", "examples", n, "labels", len(m.labels))
	return m, nil
}

// Labels returns the account names the model can suggest, sorted.
func (m *Model) Labels() []string {
	return m.labels
}

// Predict suggests an account for each description. Texts with no known
// terms fall back to the first label so the output always lines up with
// the input.
func (m *Model) Predict(texts []string) []string {
	out := make([]string, len(texts))
	for i, text := range texts {
		vec := m.vectorize(ngrams(tokenize(text)))
		best, bestScore := m.labels[0], math.Inf(-1)
		for _, label := range m.labels {
			score := dot(vec, m.centroids[label])
			if score > bestScore {
				best, bestScore = label, score
			}
		}
		out[i] = best
	}
	return out
}

// vectorize builds the L2-normalized, sublinear-tf TF-IDF vector of the
// given terms, ignoring terms unseen in training.
func (m *Model) vectorize(terms []string) map[string]float64 {
	tf := make(map[string]float64)
	for _, t := range terms {
		if _, known := m.idf[t]; known {
			tf[t]++
		}
	}
	vec := make(map[string]float64, len(tf))
	for t, f := range tf {
		vec[t] = (1 + math.Log(f)) * m.idf[t]
	}
	normalize(vec)
	return vec
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == 'ñ' ||
			r == 'á' || r == 'é' || r == 'í' || r == 'ó' || r == 'ú')
	})
}

// ngrams appends word bigrams to the unigram list.
func ngrams(words []string) []string {
	terms := make([]string, 0, 2*len(words))
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

func uniqueTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := terms[:0:0]
	for _, t := range terms {
		if _, dup := seen[t]; !dup {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

func normalize(vec map[string]float64) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for t := range vec {
		vec[t] /= norm
	}
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var s float64
	for t, w := range a {
		s += w * b[t]
	}
	return s
}
