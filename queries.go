// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package phonemescape

import (
	"fmt"
	"unicode/utf8"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
	"github.com/poiesic/phonemescape/export"
	"github.com/poiesic/phonemescape/similarity"
)

// PhonemeInfo is the full record of one phoneme.
type PhonemeInfo struct {
	Symbol      string            `json:"symbol" yaml:"symbol"`
	Type        string            `json:"type" yaml:"type"`
	Coordinate  core.Coordinate   `json:"coordinates" yaml:"coordinates"`
	Features    map[string]string `json:"features" yaml:"features"`
	Description string            `json:"description" yaml:"description"`
}

func infoFor(p *core.Phoneme) PhonemeInfo {
	return PhonemeInfo{
		Symbol:      p.Symbol,
		Type:        p.Category.String(),
		Coordinate:  p.Coordinate,
		Features:    p.Features(),
		Description: p.Description,
	}
}

// Info returns the record for symbol, or core.ErrNotFound.
func (l *Library) Info(symbol string) (*PhonemeInfo, error) {
	p, err := l.Catalog().Lookup(symbol)
	if err != nil {
		return nil, err
	}
	info := infoFor(&p)
	return &info, nil
}

// Planes returns the chart metadata for vowels and consonants. The two
// planes do not share axes and must be drawn separately.
func (l *Library) Planes() []core.Plane {
	return []core.Plane{core.VowelPlane, core.ConsonantPlane}
}

// WordAnalysis summarizes the phonemes of a word.
type WordAnalysis struct {
	Word              string        `json:"word" yaml:"word"`
	Phonemes          []string      `json:"phonemes" yaml:"phonemes"`
	InvalidPhonemes   []string      `json:"invalid_phonemes" yaml:"invalid_phonemes"`
	NumPhonemes       int           `json:"n_phonemes" yaml:"n_phonemes"`
	NumVowels         int           `json:"n_vowels" yaml:"n_vowels"`
	NumConsonants     int           `json:"n_consonants" yaml:"n_consonants"`
	AverageSimilarity float64       `json:"average_similarity" yaml:"average_similarity"`
	Details           []PhonemeInfo `json:"phoneme_details" yaml:"phoneme_details"`
}

// AnalyzeWord splits text into one symbol per code point, so symbols written
// with several code points are reported as separate, likely invalid, parts.
// Bytes that are not valid UTF-8 are reported invalid one byte at a time,
// exactly as sent.
// AverageSimilarity is the mean similarity over all pairs of valid symbols,
// or 1 when there are fewer than two.
func (l *Library) AnalyzeWord(text string) (*WordAnalysis, error) {
	view := l.engine.View()
	c := view.Catalog()

	a := &WordAnalysis{
		Word:              text,
		Phonemes:          []string{},
		InvalidPhonemes:   []string{},
		Details:           []PhonemeInfo{},
		AverageSimilarity: 1,
	}
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		symbol := text[i : i+size]
		i += size
		p, err := c.Lookup(symbol)
		if err != nil {
			a.InvalidPhonemes = append(a.InvalidPhonemes, symbol)
			continue
		}
		a.Phonemes = append(a.Phonemes, symbol)
		a.Details = append(a.Details, infoFor(&p))
		if p.IsVowel() {
			a.NumVowels++
		} else {
			a.NumConsonants++
		}
	}
	a.NumPhonemes = len(a.Phonemes)

	if a.NumPhonemes > 1 {
		m, err := view.Matrix(a.Phonemes)
		if err != nil {
			return nil, err
		}
		a.AverageSimilarity, _ = m.MeanOffDiagonal()
	}
	return a, nil
}

// FindByFeatures returns the symbols matching every constraint, in catalog
// order.
func (l *Library) FindByFeatures(constraints catalog.Constraints) []string {
	return l.Catalog().Filter(constraints)
}

// FindByFeatureMap parses name/value constraints, such as
// {"height": "close", "place": "bilabial"}, and filters by them.
func (l *Library) FindByFeatureMap(features map[string]string) ([]string, error) {
	constraints, err := catalog.ParseConstraints(features)
	if err != nil {
		return nil, err
	}
	return l.FindByFeatures(constraints), nil
}

// FindSimilar ranks the phonemes of category, or of both categories when
// category is zero, by similarity to target.
func (l *Library) FindSimilar(target string, category core.Category, k int) ([]similarity.Neighbor, error) {
	view := l.engine.View()
	var pool []string
	switch category {
	case 0:
		pool = view.Catalog().Symbols()
	case core.CategoryVowel, core.CategoryConsonant:
		pool = view.Catalog().SymbolsIn(category)
	default:
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidArgument, core.ErrInvalidCategory)
	}
	return view.NearestNeighbors(target, pool, k)
}

// Similarity scores a against b in [0, 1].
func (l *Library) Similarity(a, b string) (float64, error) {
	return l.engine.Similarity(a, b)
}

// Distance returns the chart distance between a and b, +Inf across
// categories.
func (l *Library) Distance(a, b string) (float64, error) {
	return l.engine.Distance(a, b)
}

// ArticulatoryDistance returns the distance over the full feature vector.
func (l *Library) ArticulatoryDistance(a, b string) (float64, error) {
	return l.engine.ArticulatoryDistance(a, b)
}

// Matrix builds the similarity matrix of symbols.
func (l *Library) Matrix(symbols []string) (*similarity.Matrix, error) {
	return l.engine.Matrix(symbols)
}

// NearestNeighbors ranks pool by similarity to target.
func (l *Library) NearestNeighbors(target string, pool []string, k int) ([]similarity.Neighbor, error) {
	return l.engine.NearestNeighbors(target, pool, k)
}

// Clusters partitions symbols into k groups.
func (l *Library) Clusters(symbols []string, k int) (similarity.Clusters, error) {
	return l.engine.Cluster(symbols, k)
}

// CatalogDocument returns the served catalog as a plain structured mapping.
func (l *Library) CatalogDocument() *export.Document {
	return export.NewDocument(l.Catalog())
}

// ExportCatalog serializes the served catalog as json, csv or yaml.
func (l *Library) ExportCatalog(format string) ([]byte, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return export.Encode(l.Catalog(), f)
}
