package export

import (
	"fmt"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
)

// Row is one exported phoneme. The meaning of the feature columns depends on
// the section holding the row: height, backness, roundedness for vowels and
// manner, place, voicing for consonants.
type Row struct {
	Symbol      string  `json:"symbol" yaml:"symbol"`
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	Feature1    string  `json:"feature1" yaml:"feature1"`
	Feature2    string  `json:"feature2" yaml:"feature2"`
	Feature3    string  `json:"feature3" yaml:"feature3"`
	Description string  `json:"description" yaml:"description"`
}

// Document is the structured form of a catalog, vowels then consonants, each
// in catalog order.
type Document struct {
	Vowels     []Row `json:"vowels" yaml:"vowels"`
	Consonants []Row `json:"consonants" yaml:"consonants"`
}

func rowFor(p *core.Phoneme) Row {
	f := p.FeatureValues()
	return Row{
		Symbol:      p.Symbol,
		X:           p.Coordinate.X,
		Y:           p.Coordinate.Y,
		Feature1:    f[0],
		Feature2:    f[1],
		Feature3:    f[2],
		Description: p.Description,
	}
}

func (r Row) phoneme(category core.Category) core.Phoneme {
	return core.PhonemeFromFields(category, r.Symbol, core.Coordinate{X: r.X, Y: r.Y},
		[3]string{r.Feature1, r.Feature2, r.Feature3}, r.Description)
}

// NewDocument captures c.
func NewDocument(c *catalog.Catalog) *Document {
	d := &Document{
		Vowels:     make([]Row, 0, len(c.Vowels())),
		Consonants: make([]Row, 0, len(c.Consonants())),
	}
	for _, p := range c.All() {
		if p.IsVowel() {
			d.Vowels = append(d.Vowels, rowFor(&p))
		} else {
			d.Consonants = append(d.Consonants, rowFor(&p))
		}
	}
	return d
}

// Catalog validates the document and builds a catalog from it, vowels first.
func (d *Document) Catalog() (*catalog.Catalog, error) {
	phonemes := make([]core.Phoneme, 0, len(d.Vowels)+len(d.Consonants))
	for _, r := range d.Vowels {
		phonemes = append(phonemes, r.phoneme(core.CategoryVowel))
	}
	for _, r := range d.Consonants {
		phonemes = append(phonemes, r.phoneme(core.CategoryConsonant))
	}
	c, err := catalog.New(phonemes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidArgument, err)
	}
	return c, nil
}
