package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
)

// CSVHeader is the first line of every exported CSV.
var CSVHeader = []string{"Type", "Symbol", "X", "Y", "Feature1", "Feature2", "Feature3", "Description"}

// WriteCSV writes c as CSV, vowels first.
func WriteCSV(w io.Writer, c *catalog.Catalog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	d := NewDocument(c)
	sections := []struct {
		category core.Category
		rows     []Row
	}{
		{core.CategoryVowel, d.Vowels},
		{core.CategoryConsonant, d.Consonants},
	}
	for _, s := range sections {
		for _, r := range s.rows {
			record := []string{
				s.category.String(),
				r.Symbol,
				strconv.FormatFloat(r.X, 'g', -1, 64),
				strconv.FormatFloat(r.Y, 'g', -1, 64),
				r.Feature1, r.Feature2, r.Feature3,
				r.Description,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses CSV in the WriteCSV layout. The header row is optional and
// rows may mix categories in any order. The catalog lists vowels first, each
// category in file order, so it matches what WriteCSV would write.
func ReadCSV(r io.Reader) (*catalog.Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)
	cr.TrimLeadingSpace = true

	var vowels, consonants []core.Phoneme
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %w", core.ErrInvalidArgument, err)
		}
		if line == 1 && strings.EqualFold(record[0], CSVHeader[0]) {
			continue
		}
		p, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: csv line %d: %w", core.ErrInvalidArgument, line, err)
		}
		if p.IsVowel() {
			vowels = append(vowels, p)
		} else {
			consonants = append(consonants, p)
		}
	}

	c, err := catalog.New(append(vowels, consonants...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidArgument, err)
	}
	return c, nil
}

func parseRecord(record []string) (core.Phoneme, error) {
	category, err := core.ParseCategory(strings.ToLower(record[0]))
	if err != nil {
		return core.Phoneme{}, err
	}
	x, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return core.Phoneme{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return core.Phoneme{}, fmt.Errorf("y: %w", err)
	}
	return core.PhonemeFromFields(category, record[1], core.Coordinate{X: x, Y: y},
		[3]string{record[4], record[5], record[6]}, record[7]), nil
}
