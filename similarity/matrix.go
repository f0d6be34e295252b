package similarity

import (
	"sync"

	"github.com/poiesic/phonemescape/features"
)

// Matrix is an n×n similarity table over an ordered list of symbols.
// Values[i][j] is the similarity of Symbols[i] to Symbols[j].
type Matrix struct {
	Symbols []string
	Values  [][]float64
}

// Len returns n.
func (m *Matrix) Len() int { return len(m.Symbols) }

// At returns Values[i][j].
func (m *Matrix) At(i, j int) float64 { return m.Values[i][j] }

// MeanOffDiagonal averages the upper triangle, excluding the diagonal. It
// reports false when the matrix has fewer than two rows.
func (m *Matrix) MeanOffDiagonal() (float64, bool) {
	n := m.Len()
	if n < 2 {
		return 0, false
	}
	var sum float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += m.Values[i][j]
		}
	}
	return sum / float64(n*(n-1)/2), true
}

// Matrix builds the similarity matrix of symbols. The diagonal is 1 and the
// matrix is symmetric. Every symbol is resolved before any score is computed,
// so an unknown symbol fails the whole call with core.ErrNotFound. Rows are
// scored concurrently on the engine's worker pool.
func (v *View) Matrix(symbols []string) (*Matrix, error) {
	entries := make([]features.Entry, len(symbols))
	for i, s := range symbols {
		e, err := v.entry(s)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	n := len(symbols)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		row := i
		fill := func() {
			defer wg.Done()
			for j := row + 1; j < n; j++ {
				s := 1.0
				if symbols[row] != symbols[j] {
					s = score(entries[row], entries[j])
				}
				values[row][j] = s
				values[j][row] = s
			}
		}
		wg.Add(1)
		if err := v.engine.pool.Submit(fill); err != nil {
			v.engine.logger.Debug("worker pool unavailable, scoring row inline", "row", row, "err", err)
			fill()
		}
	}
	wg.Wait()

	return &Matrix{
		Symbols: append([]string(nil), symbols...),
		Values:  values,
	}, nil
}
