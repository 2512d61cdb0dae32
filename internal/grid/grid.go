package grid

import (
	"errors"
	"fmt"

	"github.com/0xPuncker/job-grid/pkg/types"
)

// Size is the number of cells in the 20x20 presentation grid.
const Size = 400

var (
	ErrEmptyBase   = errors.New("grid: base list is empty")
	ErrInvalidSize = errors.New("grid: size must not be negative")
)

// Generate expands base into exactly n records by cycling over it. Records
// repeated in a later cycle get a " (k)" title suffix, k starting at 2.
func Generate(base []types.JobRecord, n int) ([]types.JobRecord, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if len(base) == 0 {
		return nil, ErrEmptyBase
	}

	out := make([]types.JobRecord, n)
	for i := range out {
		rec := base[i%len(base)]
		if variation := i / len(base); variation > 0 {
			rec.Title = fmt.Sprintf("%s (%d)", rec.Title, variation+1)
		}
		out[i] = rec
	}

	return out, nil
}
