package curves

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

/*
ReadSamples reads rated performance points from CSV.

	Notes:
	    The header names the columns x, y, z and output. Columns for variables the
	    family does not use may be omitted.
*/
func ReadSamples(r io.Reader) ([]Sample, error) {
	var rows []*Sample
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read curve samples: %w", err)
	}

	samples := make([]Sample, len(rows))
	for i, row := range rows {
		samples[i] = *row
	}
	return samples, nil
}

// ReadSamplesFile opens path and reads it with ReadSamples.
func ReadSamplesFile(path string) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadSamples(file)
}
