package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/logplot/internal/logsafe"
)

var ErrBadHeader = errors.New("storage: header must be x,y,err or x,y,err_down,err_up")

// Dataset is a series read from CSV. ErrDown and ErrUp share one slice for
// symmetric input.
type Dataset struct {
	X          []float64
	Y          []float64
	ErrDown    []float64
	ErrUp      []float64
	Asymmetric bool
}

func (d *Dataset) Len() int {
	return len(d.X)
}

// Errors returns the error bars for log-safe ranges.
func (d *Dataset) Errors() logsafe.ErrorBars {
	if d.Asymmetric {
		return logsafe.Asymmetric(d.ErrDown, d.ErrUp)
	}
	return logsafe.Symmetric(d.ErrDown)
}

// OpenDataset reads a dataset from a CSV file.
func OpenDataset(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadDataset(file)
}

// ReadDataset reads CSV with a header of x,y,err or x,y,err_down,err_up.
// Any unparsable value fails the whole read.
func ReadDataset(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrBadHeader
	}
	if err != nil {
		return nil, err
	}
	asym, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Asymmetric: asym}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, header[j], err)
			}
			vals[j] = v
		}

		ds.X = append(ds.X, vals[0])
		ds.Y = append(ds.Y, vals[1])
		ds.ErrDown = append(ds.ErrDown, vals[2])
		if asym {
			ds.ErrUp = append(ds.ErrUp, vals[3])
		}
	}
	if !asym {
		ds.ErrUp = ds.ErrDown
	}
	return ds, nil
}

func parseHeader(header []string) (bool, error) {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.ToLower(strings.TrimSpace(h))
	}
	switch strings.Join(names, ",") {
	case "x,y,err":
		return false, nil
	case "x,y,err_down,err_up":
		return true, nil
	default:
		return false, fmt.Errorf("%w, got %s", ErrBadHeader, strings.Join(header, ","))
	}
}
