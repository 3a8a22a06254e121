package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/logplot/internal/limits"
	"github.com/san-kum/logplot/internal/logsafe"
)

// RangeExport is the JSON form of a log-safe range.
type RangeExport struct {
	Epsilon float64   `json:"epsilon"`
	X       []float64 `json:"x"`
	Center  []float64 `json:"center"`
	Low     []float64 `json:"low"`
	High    []float64 `json:"high"`
}

// ExportJSON writes the classified points, arrows included, as indented JSON.
func ExportJSON(w io.Writer, res *limits.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func ExportJSONFile(path string, res *limits.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, res)
}

// ExportRangeJSON writes a log-safe range computed at xs as indented JSON.
func ExportRangeJSON(w io.Writer, xs []float64, eps float64, rng *logsafe.Range) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RangeExport{
		Epsilon: eps,
		X:       xs,
		Center:  rng.Center,
		Low:     rng.Low,
		High:    rng.High,
	})
}
