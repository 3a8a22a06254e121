package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/logplot/internal/limits"
)

const (
	metadataFile = "metadata.json"
	pointsFile   = "points.csv"
)

// ErrBadName indicates a report name that would escape the store directory.
var ErrBadName = errors.New("storage: report name must be a plain file name")

// Store keeps classification reports as one directory per report.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type ReportMetadata struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Timestamp time.Time      `json:"timestamp"`
	Options   limits.Options `json:"options"`
	Points    int            `json:"points"`
	Limits    int            `json:"limits"`
}

// Save writes metadata.json and points.csv for res and returns the report id.
func (s *Store) Save(name string, res *limits.Result) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	id := fmt.Sprintf("%s_%s", name, strings.SplitN(uuid.NewString(), "-", 2)[0])
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := ReportMetadata{
		ID:        id,
		Name:      name,
		Timestamp: time.Now(),
		Options:   res.Options,
		Points:    res.Len(),
		Limits:    res.Limits(),
	}

	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, pointsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WritePoints(csvFile, res); err != nil {
		return "", err
	}
	return id, nil
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") ||
		filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}

// WritePoints writes the classified points as CSV.
func WritePoints(w io.Writer, res *limits.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "x", "y", "err", "upper_limit", "kind"}); err != nil {
		return err
	}
	for _, p := range res.Points {
		row := []string{
			strconv.Itoa(p.Index),
			formatFloat(p.X),
			formatFloat(p.Y),
			formatFloat(p.Err),
			formatFloat(p.UpperLimit),
			p.Kind.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns all reports, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]ReportMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ReportMetadata{}, nil
		}
		return nil, err
	}

	reports := make([]ReportMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		reports = append(reports, *meta)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Timestamp.Before(reports[j].Timestamp)
	})
	return reports, nil
}

func (s *Store) Load(id string) (*ReportMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta ReportMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPoints reads back the points of a report. Arrows are not stored and
// are left nil.
func (s *Store) LoadPoints(id string) ([]limits.Point, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, pointsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []limits.Point{}, nil
	}

	points := make([]limits.Point, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != 6 {
			return nil, fmt.Errorf("%s row %d: expected 6 fields, got %d", pointsFile, i+1, len(record))
		}
		var p limits.Point
		if p.Index, err = strconv.Atoi(record[0]); err != nil {
			return nil, err
		}
		vals := make([]float64, 4)
		for j := range vals {
			if vals[j], err = strconv.ParseFloat(record[j+1], 64); err != nil {
				return nil, err
			}
		}
		p.X, p.Y, p.Err, p.UpperLimit = vals[0], vals[1], vals[2], vals[3]
		if err := p.Kind.UnmarshalText([]byte(record[5])); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}
