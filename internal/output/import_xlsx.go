package output

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

func parseFloatCell(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Handle comma decimal separator.
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ImportResultsXLSX reads the Result column of a Jobs sheet written by
// ExportBatchXLSX and returns job name -> value. Rows without a result are skipped.
func ImportResultsXLSX(path string) (map[string]float64, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if idx, _ := f.GetSheetIndex(JobsSheet); idx == -1 {
		return nil, fmt.Errorf("xlsx %q: missing sheet %q", filepath.Base(path), JobsSheet)
	}

	rows, err := f.GetRows(JobsSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", JobsSheet, err)
	}

	out := make(map[string]float64)
	for i, row := range rows {
		if i == 0 || len(row) < resultCol {
			continue
		}
		name := strings.TrimSpace(row[1])
		if name == "" {
			continue
		}
		raw := row[resultCol-1]
		if strings.TrimSpace(raw) == "" {
			continue
		}
		v, ok := parseFloatCell(raw)
		if !ok {
			return nil, fmt.Errorf("%s row %d: invalid result %q for %s", JobsSheet, i+1, raw, name)
		}
		out[name] = v
	}
	return out, nil
}
