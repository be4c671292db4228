package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/sim"

	"github.com/xuri/excelize/v2"
)

const (
	JobsSheet    = "Jobs"
	ResultsSheet = "Results"
)

var jobsHeader = []string{"#", "Name", "Fight Style", "Target Error", "Iterations", "Arguments", "Result"}

// resultCol is the 1-indexed column of the Result cell in JobsSheet.
const resultCol = 7

// ExportBatchXLSX writes the batch (and the results matrix, when given) to
// <dir>/<yyyymmdd>_tier_set_<class>_<spec>.xlsx and returns the path.
// The Result column of the Jobs sheet is left empty for ImportResultsXLSX.
func ExportBatchXLSX(dir, class, spec string, batch *domain.JobBatch, matrix *sim.Matrix) (string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", JobsSheet); err != nil {
		return "", err
	}
	if err := writeJobsSheet(f, batch); err != nil {
		return "", err
	}
	if matrix != nil {
		if _, err := f.NewSheet(ResultsSheet); err != nil {
			return "", err
		}
		if err := writeResultsSheet(f, *matrix); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	timestamp := time.Now().Format("20060102")
	filename := filepath.Join(dir, fmt.Sprintf("%s_tier_set_%s_%s.xlsx", timestamp, class, spec))
	if err := f.SaveAs(filename); err != nil {
		return "", err
	}
	return filename, nil
}

func writeJobsSheet(f *excelize.File, batch *domain.JobBatch) error {
	for i, h := range jobsHeader {
		if err := setCell(f, JobsSheet, i+1, 1, h); err != nil {
			return err
		}
	}

	for i, job := range batch.Jobs() {
		row := i + 2
		values := []any{i, job.Name, job.FightStyle, job.TargetError, job.Iterations, strings.Join(job.Arguments, "\n")}
		for c, v := range values {
			if err := setCell(f, JobsSheet, c+1, row, v); err != nil {
				return err
			}
		}
	}

	if batch.Len() > 0 {
		wrap, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		})
		if err != nil {
			return err
		}
		first, _ := excelize.CoordinatesToCellName(6, 2)
		last, _ := excelize.CoordinatesToCellName(6, batch.Len()+1)
		if err := f.SetCellStyle(JobsSheet, first, last, wrap); err != nil {
			return err
		}
	}
	return nil
}

func writeResultsSheet(f *excelize.File, m sim.Matrix) error {
	if err := setCell(f, ResultsSheet, 1, 1, "Build"); err != nil {
		return err
	}
	for i, c := range m.Columns {
		if err := setCell(f, ResultsSheet, i+2, 1, c); err != nil {
			return err
		}
	}
	for r, row := range m.Rows {
		if err := setCell(f, ResultsSheet, 1, r+2, row.Build); err != nil {
			return err
		}
		for i, c := range m.Columns {
			v, ok := row.Values[c]
			if !ok {
				continue
			}
			if err := setCell(f, ResultsSheet, i+2, r+2, v); err != nil {
				return err
			}
		}
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(m.Columns)+1, 1)
	return f.SetCellStyle(ResultsSheet, "A1", lastHeader, headerStyleID)
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}
