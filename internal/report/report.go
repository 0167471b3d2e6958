// Package report exports journaled runs to an xlsx workbook.
//
// The workbook has two sheets. "Runs" holds one row per run, newest first as
// received. "Workers" holds one row per worker of every run that carries worker
// outcomes.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	v1 "github.com/khimalex/shoedryer/api/v1"
)

const (
	RunsSheet    = "Runs"
	WorkersSheet = "Workers"
)

var (
	runHeader    = []any{"Run", "Outcome", "Workers", "Iterations", "Started", "Stopped", "Drained", "Duration (s)", "Error"}
	workerHeader = []any{"Run", "Worker", "Outcome", "Iterations", "Error"}
)

// Build creates the workbook. The caller must close it.
func Build(runs []v1.Run) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", RunsSheet); err != nil {
		return nil, closeOnError(f, err)
	}
	if _, err := f.NewSheet(WorkersSheet); err != nil {
		return nil, closeOnError(f, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, closeOnError(f, err)
	}

	if err := writeHeader(f, RunsSheet, runHeader, headerStyle); err != nil {
		return nil, closeOnError(f, err)
	}
	if err := writeHeader(f, WorkersSheet, workerHeader, headerStyle); err != nil {
		return nil, closeOnError(f, err)
	}

	workerRow := 2
	for i, run := range runs {
		if err := writeRow(f, RunsSheet, i+2, runRow(run)); err != nil {
			return nil, closeOnError(f, err)
		}
		if run.WorkerRuns == nil {
			continue
		}
		for _, w := range *run.WorkerRuns {
			row := []any{run.Id, w.Worker, string(w.Outcome), w.Iterations, deref(w.Error)}
			if err := writeRow(f, WorkersSheet, workerRow, row); err != nil {
				return nil, closeOnError(f, err)
			}
			workerRow++
		}
	}

	if err := f.SetColWidth(RunsSheet, "A", "A", 38); err != nil {
		return nil, closeOnError(f, err)
	}
	if err := f.SetColWidth(RunsSheet, "E", "G", 22); err != nil {
		return nil, closeOnError(f, err)
	}
	if err := f.SetColWidth(WorkersSheet, "A", "A", 38); err != nil {
		return nil, closeOnError(f, err)
	}

	return f, nil
}

// Write builds the workbook and writes it to w.
func Write(w io.Writer, runs []v1.Run) error {
	f, err := Build(runs)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func runRow(run v1.Run) []any {
	var duration any
	if run.DrainedAt != nil {
		duration = run.DrainedAt.Sub(run.StartedAt).Seconds()
	}
	return []any{
		run.Id,
		string(run.Outcome),
		run.Workers,
		run.Iterations,
		formatTime(&run.StartedAt),
		formatTime(run.StoppedAt),
		formatTime(run.DrainedAt),
		duration,
		deref(run.Error),
	}
}

func writeHeader(f *excelize.File, sheet string, header []any, style int) error {
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func closeOnError(f *excelize.File, err error) error {
	_ = f.Close()
	return err
}
