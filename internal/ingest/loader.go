// internal/ingest/loader.go
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/config"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/errors"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/logger"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/metrics"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
)

// ratingSheetMarker routes a file to the rating loader instead of the
// admission loader. Matched case-insensitively against the filename.
const ratingSheetMarker = "value for money"

// Loader reads admission files and the optional rating sheet from a data
// directory. A file that fails to parse is logged and excluded; the load
// fails only when no admission file parses at all.
type Loader struct {
	logger       logger.Logger
	defaultYear  int
	defaultRound int
}

func NewLoader(log logger.Logger, cfg config.TrainingConfig) *Loader {
	return &Loader{
		logger:       log,
		defaultYear:  cfg.DefaultYear,
		defaultRound: cfg.DefaultRound,
	}
}

// LoadDir scans dir and returns the concatenated admission records plus the
// rating sheet rows, if a rating sheet was present.
func (l *Loader) LoadDir(dir string) ([]models.AdmissionRecord, []models.RatingRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, errors.NewNoAdmissionFilesError(dir)
	}

	var (
		records     []models.AdmissionRecord
		ratings     []models.RatingRecord
		filesParsed int
	)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".csv" && ext != ".xlsx" {
			continue
		}
		path := filepath.Join(dir, name)

		if strings.Contains(strings.ToLower(name), ratingSheetMarker) {
			rows, err := l.loadRatingFile(path, ext)
			if err != nil {
				l.logger.Warn("Skipping unreadable rating sheet", map[string]interface{}{
					"file": name, "error": err.Error(),
				})
				continue
			}
			if ratings != nil {
				l.logger.Warn("Multiple rating sheets found, keeping the first", map[string]interface{}{
					"file": name,
				})
				continue
			}
			ratings = rows
			l.logger.Info("Rating sheet loaded", map[string]interface{}{
				"file": name, "rows": len(rows),
			})
			continue
		}

		rows, err := l.loadAdmissionFile(path, ext)
		if err != nil {
			metrics.TrainingFilesFailed.WithLabelValues(strings.TrimPrefix(ext, ".")).Inc()
			l.logger.Warn("Skipping unreadable admission file", map[string]interface{}{
				"file": name, "error": err.Error(),
			})
			continue
		}
		metrics.TrainingFilesLoaded.WithLabelValues(strings.TrimPrefix(ext, ".")).Inc()
		l.logger.Info("Admission file loaded", map[string]interface{}{
			"file": name, "rows": len(rows),
		})
		records = append(records, rows...)
		filesParsed++
	}

	if filesParsed == 0 {
		return nil, nil, errors.NewNoAdmissionFilesError(dir)
	}
	return records, ratings, nil
}

func (l *Loader) loadAdmissionFile(path, ext string) ([]models.AdmissionRecord, error) {
	rows, err := readTable(path, ext)
	if err != nil {
		return nil, errors.NewFileParseFailedError(path, err)
	}
	if len(rows) < 2 {
		return nil, errors.NewFileParseFailedError(path, fmt.Errorf("no data rows"))
	}

	cols := resolveAdmissionColumns(rows[0])
	l.logger.Debug("Admission file columns resolved", map[string]interface{}{
		"file":   filepath.Base(path),
		"header": rows[0],
	})
	if cols.institute < 0 || cols.program < 0 {
		return nil, errors.NewFileParseFailedError(path, fmt.Errorf("required columns missing"))
	}

	source := filepath.Base(path)
	records := make([]models.AdmissionRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		institute := cell(row, cols.institute)
		if strings.TrimSpace(institute) == "" {
			continue
		}
		seatType := cell(row, cols.seatType)
		if strings.TrimSpace(seatType) == "" {
			// A missing seat type means an unreserved seat in the source data.
			seatType = "OPEN"
		}
		rec := models.AdmissionRecord{
			Institute:   institute,
			Program:     cell(row, cols.program),
			SeatType:    seatType,
			OpeningRank: ParseRank(cell(row, cols.opening)),
			ClosingRank: ParseRank(cell(row, cols.closing)),
			Year:        l.defaultYear,
			Round:       l.defaultRound,
			SourceFile:  source,
		}
		if cols.year >= 0 {
			if y, err := strconv.Atoi(strings.TrimSpace(cell(row, cols.year))); err == nil {
				rec.Year = y
			}
		}
		if cols.round >= 0 {
			if r, err := strconv.Atoi(strings.TrimSpace(cell(row, cols.round))); err == nil {
				rec.Round = r
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (l *Loader) loadRatingFile(path, ext string) ([]models.RatingRecord, error) {
	rows, err := readTable(path, ext)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows in %s", filepath.Base(path))
	}

	cols := resolveRatingColumns(rows[0])
	if cols.institute < 0 || cols.rating < 0 {
		return nil, fmt.Errorf("required columns missing in %s", filepath.Base(path))
	}

	records := make([]models.RatingRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		institute := cell(row, cols.institute)
		if strings.TrimSpace(institute) == "" {
			continue
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(cell(row, cols.rating)), 64)
		if err != nil {
			continue
		}
		records = append(records, models.RatingRecord{
			Institute: institute,
			Course:    cell(row, cols.course),
			Rating:    rating,
		})
	}
	return records, nil
}

// readTable reads a whole CSV or XLSX file into rows of cells. XLSX files
// are read from their first sheet only.
func readTable(path, ext string) ([][]string, error) {
	if ext == ".xlsx" {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		return f.GetRows(sheets[0])
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

type admissionColumns struct {
	institute int
	program   int
	seatType  int
	opening   int
	closing   int
	year      int
	round     int
}

type ratingColumns struct {
	institute int
	course    int
	rating    int
}

func resolveAdmissionColumns(header []string) admissionColumns {
	cols := admissionColumns{-1, -1, -1, -1, -1, -1, -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "institute":
			cols.institute = i
		case "academic program name", "program":
			cols.program = i
		case "seat type":
			cols.seatType = i
		case "opening rank":
			cols.opening = i
		case "closing rank":
			cols.closing = i
		case "year":
			cols.year = i
		case "round":
			cols.round = i
		}
	}
	return cols
}

func resolveRatingColumns(header []string) ratingColumns {
	cols := ratingColumns{-1, -1, -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "institute":
			cols.institute = i
		case "course":
			cols.course = i
		case "value for money (out of 5)":
			cols.rating = i
		}
	}
	return cols
}

// cell indexes a row defensively; short rows read as empty cells.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
