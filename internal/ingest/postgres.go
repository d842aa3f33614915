// internal/ingest/postgres.go
package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/database"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/errors"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/logger"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
)

// ArchiveSource reads admission records from a Postgres archive table
// instead of the file directory. Rank columns are stored as text because
// upstream exports keep the provisional "P" marker.
type ArchiveSource struct {
	client *database.PostgresClient
	logger logger.Logger
	table  string
}

func NewArchiveSource(client *database.PostgresClient, log logger.Logger, table string) *ArchiveSource {
	return &ArchiveSource{client: client, logger: log, table: table}
}

// Load fetches every archived admission record. Rows that fail to scan are
// skipped and counted, mirroring how unreadable file rows are treated.
func (s *ArchiveSource) Load(ctx context.Context) ([]models.AdmissionRecord, error) {
	query := fmt.Sprintf(
		`SELECT institute, program, seat_type, opening_rank, closing_rank, year, round, source_file FROM %s`,
		s.table,
	)
	rows, err := s.client.Query(ctx, query)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError(query, err)
	}
	defer rows.Close()

	var (
		records []models.AdmissionRecord
		badRows int
	)
	for rows.Next() {
		var (
			rec              models.AdmissionRecord
			opening, closing string
		)
		if err := rows.Scan(&rec.Institute, &rec.Program, &rec.SeatType, &opening, &closing, &rec.Year, &rec.Round, &rec.SourceFile); err != nil {
			badRows++
			continue
		}
		if strings.TrimSpace(rec.SeatType) == "" {
			rec.SeatType = "OPEN"
		}
		rec.OpeningRank = ParseRank(opening)
		rec.ClosingRank = ParseRank(closing)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError(query, err)
	}

	if badRows > 0 {
		s.logger.Warn("Skipped unreadable archive rows", map[string]interface{}{
			"table": s.table, "rows": badRows,
		})
	}
	s.logger.Info("Admission archive loaded", map[string]interface{}{
		"table": s.table, "records": len(records),
	})
	return records, nil
}
