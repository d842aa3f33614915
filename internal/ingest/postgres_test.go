package ingest

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/database"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/logger"
)

func TestArchiveSourceLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"institute", "program", "seat_type", "opening_rank", "closing_rank", "year", "round", "source_file",
	}).
		AddRow("IIT Bombay", "Computer Science and Engineering", "OPEN", "10", "50", 2023, 1, "archive").
		AddRow("NIT Trichy", "Mechanical Engg", "OPEN", "123456P", "  ", 2023, 2, "archive")

	mock.ExpectQuery("SELECT institute, program, seat_type").WillReturnRows(rows)

	source := NewArchiveSource(&database.PostgresClient{DB: db}, logger.NewTestLogger(t), "admission_records")
	records, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 10, records[0].OpeningRank)
	assert.Equal(t, 50, records[0].ClosingRank)
	assert.Equal(t, 123456, records[1].OpeningRank)
	assert.Equal(t, 0, records[1].ClosingRank)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveSourceQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT institute").WillReturnError(assert.AnError)

	source := NewArchiveSource(&database.PostgresClient{DB: db}, logger.NewTestLogger(t), "admission_records")
	_, err = source.Load(context.Background())
	require.Error(t, err)
}
