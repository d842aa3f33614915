package database

import (
	"context"
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/errors"
)

func TestPostgresPingWrapsConnectionError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(fmt.Errorf("connection refused"))

	client := &PostgresClient{DB: db}
	err = client.Ping(context.Background())
	require.Error(t, err)

	code, ok := errors.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeDatabaseConnectionFailed, code)
	assert.True(t, errors.IsRetryable(err))
}

func TestPostgresPingHealthy(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()

	client := &PostgresClient{DB: db}
	assert.NoError(t, client.Ping(context.Background()))
}
