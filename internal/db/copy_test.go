package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return mock
}

func TestCopyFrom_EmptyRowsIsNoop(t *testing.T) {
	mock := newMockPool(t)

	n, err := CopyFrom(context.Background(), mock, "leads", []string{"name"}, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyFrom_InsertsRows(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectCopyFrom(pgx.Identifier{"leads"}, []string{"name", "company"}).
		WillReturnResult(2)

	rows := [][]any{
		{"Sarah Johnson", "Austin Digital Solutions"},
		{"Michael Chen", "Growth Labs Marketing"},
	}
	n, err := CopyFrom(context.Background(), mock, "leads", []string{"name", "company"}, rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyFrom_WrapsError(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectCopyFrom(pgx.Identifier{"leads"}, []string{"name"}).
		WillReturnError(errors.New("connection reset"))

	_, err := CopyFrom(context.Background(), mock, "leads", []string{"name"}, [][]any{{"x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COPY INTO leads")
}
