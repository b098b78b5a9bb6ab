package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listCustomToolsSQL = "SELECT id, owner_id, name, description, code, parameters, active, execution_count, last_executed_at, created_at, updated_at FROM custom_tools"

func TestCustomToolRepository_ListCustomTools(t *testing.T) {
	fixedID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	otherID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2026, 1, 24, 12, 0, 0, 0, time.UTC)
	executedAt := fixedTime.Add(time.Hour)

	tests := map[string]struct {
		activeOnly bool
		expect     func(sqlmock.Sqlmock)
		want       []domain.CustomTool
		wantErr    bool
	}{
		"all-tools": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(customToolFields).
					AddRow(fixedID.String(), "owner-1", "sum", "adds", "return args.a + args.b;", []byte(`{}`), true, int64(3), executedAt, fixedTime, fixedTime).
					AddRow(otherID.String(), "owner-1", "hash", "hashes", "return 1;", []byte(`{"type":"object"}`), false, int64(0), nil, fixedTime, fixedTime)
				m.ExpectQuery(listCustomToolsSQL + " WHERE owner_id = $1 ORDER BY created_at ASC, name ASC").
					WithArgs("owner-1").
					WillReturnRows(rows)
			},
			want: []domain.CustomTool{
				{
					ID:             fixedID,
					OwnerID:        "owner-1",
					Name:           "sum",
					Description:    "adds",
					Code:           "return args.a + args.b;",
					Parameters:     map[string]any{},
					Active:         true,
					ExecutionCount: 3,
					LastExecutedAt: &executedAt,
					CreatedAt:      fixedTime,
					UpdatedAt:      fixedTime,
				},
				{
					ID:          otherID,
					OwnerID:     "owner-1",
					Name:        "hash",
					Description: "hashes",
					Code:        "return 1;",
					Parameters:  map[string]any{"type": "object"},
					CreatedAt:   fixedTime,
					UpdatedAt:   fixedTime,
				},
			},
		},
		"active-only-empty": {
			activeOnly: true,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(listCustomToolsSQL+" WHERE active = $1 AND owner_id = $2 ORDER BY created_at ASC, name ASC").
					WithArgs(true, "owner-1").
					WillReturnRows(sqlmock.NewRows(customToolFields))
			},
			want: []domain.CustomTool{},
		},
		"query-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(listCustomToolsSQL + " WHERE owner_id = $1 ORDER BY created_at ASC, name ASC").
					WithArgs("owner-1").
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
		"invalid-parameters-json": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(customToolFields).
					AddRow(fixedID.String(), "owner-1", "sum", "adds", "return 1;", []byte(`not-json`), true, int64(0), nil, fixedTime, fixedTime)
				m.ExpectQuery(listCustomToolsSQL + " WHERE owner_id = $1 ORDER BY created_at ASC, name ASC").
					WithArgs("owner-1").
					WillReturnRows(rows)
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewCustomToolRepository(db)
			got, err := repo.ListCustomTools(context.Background(), "owner-1", tt.activeOnly)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCustomToolRepository_CreateCustomTool(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 12, 0, 0, 0, time.UTC)
	tool := domain.NewCustomTool("owner-1", "Sum", "adds", "return args.a + args.b;", fixedTime)
	insertSQL := "INSERT INTO custom_tools (id,owner_id,name,description,code,parameters,active,execution_count,last_executed_at,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)"

	tests := map[string]struct {
		expect  func(sqlmock.Sqlmock)
		wantErr error
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertSQL).
					WithArgs(tool.ID, "owner-1", "sum", "adds", "return args.a + args.b;", []byte(`{}`), true, int64(0), nil, fixedTime, fixedTime).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"unique-violation": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertSQL).
					WithArgs(tool.ID, "owner-1", "sum", "adds", "return args.a + args.b;", []byte(`{}`), true, int64(0), nil, fixedTime, fixedTime).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "custom_tools_owner_name_key"})
			},
			wantErr: domain.NewDuplicateNameErr("tool 'sum' already exists"),
		},
		"other-database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertSQL).
					WithArgs(tool.ID, "owner-1", "sum", "adds", "return args.a + args.b;", []byte(`{}`), true, int64(0), nil, fixedTime, fixedTime).
					WillReturnError(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewCustomToolRepository(db)
			gotErr := repo.CreateCustomTool(context.Background(), tool)
			assert.Equal(t, tt.wantErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCustomToolRepository_DeleteCustomTool(t *testing.T) {
	deleteSQL := "DELETE FROM custom_tools WHERE name = $1 AND owner_id = $2"

	tests := map[string]struct {
		expect      func(sqlmock.Sqlmock)
		wantDeleted bool
		wantErr     bool
	}{
		"deleted": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(deleteSQL).WithArgs("sum", "owner-1").WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantDeleted: true,
		},
		"not-found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(deleteSQL).WithArgs("sum", "owner-1").WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(deleteSQL).WithArgs("sum", "owner-1").WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewCustomToolRepository(db)
			deleted, err := repo.DeleteCustomTool(context.Background(), "owner-1", "sum")
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantDeleted, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCustomToolRepository_UpdateCustomToolActive(t *testing.T) {
	updatedAt := time.Date(2026, 1, 24, 12, 0, 0, 0, time.UTC)
	updateSQL := "UPDATE custom_tools SET active = $1, updated_at = $2 WHERE name = $3 AND owner_id = $4"

	tests := map[string]struct {
		expect    func(sqlmock.Sqlmock)
		wantFound bool
		wantErr   bool
	}{
		"found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(updateSQL).WithArgs(false, updatedAt, "sum", "owner-1").WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantFound: true,
		},
		"not-found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(updateSQL).WithArgs(false, updatedAt, "sum", "owner-1").WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(updateSQL).WithArgs(false, updatedAt, "sum", "owner-1").WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewCustomToolRepository(db)
			found, err := repo.UpdateCustomToolActive(context.Background(), "owner-1", "sum", false, updatedAt)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCustomToolRepository_RecordCustomToolExecution(t *testing.T) {
	executedAt := time.Date(2026, 1, 24, 12, 0, 0, 0, time.UTC)
	recordSQL := "UPDATE custom_tools SET execution_count = execution_count + 1, last_executed_at = $1 WHERE name = $2 AND owner_id = $3"

	tests := map[string]struct {
		expect  func(sqlmock.Sqlmock)
		wantErr error
	}{
		"recorded": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(recordSQL).WithArgs(executedAt, "sum", "owner-1").WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"tool-gone": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(recordSQL).WithArgs(executedAt, "sum", "owner-1").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.NewNotFoundErr("tool 'sum' not found"),
		},
		"database-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(recordSQL).WithArgs(executedAt, "sum", "owner-1").WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewCustomToolRepository(db)
			gotErr := repo.RecordCustomToolExecution(context.Background(), "owner-1", "sum", executedAt)
			assert.Equal(t, tt.wantErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitCustomToolRepository_Initialize(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() // nolint:errcheck
	depend.Register(db)

	i := InitCustomToolRepository{Store: StoreName}
	_, err = i.Initialize(context.Background())
	require.NoError(t, err)

	repo, err := depend.Resolve[domain.CustomToolRepository]()
	require.NoError(t, err)
	assert.IsType(t, CustomToolRepository{}, repo)
}
