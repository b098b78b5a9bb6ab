package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// uniqueViolationCode is the Postgres SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

var customToolFields = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"code",
	"parameters",
	"active",
	"execution_count",
	"last_executed_at",
	"created_at",
	"updated_at",
}

// CustomToolRepository is a PostgreSQL implementation of domain.CustomToolRepository.
type CustomToolRepository struct {
	sb squirrel.StatementBuilderType
}

// NewCustomToolRepository creates a new instance of CustomToolRepository.
func NewCustomToolRepository(br squirrel.BaseRunner) CustomToolRepository {
	return CustomToolRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListCustomTools lists the owner's tools ordered by creation time.
func (r CustomToolRepository) ListCustomTools(ctx context.Context, ownerID string, activeOnly bool) ([]domain.CustomTool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner.id", ownerID),
		attribute.Bool("active_only", activeOnly),
	))
	defer span.End()

	where := squirrel.Eq{"owner_id": ownerID}
	if activeOnly {
		where["active"] = true
	}

	rows, err := r.sb.
		Select(customToolFields...).
		From("custom_tools").
		Where(where).
		OrderBy("created_at ASC", "name ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	tools := []domain.CustomTool{}
	for rows.Next() {
		var (
			tool       domain.CustomTool
			paramsJSON []byte
		)
		err := rows.Scan(
			&tool.ID,
			&tool.OwnerID,
			&tool.Name,
			&tool.Description,
			&tool.Code,
			&paramsJSON,
			&tool.Active,
			&tool.ExecutionCount,
			&tool.LastExecutedAt,
			&tool.CreatedAt,
			&tool.UpdatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		tool.Parameters = map[string]any{}
		if len(paramsJSON) > 0 {
			if err := json.Unmarshal(paramsJSON, &tool.Parameters); telemetry.RecordErrorAndStatus(span, err) {
				return nil, err
			}
		}
		tools = append(tools, tool)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	span.SetAttributes(attribute.Int("tools.count", len(tools)))
	return tools, nil
}

// CreateCustomTool inserts a tool. A unique violation on (owner_id, name) becomes a DuplicateNameErr.
func (r CustomToolRepository) CreateCustomTool(ctx context.Context, tool domain.CustomTool) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner.id", tool.OwnerID),
		attribute.String("tool.name", tool.Name),
	))
	defer span.End()

	params := tool.Parameters
	if params == nil {
		params = map[string]any{}
	}
	paramsJSON, err := json.Marshal(params)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = r.sb.
		Insert("custom_tools").
		Columns(customToolFields...).
		Values(
			tool.ID,
			tool.OwnerID,
			tool.Name,
			tool.Description,
			tool.Code,
			paramsJSON,
			tool.Active,
			tool.ExecutionCount,
			tool.LastExecutedAt,
			tool.CreatedAt,
			tool.UpdatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.NewDuplicateNameErr(fmt.Sprintf("tool '%s' already exists", tool.Name))
		}
		return err
	}

	return nil
}

// DeleteCustomTool deletes a tool by owner and name.
func (r CustomToolRepository) DeleteCustomTool(ctx context.Context, ownerID, name string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner.id", ownerID),
		attribute.String("tool.name", name),
	))
	defer span.End()

	res, err := r.sb.
		Delete("custom_tools").
		Where(squirrel.Eq{"owner_id": ownerID, "name": name}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return affected > 0, nil
}

// UpdateCustomToolActive toggles the active flag of a tool.
func (r CustomToolRepository) UpdateCustomToolActive(ctx context.Context, ownerID, name string, active bool, updatedAt time.Time) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner.id", ownerID),
		attribute.String("tool.name", name),
		attribute.Bool("tool.active", active),
	))
	defer span.End()

	res, err := r.sb.
		Update("custom_tools").
		Set("active", active).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"owner_id": ownerID, "name": name}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return affected > 0, nil
}

// RecordCustomToolExecution increments execution_count in a single statement.
func (r CustomToolRepository) RecordCustomToolExecution(ctx context.Context, ownerID, name string, executedAt time.Time) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner.id", ownerID),
		attribute.String("tool.name", name),
	))
	defer span.End()

	res, err := r.sb.
		Update("custom_tools").
		Set("execution_count", squirrel.Expr("execution_count + 1")).
		Set("last_executed_at", executedAt).
		Where(squirrel.Eq{"owner_id": ownerID, "name": name}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if affected == 0 {
		err := domain.NewNotFoundErr(fmt.Sprintf("tool '%s' not found", name))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// InitCustomToolRepository is a Symbiont initializer for CustomToolRepository.
// It only registers the repository when TOOL_STORE selects postgres.
type InitCustomToolRepository struct {
	Store string `config:"TOOL_STORE" default:"postgres"`
}

// Initialize registers the CustomToolRepository in the dependency container.
func (i InitCustomToolRepository) Initialize(ctx context.Context) (context.Context, error) {
	if i.Store != StoreName {
		return ctx, nil
	}
	db, err := depend.Resolve[*sql.DB]()
	if err != nil {
		return ctx, fmt.Errorf("failed to resolve database: %w", err)
	}
	depend.Register[domain.CustomToolRepository](NewCustomToolRepository(db))
	return ctx, nil
}
