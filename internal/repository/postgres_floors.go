package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"
)

// PostgresFloorsRepository 楼层Repository实现（katlar）
type PostgresFloorsRepository struct {
	db *sql.DB
}

// NewPostgresFloorsRepository 创建楼层Repository
func NewPostgresFloorsRepository(db *sql.DB) *PostgresFloorsRepository {
	return &PostgresFloorsRepository{db: db}
}

// 确保实现了接口
var _ FloorsRepository = (*PostgresFloorsRepository)(nil)

// GetFloor 获取楼层
func (r *PostgresFloorsRepository) GetFloor(ctx context.Context, floorID string) (*domain.Floor, error) {
	if floorID == "" {
		return nil, fmt.Errorf("floor not found: %w", ErrNotFound)
	}

	query := `
		SELECT id::text, otel_id::text, kat_no, kat_adi
		FROM katlar
		WHERE id::text = $1
	`

	var floor domain.Floor
	var label sql.NullString
	err := r.db.QueryRowContext(ctx, query, floorID).Scan(
		&floor.FloorID,
		&floor.HotelID,
		&floor.Number,
		&label,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("floor %s not found: %w", floorID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get floor: %w", err)
	}
	floor.Label = label.String
	if floor.Label == "" {
		floor.Label = fmt.Sprintf("Floor %d", floor.Number)
	}
	return &floor, nil
}
