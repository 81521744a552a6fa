package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"
)

// PostgresTurnoversRepository 客人登记记录Repository实现（misafir_kayitlari）
type PostgresTurnoversRepository struct {
	db *sql.DB
}

// NewPostgresTurnoversRepository 创建客人登记记录Repository
func NewPostgresTurnoversRepository(db *sql.DB) *PostgresTurnoversRepository {
	return &PostgresTurnoversRepository{db: db}
}

// 确保实现了接口
var _ TurnoverSource = (*PostgresTurnoversRepository)(nil)

// ListTurnovers 查询当日退房（cikis_tarihi = date）和入住（giris_tarihi = date）记录
// in_house 记录不参与冲突检测
func (r *PostgresTurnoversRepository) ListTurnovers(ctx context.Context, date time.Time, hotelID string) ([]domain.TurnoverRecord, error) {
	query := `
		SELECT
			mk.oda_id::text,
			COALESCE(k.otel_id::text, ''),
			mk.kayit_tipi::text,
			CASE WHEN mk.kayit_tipi = 'departure' THEN mk.cikis_tarihi ELSE mk.giris_tarihi END,
			to_char(CASE WHEN mk.kayit_tipi = 'departure' THEN mk.cikis_saati ELSE mk.giris_saati END, 'HH24:MI')
		FROM misafir_kayitlari mk
		LEFT JOIN odalar o ON o.id = mk.oda_id
		LEFT JOIN katlar k ON k.id = o.kat_id
		WHERE ((mk.kayit_tipi = 'departure' AND mk.cikis_tarihi = $1)
		    OR (mk.kayit_tipi = 'arrival' AND mk.giris_tarihi = $1))
	`
	args := []any{date.Format(dateLayout)}
	if hotelID != "" {
		query += " AND k.otel_id::text = $2"
		args = append(args, hotelID)
	}
	query += " ORDER BY mk.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list turnovers: %w", err)
	}
	defer rows.Close()

	records := []domain.TurnoverRecord{}
	for rows.Next() {
		var (
			rec  domain.TurnoverRecord
			kind string
			at   sql.NullString
		)
		if err := rows.Scan(&rec.RoomID, &rec.HotelID, &kind, &rec.Date, &at); err != nil {
			return nil, fmt.Errorf("failed to scan turnover: %w", err)
		}
		rec.Kind = domain.TurnoverKind(kind)
		if rec.Time, err = parseNullTime(at); err != nil {
			return nil, fmt.Errorf("turnover for room %s: invalid time: %w", rec.RoomID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate turnovers: %w", err)
	}
	return records, nil
}
