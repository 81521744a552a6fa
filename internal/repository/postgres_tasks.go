package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"
)

// PostgresTasksRepository 检查任务Repository实现（gunluk_gorevler + gorev_detaylari）
type PostgresTasksRepository struct {
	db *sql.DB
}

// NewPostgresTasksRepository 创建检查任务Repository
func NewPostgresTasksRepository(db *sql.DB) *PostgresTasksRepository {
	return &PostgresTasksRepository{db: db}
}

// 确保实现了接口
var _ TaskSource = (*PostgresTasksRepository)(nil)

// ListTasks 查询检查员当日的检查任务
// 只包含 *_kontrol 类型的任务；上传类任务（*_yukleme）不参与排序
// 房间或楼层无法关联时 Room 为 nil
func (r *PostgresTasksRepository) ListTasks(ctx context.Context, staffID string, date time.Time, hotelID string) ([]domain.Task, error) {
	if staffID == "" {
		return []domain.Task{}, nil
	}

	query := `
		SELECT
			gd.id::text,
			gg.personel_id::text,
			gg.otel_id::text,
			gd.oda_id::text,
			gg.gorev_tipi::text,
			gd.durum::text,
			to_char(gd.varis_saati, 'HH24:MI'),
			to_char(gd.cikis_saati, 'HH24:MI'),
			gd.dnd_sayisi,
			gd.son_dnd_zamani,
			o.oda_no,
			k.id::text,
			k.kat_no,
			k.kat_adi
		FROM gorev_detaylari gd
		JOIN gunluk_gorevler gg ON gg.id = gd.gorev_id
		LEFT JOIN odalar o ON o.id = gd.oda_id
		LEFT JOIN katlar k ON k.id = o.kat_id
		WHERE gg.personel_id::text = $1
		  AND gg.gorev_tarihi = $2
		  AND gg.gorev_tipi IN ('arrival_kontrol', 'departure_kontrol', 'inhouse_kontrol')
	`
	args := []any{staffID, date.Format(dateLayout)}
	if hotelID != "" {
		query += " AND gg.otel_id::text = $3"
		args = append(args, hotelID)
	}
	query += " ORDER BY gd.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var (
			task               domain.Task
			taskType, state    string
			arrival, departure sql.NullString
			lastDND            sql.NullTime
			roomNo, floorID    sql.NullString
			floorNo            sql.NullInt64
			floorLabel         sql.NullString
		)
		if err := rows.Scan(
			&task.TaskID,
			&task.StaffID,
			&task.HotelID,
			&task.RoomID,
			&taskType,
			&state,
			&arrival,
			&departure,
			&task.DNDCount,
			&lastDND,
			&roomNo,
			&floorID,
			&floorNo,
			&floorLabel,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}

		task.Category = mapTaskCategory(taskType)
		task.State = mapTaskState(state)
		if task.ArrivalTime, err = parseNullTime(arrival); err != nil {
			return nil, fmt.Errorf("task %s: invalid arrival time: %w", task.TaskID, err)
		}
		if task.DepartureTime, err = parseNullTime(departure); err != nil {
			return nil, fmt.Errorf("task %s: invalid departure time: %w", task.TaskID, err)
		}
		if lastDND.Valid {
			t := lastDND.Time
			task.LastDNDAt = &t
		}
		if roomNo.Valid && floorID.Valid && floorNo.Valid {
			task.Room = &domain.RoomLocation{
				RoomLabel:   roomNo.String,
				FloorID:     floorID.String,
				FloorNumber: int(floorNo.Int64),
				FloorLabel:  floorLabel.String,
			}
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// mapTaskCategory gorev_tipi -> TaskCategory
func mapTaskCategory(taskType string) domain.TaskCategory {
	switch taskType {
	case "arrival_kontrol":
		return domain.TaskCategoryArrival
	case "departure_kontrol":
		return domain.TaskCategoryDeparture
	default:
		return domain.TaskCategoryInHouse
	}
}

// mapTaskState durum -> TaskState
// in_progress / incomplete 仍视为待处理
func mapTaskState(state string) domain.TaskState {
	switch state {
	case "completed":
		return domain.TaskStateCompleted
	case "dnd_pending":
		return domain.TaskStateDNDPending
	default:
		return domain.TaskStatePending
	}
}

func parseNullTime(s sql.NullString) (*domain.TimeOfDay, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
