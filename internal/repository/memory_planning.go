package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"

	"github.com/google/uuid"
)

// MemoryPlanningRepo: 用于 DB 未就绪时的联测和单元测试
// - 任务按日期存放，登记记录按 Date 过滤
// - 未提供 ID 时使用 uuid
// - 同时实现 TaskSource / TurnoverSource / FloorsRepository
type MemoryPlanningRepo struct {
	mu sync.RWMutex

	tasks     map[string][]domain.Task // date -> tasks
	turnovers []domain.TurnoverRecord
	floors    map[string]domain.Floor // floorID -> floor
}

var (
	_ TaskSource       = (*MemoryPlanningRepo)(nil)
	_ TurnoverSource   = (*MemoryPlanningRepo)(nil)
	_ FloorsRepository = (*MemoryPlanningRepo)(nil)
)

func NewMemoryPlanningRepo() *MemoryPlanningRepo {
	return &MemoryPlanningRepo{
		tasks:  map[string][]domain.Task{},
		floors: map[string]domain.Floor{},
	}
}

// AddTask 添加任务，返回任务 ID
func (r *MemoryPlanningRepo) AddTask(date time.Time, task domain.Task) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.TaskID == "" {
		task.TaskID = uuid.NewString()
	}
	key := date.Format(dateLayout)
	r.tasks[key] = append(r.tasks[key], task)
	return task.TaskID
}

// AddTurnover 添加登记记录
func (r *MemoryPlanningRepo) AddTurnover(rec domain.TurnoverRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.turnovers = append(r.turnovers, rec)
}

// AddFloor 添加楼层，返回楼层 ID
func (r *MemoryPlanningRepo) AddFloor(floor domain.Floor) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if floor.FloorID == "" {
		floor.FloorID = uuid.NewString()
	}
	r.floors[floor.FloorID] = floor
	return floor.FloorID
}

func (r *MemoryPlanningRepo) ListTasks(_ context.Context, staffID string, date time.Time, hotelID string) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Task{}
	for _, t := range r.tasks[date.Format(dateLayout)] {
		if t.StaffID != staffID {
			continue
		}
		if hotelID != "" && t.HotelID != hotelID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *MemoryPlanningRepo) ListTurnovers(_ context.Context, date time.Time, hotelID string) ([]domain.TurnoverRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := date.Format(dateLayout)
	out := []domain.TurnoverRecord{}
	for _, rec := range r.turnovers {
		if rec.Date.Format(dateLayout) != day {
			continue
		}
		if hotelID != "" && rec.HotelID != hotelID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *MemoryPlanningRepo) GetFloor(_ context.Context, floorID string) (*domain.Floor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.floors[floorID]
	if !ok {
		return nil, fmt.Errorf("floor %s not found: %w", floorID, ErrNotFound)
	}
	return &f, nil
}
