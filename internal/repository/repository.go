package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("not found")

// TaskSource 检查员当日任务来源
type TaskSource interface {
	// ListTasks 返回 staffID 在 date 当日的所有检查任务（含已完成，由规划引擎过滤）
	// hotelID 为空表示不限酒店
	ListTasks(ctx context.Context, staffID string, date time.Time, hotelID string) ([]domain.Task, error)
}

// TurnoverSource 当日客人登记记录来源（departure / arrival）
type TurnoverSource interface {
	ListTurnovers(ctx context.Context, date time.Time, hotelID string) ([]domain.TurnoverRecord, error)
}

// FloorsRepository 楼层查询
type FloorsRepository interface {
	// GetFloor 不存在时返回包装了 ErrNotFound 的错误
	GetFloor(ctx context.Context, floorID string) (*domain.Floor, error)
}

const dateLayout = "2006-01-02"
