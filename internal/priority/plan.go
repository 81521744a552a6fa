package priority

import (
	"errors"
	"fmt"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"

	"go.uber.org/zap"
)

// DateLayout 规划日期的文本格式
const DateLayout = "2006-01-02"

// Snapshot 一次规划的只读输入
type Snapshot struct {
	Tasks     []domain.Task
	Turnovers []domain.TurnoverRecord
}

// PlanOptions 规划参数；Now 和 Location 必须由调用方提供，引擎不读取系统时钟
type PlanOptions struct {
	StaffID  string
	HotelID  string
	Date     time.Time
	Now      time.Time
	Location *time.Location
}

// Summary 计划汇总
type Summary struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Normal   int `json:"normal"`
	// ConflictCount 当日检测到的冲突房间数（不限于本人任务）
	ConflictCount int `json:"conflict_count"`
	// Skipped 房间/楼层无法解析而跳过的任务数
	Skipped int `json:"skipped"`
}

// Plan 一次规划的完整结果
// Success 为 false 时只有 Error 有意义，不返回部分结果
type Plan struct {
	PlanID  string `json:"plan_id,omitempty"`
	StaffID string `json:"staff_id"`
	HotelID string `json:"hotel_id,omitempty"`
	Date    string `json:"date"`

	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	Tasks          []PrioritizedTask `json:"tasks"`
	Floors         []FloorGroup      `json:"floors"`
	Summary        Summary           `json:"summary"`
	StartingPoint  *StartingPoint    `json:"starting_point"`
	Briefing       string            `json:"briefing"`
	SkippedTaskIDs []string          `json:"skipped_task_ids,omitempty"`
	ComputedAt     time.Time         `json:"computed_at"`
}

// FailedPlan 构造失败结果
func FailedPlan(opts PlanOptions, err error) *Plan {
	p := &Plan{
		StaffID:    opts.StaffID,
		HotelID:    opts.HotelID,
		Success:    false,
		Error:      fmt.Sprintf("failed to build priority plan: %v", err),
		ComputedAt: opts.Now,
	}
	if !opts.Date.IsZero() {
		p.Date = opts.Date.Format(DateLayout)
	}
	return p
}

// FloorTasks 返回指定楼层的任务（保持 rank 顺序）
func (p *Plan) FloorTasks(floorID string) []PrioritizedTask {
	out := []PrioritizedTask{}
	for _, t := range p.Tasks {
		if t.FloorID == floorID {
			out = append(out, t)
		}
	}
	return out
}

// Planner 任务优先级规划器
// 无内部可变状态，可被多个 goroutine 并发使用
type Planner struct {
	logger *zap.Logger
}

// NewPlanner 创建 Planner
func NewPlanner(logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{logger: logger}
}

// BuildPlan 根据快照计算当日计划
//
// 计划只反映传入快照的状态：如果调用方在读取快照的同时把任务标记为完成，
// 计划里仍可能出现该任务，这是预期的快照滞后，不是错误。
// 所有错误（包括意外 panic）都转换为失败的 Plan，不向调用方抛出。
func (p *Planner) BuildPlan(snapshot Snapshot, opts PlanOptions) (plan *Plan) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Priority plan computation panicked",
				zap.String("staff_id", opts.StaffID),
				zap.Any("panic", r),
			)
			plan = FailedPlan(opts, fmt.Errorf("unexpected error: %v", r))
		}
	}()

	if opts.Now.IsZero() {
		return FailedPlan(opts, errors.New("current time is required"))
	}
	if opts.Date.IsZero() {
		return FailedPlan(opts, errors.New("plan date is required"))
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	conflicts := DetectConflicts(snapshot.Turnovers, opts.Date)

	tasks := make([]PrioritizedTask, 0, len(snapshot.Tasks))
	var skipped []string
	for _, task := range snapshot.Tasks {
		if task.State == domain.TaskStateCompleted {
			continue
		}
		if task.Room == nil {
			p.logger.Warn("Skipping task with unresolvable room or floor",
				zap.String("task_id", task.TaskID),
				zap.String("room_id", task.RoomID),
				zap.String("staff_id", opts.StaffID),
			)
			skipped = append(skipped, task.TaskID)
			continue
		}
		tasks = append(tasks, Classify(task, conflicts, opts.Now, opts.Date, loc))
	}

	SortTasks(tasks)
	floors := GroupByFloor(tasks)
	start := AdviseStartingPoint(tasks)

	summary := Summary{
		Total:         len(tasks),
		ConflictCount: len(conflicts),
		Skipped:       len(skipped),
	}
	for _, t := range tasks {
		if t.Tier.IsCritical() {
			summary.Critical++
		}
	}
	summary.Normal = summary.Total - summary.Critical

	p.logger.Debug("Priority plan computed",
		zap.String("staff_id", opts.StaffID),
		zap.Int("total", summary.Total),
		zap.Int("critical", summary.Critical),
		zap.Int("conflicts", summary.ConflictCount),
		zap.Int("skipped", summary.Skipped),
	)

	return &Plan{
		StaffID:        opts.StaffID,
		HotelID:        opts.HotelID,
		Date:           opts.Date.Format(DateLayout),
		Success:        true,
		Tasks:          tasks,
		Floors:         floors,
		Summary:        summary,
		StartingPoint:  start,
		Briefing:       GenerateBriefing(tasks, floors, start),
		SkippedTaskIDs: skipped,
		ComputedAt:     opts.Now,
	}
}
