package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/events"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/priority"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/repository"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrPlanNotCached 没有缓存的计划（未计算过或已过期）
var ErrPlanNotCached = errors.New("no cached plan")

// Clock 当前时间来源，测试时可替换
type Clock func() time.Time

// PlanService 检查员每日任务优先级计划服务接口
type PlanService interface {
	// GetPlan 计算检查员当日计划；任何失败都以 Success=false 的计划返回
	GetPlan(ctx context.Context, req GetPlanRequest) *priority.Plan

	// PreviewPlan 与 GetPlan 计算相同，但不缓存、不发布事件、不推送简报（导出等只读场景）
	PreviewPlan(ctx context.Context, req GetPlanRequest) *priority.Plan

	// GetFloorPlan 计算计划并只返回指定楼层的任务
	GetFloorPlan(ctx context.Context, req GetFloorPlanRequest) *GetFloorPlanResponse

	// GetLastPlan 读取最近一次计算并缓存的计划（打印/导出使用）
	GetLastPlan(ctx context.Context, staffID string, date time.Time) (*priority.Plan, error)
}

// PlanServiceOptions 服务参数
type PlanServiceOptions struct {
	Location *time.Location // 酒店时区，nil 为 UTC
	CacheTTL time.Duration  // 最近计划的缓存时间，<=0 不缓存
	Clock    Clock          // nil 使用 time.Now
}

// planService 计划服务实现
type planService struct {
	tasks     repository.TaskSource
	turnovers repository.TurnoverSource
	floors    repository.FloorsRepository
	kv        store.KV // 可为 nil
	publisher events.PlanPublisher
	notifier  events.BriefingNotifier
	planner   *priority.Planner
	opts      PlanServiceOptions
	logger    *zap.Logger
}

// NewPlanService 创建计划服务
func NewPlanService(
	tasks repository.TaskSource,
	turnovers repository.TurnoverSource,
	floors repository.FloorsRepository,
	kv store.KV,
	publisher events.PlanPublisher,
	notifier events.BriefingNotifier,
	opts PlanServiceOptions,
	logger *zap.Logger,
) PlanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if notifier == nil {
		notifier = events.NoopNotifier{}
	}
	return &planService{
		tasks:     tasks,
		turnovers: turnovers,
		floors:    floors,
		kv:        kv,
		publisher: publisher,
		notifier:  notifier,
		planner:   priority.NewPlanner(logger),
		opts:      opts,
		logger:    logger,
	}
}

// GetPlanRequest 计算计划请求
type GetPlanRequest struct {
	StaffID string
	HotelID string    // 可选：限定冲突检测的酒店
	Date    time.Time // 只使用年月日
}

// GetFloorPlanRequest 单楼层计划请求
type GetFloorPlanRequest struct {
	StaffID string
	FloorID string
	Date    time.Time
}

// GetFloorPlanResponse 单楼层计划响应
type GetFloorPlanResponse struct {
	Success     bool                       `json:"success"`
	Error       string                     `json:"error,omitempty"`
	PlanID      string                     `json:"plan_id,omitempty"`
	FloorID     string                     `json:"floor_id"`
	FloorNumber int                        `json:"floor_number"`
	FloorLabel  string                     `json:"floor_label"`
	Tasks       []priority.PrioritizedTask `json:"tasks"`
	Total       int                        `json:"total"`
	Critical    int                        `json:"critical"`
}

// GetPlan 计算检查员当日计划，成功后缓存、发布并推送简报
func (s *planService) GetPlan(ctx context.Context, req GetPlanRequest) *priority.Plan {
	plan := s.computePlan(ctx, req)
	if !plan.Success {
		return plan
	}

	// 缓存、发布、推送（失败只记录日志）
	s.afterPlan(ctx, plan)

	s.logger.Info("Priority plan computed",
		zap.String("plan_id", plan.PlanID),
		zap.String("staff_id", plan.StaffID),
		zap.String("date", plan.Date),
		zap.Int("total", plan.Summary.Total),
		zap.Int("critical", plan.Summary.Critical),
	)
	return plan
}

// PreviewPlan 只计算，不产生副作用
func (s *planService) PreviewPlan(ctx context.Context, req GetPlanRequest) *priority.Plan {
	return s.computePlan(ctx, req)
}

// computePlan 校验参数、读取快照、计算并分配 PlanID
func (s *planService) computePlan(ctx context.Context, req GetPlanRequest) (plan *priority.Plan) {
	loc := s.opts.Location
	opts := priority.PlanOptions{
		StaffID:  req.StaffID,
		HotelID:  req.HotelID,
		Now:      s.opts.Clock().In(loc),
		Location: loc,
	}
	if !req.Date.IsZero() {
		y, m, d := req.Date.Date()
		opts.Date = time.Date(y, m, d, 0, 0, 0, 0, loc)
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Plan service panicked", zap.String("staff_id", req.StaffID), zap.Any("panic", r))
			plan = priority.FailedPlan(opts, fmt.Errorf("unexpected error: %v", r))
		}
	}()

	// 1. 参数校验
	if req.StaffID == "" {
		return priority.FailedPlan(opts, errors.New("staff_id is required"))
	}
	if opts.Date.IsZero() {
		return priority.FailedPlan(opts, errors.New("date is required"))
	}

	// 2. 读取快照
	tasks, err := s.tasks.ListTasks(ctx, req.StaffID, opts.Date, req.HotelID)
	if err != nil {
		s.logger.Error("Failed to load tasks", zap.String("staff_id", req.StaffID), zap.Error(err))
		return priority.FailedPlan(opts, fmt.Errorf("failed to load tasks: %w", err))
	}
	turnovers, err := s.turnovers.ListTurnovers(ctx, opts.Date, req.HotelID)
	if err != nil {
		s.logger.Error("Failed to load turnovers", zap.String("staff_id", req.StaffID), zap.Error(err))
		return priority.FailedPlan(opts, fmt.Errorf("failed to load turnovers: %w", err))
	}

	// 3. 计算
	plan = s.planner.BuildPlan(priority.Snapshot{Tasks: tasks, Turnovers: turnovers}, opts)
	if plan.Success {
		plan.PlanID = uuid.NewString()
	}
	return plan
}

func (s *planService) afterPlan(ctx context.Context, plan *priority.Plan) {
	if s.kv != nil && s.opts.CacheTTL > 0 {
		if data, err := json.Marshal(plan); err != nil {
			s.logger.Warn("Failed to marshal plan for cache", zap.Error(err))
		} else if err := s.kv.Set(ctx, store.PlanKey(plan.StaffID, plan.Date), string(data), s.opts.CacheTTL); err != nil {
			s.logger.Warn("Failed to cache plan", zap.String("plan_id", plan.PlanID), zap.Error(err))
		}
	}
	if err := s.publisher.PublishPlan(ctx, plan); err != nil {
		s.logger.Warn("Failed to publish plan event", zap.String("plan_id", plan.PlanID), zap.Error(err))
	}
	if err := s.notifier.NotifyBriefing(ctx, plan); err != nil {
		s.logger.Warn("Failed to push briefing", zap.String("plan_id", plan.PlanID), zap.Error(err))
	}
}

// GetFloorPlan 单楼层计划：先解析楼层所属酒店，再按酒店计算完整计划并过滤。
// 只读：不覆盖 GetLastPlan 的缓存，不发布事件，不推送简报
func (s *planService) GetFloorPlan(ctx context.Context, req GetFloorPlanRequest) *GetFloorPlanResponse {
	resp := &GetFloorPlanResponse{FloorID: req.FloorID, Tasks: []priority.PrioritizedTask{}}

	if req.FloorID == "" {
		resp.Error = "floor_id is required"
		return resp
	}
	floor, err := s.floors.GetFloor(ctx, req.FloorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resp.Error = "floor not found"
		} else {
			s.logger.Error("Failed to load floor", zap.String("floor_id", req.FloorID), zap.Error(err))
			resp.Error = fmt.Sprintf("failed to load floor: %v", err)
		}
		return resp
	}
	resp.FloorNumber = floor.Number
	resp.FloorLabel = floor.Label

	plan := s.computePlan(ctx, GetPlanRequest{StaffID: req.StaffID, HotelID: floor.HotelID, Date: req.Date})
	if !plan.Success {
		resp.Error = plan.Error
		return resp
	}

	resp.Success = true
	resp.PlanID = plan.PlanID
	resp.Tasks = plan.FloorTasks(floor.FloorID)
	resp.Total = len(resp.Tasks)
	for _, t := range resp.Tasks {
		if t.Tier.IsCritical() {
			resp.Critical++
		}
	}
	return resp
}

// GetLastPlan 读取缓存的计划
func (s *planService) GetLastPlan(ctx context.Context, staffID string, date time.Time) (*priority.Plan, error) {
	if staffID == "" {
		return nil, errors.New("staff_id is required")
	}
	if s.kv == nil {
		return nil, ErrPlanNotCached
	}

	raw, err := s.kv.Get(ctx, store.PlanKey(staffID, date.Format(priority.DateLayout)))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return nil, ErrPlanNotCached
		}
		return nil, fmt.Errorf("failed to read cached plan: %w", err)
	}

	var plan priority.Plan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("failed to decode cached plan: %w", err)
	}
	return &plan, nil
}
