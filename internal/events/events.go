package events

import (
	"context"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/priority"
)

// PlanPublisher 计划计算完成后发布摘要事件
type PlanPublisher interface {
	PublishPlan(ctx context.Context, plan *priority.Plan) error
}

// BriefingNotifier 向检查员手持终端推送简报
type BriefingNotifier interface {
	NotifyBriefing(ctx context.Context, plan *priority.Plan) error
}

// PlanEvent 发布到 Redis Stream / MQTT 的计划摘要
type PlanEvent struct {
	PlanID        string                  `json:"plan_id"`
	StaffID       string                  `json:"staff_id"`
	HotelID       string                  `json:"hotel_id,omitempty"`
	Date          string                  `json:"date"`
	Summary       priority.Summary        `json:"summary"`
	StartingPoint *priority.StartingPoint `json:"starting_point,omitempty"`
	Briefing      string                  `json:"briefing,omitempty"`
	ComputedAt    time.Time               `json:"computed_at"`
}

// NewPlanEvent 从计划构造事件；withBriefing 为 false 时不带简报文本
func NewPlanEvent(plan *priority.Plan, withBriefing bool) PlanEvent {
	ev := PlanEvent{
		PlanID:        plan.PlanID,
		StaffID:       plan.StaffID,
		HotelID:       plan.HotelID,
		Date:          plan.Date,
		Summary:       plan.Summary,
		StartingPoint: plan.StartingPoint,
		ComputedAt:    plan.ComputedAt,
	}
	if withBriefing {
		ev.Briefing = plan.Briefing
	}
	return ev
}

// NoopPublisher Redis 未启用时使用
type NoopPublisher struct{}

func (NoopPublisher) PublishPlan(context.Context, *priority.Plan) error { return nil }

// NoopNotifier MQTT 未启用时使用
type NoopNotifier struct{}

func (NoopNotifier) NotifyBriefing(context.Context, *priority.Plan) error { return nil }
