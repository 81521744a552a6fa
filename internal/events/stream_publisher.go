package events

import (
	"context"
	"errors"
	"fmt"

	commonredis "github.com/Optimus825482/minibartakip2cool-sub001/internal/common/redis"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/priority"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type publishJSONFunc func(ctx context.Context, client *redis.Client, stream string, data interface{}, timestamp int64) (string, error)

// StreamPlanPublisher 把计划摘要写入 Redis Stream，供报表/看板消费
type StreamPlanPublisher struct {
	client  *redis.Client
	stream  string
	logger  *zap.Logger
	publish publishJSONFunc
}

var _ PlanPublisher = (*StreamPlanPublisher)(nil)

func NewStreamPlanPublisher(client *redis.Client, stream string, logger *zap.Logger) *StreamPlanPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreamPlanPublisher{
		client:  client,
		stream:  stream,
		logger:  logger,
		publish: commonredis.PublishJSONToStream,
	}
}

// PublishPlan 只发布成功的计划
func (p *StreamPlanPublisher) PublishPlan(ctx context.Context, plan *priority.Plan) error {
	if plan == nil {
		return errors.New("plan is nil")
	}
	if !plan.Success {
		return nil
	}

	id, err := p.publish(ctx, p.client, p.stream, NewPlanEvent(plan, false), plan.ComputedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to publish plan to stream %s: %w", p.stream, err)
	}

	p.logger.Debug("Published plan event",
		zap.String("stream", p.stream),
		zap.String("message_id", id),
		zap.String("plan_id", plan.PlanID),
	)
	return nil
}
