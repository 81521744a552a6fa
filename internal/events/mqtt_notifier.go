package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/priority"

	"go.uber.org/zap"
)

// MessagePublisher MQTT 发布接口（common/mqtt.Client 实现）
type MessagePublisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// MQTTBriefingNotifier 通过 MQTT 推送简报到 <prefix>/<staff_id>/briefing
type MQTTBriefingNotifier struct {
	client      MessagePublisher
	topicPrefix string
	qos         byte
	logger      *zap.Logger
}

var _ BriefingNotifier = (*MQTTBriefingNotifier)(nil)

func NewMQTTBriefingNotifier(client MessagePublisher, topicPrefix string, qos byte, logger *zap.Logger) *MQTTBriefingNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MQTTBriefingNotifier{
		client:      client,
		topicPrefix: topicPrefix,
		qos:         qos,
		logger:      logger,
	}
}

// BriefingTopic 检查员简报主题
func BriefingTopic(prefix, staffID string) string {
	return fmt.Sprintf("%s/%s/briefing", prefix, staffID)
}

func (n *MQTTBriefingNotifier) NotifyBriefing(_ context.Context, plan *priority.Plan) error {
	if plan == nil {
		return errors.New("plan is nil")
	}
	if !plan.Success || plan.StaffID == "" {
		return nil
	}

	payload, err := json.Marshal(NewPlanEvent(plan, true))
	if err != nil {
		return fmt.Errorf("failed to marshal briefing: %w", err)
	}

	topic := BriefingTopic(n.topicPrefix, plan.StaffID)
	if err := n.client.Publish(topic, n.qos, false, payload); err != nil {
		return err
	}

	n.logger.Debug("Briefing pushed", zap.String("topic", topic), zap.String("plan_id", plan.PlanID))
	return nil
}
