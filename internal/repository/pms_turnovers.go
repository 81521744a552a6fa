package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// pmsTurnover PMS 返回的单条登记记录
type pmsTurnover struct {
	RoomID  string `json:"room_id"`
	HotelID string `json:"hotel_id"`
	Kind    string `json:"kind"`
	Time    string `json:"time"` // HH:MM，可为空
}

// pmsTurnoversResponse PMS API 响应
type pmsTurnoversResponse struct {
	Status  int           `json:"status"`
	Msg     string        `json:"msg"`
	Records []pmsTurnover `json:"records"`
}

// PMSTurnoverSource 从外部前台系统（PMS）读取当日入住/退房记录
type PMSTurnoverSource struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

var _ TurnoverSource = (*PMSTurnoverSource)(nil)

// NewPMSTurnoverSource 创建 PMS 客户端
func NewPMSTurnoverSource(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *PMSTurnoverSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetHeader("X-API-Key", apiKey)
	}

	return &PMSTurnoverSource{
		httpClient: client,
		logger:     logger,
	}
}

// ListTurnovers GET /api/v1/turnovers?date=YYYY-MM-DD[&hotel_id=]
// 只保留 departure / arrival 记录，时间格式错误的记录视为无时间
func (s *PMSTurnoverSource) ListTurnovers(ctx context.Context, date time.Time, hotelID string) ([]domain.TurnoverRecord, error) {
	day := date.Format(dateLayout)
	req := s.httpClient.R().
		SetContext(ctx).
		SetQueryParam("date", day)
	if hotelID != "" {
		req.SetQueryParam("hotel_id", hotelID)
	}

	var response pmsTurnoversResponse
	resp, err := req.SetResult(&response).Get("/api/v1/turnovers")
	if err != nil {
		s.logger.Error("PMS API call failed", zap.Error(err), zap.String("date", day))
		return nil, fmt.Errorf("failed to call PMS API: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("PMS API returned HTTP %d", resp.StatusCode())
	}
	if response.Status != 0 {
		return nil, fmt.Errorf("PMS API error: %s (status: %d)", response.Msg, response.Status)
	}

	records := make([]domain.TurnoverRecord, 0, len(response.Records))
	for _, r := range response.Records {
		kind := domain.TurnoverKind(r.Kind)
		if kind != domain.TurnoverDeparture && kind != domain.TurnoverArrival {
			continue
		}
		rec := domain.TurnoverRecord{
			RoomID:  r.RoomID,
			HotelID: r.HotelID,
			Date:    date,
			Kind:    kind,
		}
		if r.Time != "" {
			t, err := domain.ParseTimeOfDay(r.Time)
			if err != nil {
				s.logger.Warn("Ignoring invalid PMS turnover time",
					zap.String("room_id", r.RoomID),
					zap.String("time", r.Time),
				)
			} else {
				rec.Time = &t
			}
		}
		records = append(records, rec)
	}

	s.logger.Debug("Loaded turnovers from PMS", zap.String("date", day), zap.Int("count", len(records)))
	return records, nil
}
