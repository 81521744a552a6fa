package priority

import (
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"
)

const (
	// CriticalGapMinutes 退房与入住间隔小于 3 小时视为紧急
	CriticalGapMinutes = 180
)

var (
	defaultDepartureTime = domain.MustTimeOfDay(12, 0)
	defaultArrivalTime   = domain.MustTimeOfDay(14, 0)
)

// Conflict 同一房间同日退房+入住（turnover collision）
type Conflict struct {
	RoomID        string           `json:"room_id"`
	DepartureTime domain.TimeOfDay `json:"departure_time"`
	ArrivalTime   domain.TimeOfDay `json:"arrival_time"`
	// GapMinutes 入住减退房的分钟数，入住早于退房时为负
	GapMinutes int  `json:"gap_minutes"`
	Critical   bool `json:"critical"`
}

// DetectConflicts 找出 date 当天同时有退房和入住记录的房间
// 其他日期的记录被忽略；同一房间同类记录有多条时以最后一条为准
func DetectConflicts(records []domain.TurnoverRecord, date time.Time) map[string]Conflict {
	departures := make(map[string]domain.TurnoverRecord)
	arrivals := make(map[string]domain.TurnoverRecord)

	for _, rec := range records {
		if !sameDay(rec.Date, date) {
			continue
		}
		switch rec.Kind {
		case domain.TurnoverDeparture:
			departures[rec.RoomID] = rec
		case domain.TurnoverArrival:
			arrivals[rec.RoomID] = rec
		}
	}

	conflicts := make(map[string]Conflict)
	for roomID, dep := range departures {
		arr, ok := arrivals[roomID]
		if !ok {
			continue
		}

		depTime := defaultDepartureTime
		if dep.Time != nil {
			depTime = *dep.Time
		}
		arrTime := defaultArrivalTime
		if arr.Time != nil {
			arrTime = *arr.Time
		}

		gap := arrTime.MinutesOfDay() - depTime.MinutesOfDay()
		conflicts[roomID] = Conflict{
			RoomID:        roomID,
			DepartureTime: depTime,
			ArrivalTime:   arrTime,
			GapMinutes:    gap,
			Critical:      gap < CriticalGapMinutes,
		}
	}

	return conflicts
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
