package priority

import (
	"fmt"
	"math"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"
)

const (
	// ArrivalPrepMinutes 房间需在客人到达前 15 分钟准备好
	ArrivalPrepMinutes = 15
	// DepartureInspectMinutes 退房后最迟 60 分钟内检查
	DepartureInspectMinutes = 60
	// DNDRecheckMinutes 勿扰后 2 小时再次检查
	DNDRecheckMinutes = 120
)

// PrioritizedTask 单个任务的优先级视图（每次规划重新计算，不持久化）
type PrioritizedTask struct {
	TaskID      string `json:"task_id"`
	RoomID      string `json:"room_id"`
	RoomLabel   string `json:"room_label"`
	FloorID     string `json:"floor_id"`
	FloorNumber int    `json:"floor_number"`
	FloorLabel  string `json:"floor_label"`

	Category      domain.TaskCategory `json:"category"`
	State         domain.TaskState    `json:"state"`
	ArrivalTime   *domain.TimeOfDay   `json:"arrival_time,omitempty"`
	DepartureTime *domain.TimeOfDay   `json:"departure_time,omitempty"`
	DNDCount      int                 `json:"dnd_count"`

	Tier Tier `json:"tier"`
	Rank int  `json:"rank"`

	// Deadline 最迟处理时间；RemainingMinutes 为负表示已超时
	Deadline         *time.Time `json:"deadline,omitempty"`
	RemainingMinutes *int       `json:"remaining_minutes,omitempty"`
	Reason           string     `json:"reason"`

	// Conflict 仅 TURNOVER_CONFLICT 档位有值
	Conflict *Conflict `json:"conflict,omitempty"`
}

// Classify 按规则顺序为任务分档，命中第一条即返回：
//  1. 房间有同日退房+入住冲突
//  2. 勿扰待复查
//  3. 到达检查（有到达时间）
//  4. 离店检查（有离店时间）
//  5. 其余（在住检查，或缺少应有的时间字段）
//
// date 为规划日期，loc 为酒店所在时区，now 由调用方提供
func Classify(task domain.Task, conflicts map[string]Conflict, now, date time.Time, loc *time.Location) PrioritizedTask {
	if loc == nil {
		loc = time.UTC
	}

	pt := PrioritizedTask{
		TaskID:        task.TaskID,
		RoomID:        task.RoomID,
		Category:      task.Category,
		State:         task.State,
		ArrivalTime:   task.ArrivalTime,
		DepartureTime: task.DepartureTime,
		DNDCount:      task.DNDCount,
	}
	if task.Room != nil {
		pt.RoomLabel = task.Room.RoomLabel
		pt.FloorID = task.Room.FloorID
		pt.FloorNumber = task.Room.FloorNumber
		pt.FloorLabel = task.Room.FloorLabel
		if pt.FloorLabel == "" {
			pt.FloorLabel = fmt.Sprintf("Floor %d", pt.FloorNumber)
		}
	}

	if c, ok := conflicts[task.RoomID]; ok {
		conflict := c
		pt.Tier = TierTurnoverConflict
		pt.Conflict = &conflict
		pt.setDeadline(c.DepartureTime.On(date, loc), now)
		pt.Reason = fmt.Sprintf("Turnover conflict! Departure %s, arrival %s (%d min gap)",
			c.DepartureTime, c.ArrivalTime, c.GapMinutes)
		return pt
	}

	if task.State == domain.TaskStateDNDPending && task.LastDNDAt != nil {
		recheck := task.LastDNDAt.Add(DNDRecheckMinutes * time.Minute)
		pt.Tier = TierDNDRecheck
		pt.setDeadline(recheck, now)
		pt.Reason = fmt.Sprintf("DND (%dx) - recheck at %s", task.DNDCount, recheck.In(loc).Format("15:04"))
		return pt
	}

	if task.Category == domain.TaskCategoryArrival && task.ArrivalTime != nil {
		pt.Tier = TierArrival
		pt.setDeadline(task.ArrivalTime.On(date, loc).Add(-ArrivalPrepMinutes*time.Minute), now)
		pt.Reason = fmt.Sprintf("Arrival at %s (ready %d min before)", task.ArrivalTime, ArrivalPrepMinutes)
		return pt
	}

	if task.Category == domain.TaskCategoryDeparture && task.DepartureTime != nil {
		pt.Tier = TierDeparture
		pt.setDeadline(task.DepartureTime.On(date, loc).Add(DepartureInspectMinutes*time.Minute), now)
		pt.Reason = fmt.Sprintf("Departure at %s (inspect within %d min)", task.DepartureTime, DepartureInspectMinutes)
		return pt
	}

	pt.Tier = TierInHouse
	if task.Category == domain.TaskCategoryInHouse {
		pt.Reason = "In-house daily check"
	} else {
		pt.Reason = "Inspection task"
	}
	return pt
}

// setDeadline 剩余分钟向下取整（超时不足一分钟也记为 -1），不做下限截断
func (pt *PrioritizedTask) setDeadline(deadline, now time.Time) {
	remaining := int(math.Floor(deadline.Sub(now).Minutes()))
	pt.Deadline = &deadline
	pt.RemainingMinutes = &remaining
}

// Overdue 是否已超过最迟处理时间
func (pt PrioritizedTask) Overdue() bool {
	return pt.RemainingMinutes != nil && *pt.RemainingMinutes < 0
}
