package domain

import "time"

// TaskCategory 检查任务类别
type TaskCategory string

const (
	TaskCategoryArrival   TaskCategory = "arrival-check"
	TaskCategoryDeparture TaskCategory = "departure-check"
	TaskCategoryInHouse   TaskCategory = "in-house-check"
)

// TaskState 任务状态（状态流转由任务管理模块负责，规划引擎只读）
// pending -> dnd-pending -> pending (re-check) -> completed
type TaskState string

const (
	TaskStatePending    TaskState = "pending"
	TaskStateDNDPending TaskState = "dnd-pending"
	TaskStateCompleted  TaskState = "completed"
)

// RoomLocation 房间所在楼层信息（由 rooms/floors 关联得到）
type RoomLocation struct {
	RoomLabel   string `json:"room_label"`
	FloorID     string `json:"floor_id"`
	FloorNumber int    `json:"floor_number"`
	FloorLabel  string `json:"floor_label"`
}

// Task 检查员当日的单个房间检查任务（对应 gorev_detaylari + gunluk_gorevler）
type Task struct {
	// 主键
	TaskID string `db:"task_id" json:"task_id"`

	// 执行人和酒店
	StaffID string `db:"staff_id" json:"staff_id"`
	HotelID string `db:"hotel_id" json:"hotel_id,omitempty"`

	// 房间引用；Room 为 nil 表示房间或楼层无法解析
	RoomID string        `db:"room_id" json:"room_id"`
	Room   *RoomLocation `json:"room,omitempty"`

	Category TaskCategory `db:"category" json:"category"`
	State    TaskState    `db:"state" json:"state"`

	// 仅 arrival-check 有到达时间，仅 departure-check 有离店时间
	ArrivalTime   *TimeOfDay `db:"arrival_time" json:"arrival_time,omitempty"`
	DepartureTime *TimeOfDay `db:"departure_time" json:"departure_time,omitempty"`

	// 勿扰（DND）复查
	DNDCount  int        `db:"dnd_count" json:"dnd_count"`
	LastDNDAt *time.Time `db:"last_dnd_at" json:"last_dnd_at,omitempty"`
}
