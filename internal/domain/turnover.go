package domain

import "time"

// TurnoverKind 客房登记记录类型
type TurnoverKind string

const (
	TurnoverDeparture TurnoverKind = "departure"
	TurnoverArrival   TurnoverKind = "arrival"
)

// TurnoverRecord 客人登记事实（对应 misafir_kayitlari，由客人登记模块维护，只读）
// departure 记录携带退房时刻，arrival 记录携带入住时刻
type TurnoverRecord struct {
	RoomID  string       `db:"room_id" json:"room_id"`
	HotelID string       `db:"hotel_id" json:"hotel_id,omitempty"`
	Date    time.Time    `db:"date" json:"date"`
	Kind    TurnoverKind `db:"kind" json:"kind"`
	Time    *TimeOfDay   `db:"time" json:"time,omitempty"`
}
