package domain

// Floor 楼层（对应 katlar 表）
type Floor struct {
	FloorID string `db:"floor_id" json:"floor_id"`
	HotelID string `db:"hotel_id" json:"hotel_id"`
	Number  int    `db:"number" json:"number"`
	Label   string `db:"label" json:"label"`
}
