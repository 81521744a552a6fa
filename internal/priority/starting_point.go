package priority

// StartingPoint 推荐的起始房间（即 rank 1 的任务）
type StartingPoint struct {
	TaskID      string `json:"task_id"`
	FloorNumber int    `json:"floor_number"`
	FloorLabel  string `json:"floor_label"`
	RoomID      string `json:"room_id"`
	RoomLabel   string `json:"room_label"`
	Reason      string `json:"reason"`
}

// AdviseStartingPoint 取排序后的第一个任务；列表为空返回 nil
func AdviseStartingPoint(sorted []PrioritizedTask) *StartingPoint {
	if len(sorted) == 0 {
		return nil
	}
	top := sorted[0]
	return &StartingPoint{
		TaskID:      top.TaskID,
		FloorNumber: top.FloorNumber,
		FloorLabel:  top.FloorLabel,
		RoomID:      top.RoomID,
		RoomLabel:   top.RoomLabel,
		Reason:      top.Reason,
	}
}
