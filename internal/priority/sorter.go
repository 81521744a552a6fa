package priority

import (
	"cmp"
	"math"
	"slices"
)

// SortTasks 原地排序并分配 rank（1 开始）
// 比较顺序：档位 → 剩余分钟（无截止时间视为 +∞）→ 楼层号 → 房间号 → 任务 ID
func SortTasks(tasks []PrioritizedTask) {
	slices.SortStableFunc(tasks, compareTasks)
	for i := range tasks {
		tasks[i].Rank = i + 1
	}
}

func compareTasks(a, b PrioritizedTask) int {
	if c := cmp.Compare(a.Tier.Ordinal(), b.Tier.Ordinal()); c != 0 {
		return c
	}
	if c := cmp.Compare(remainingKey(a), remainingKey(b)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.FloorNumber, b.FloorNumber); c != 0 {
		return c
	}
	if c := cmp.Compare(a.RoomLabel, b.RoomLabel); c != 0 {
		return c
	}
	return cmp.Compare(a.TaskID, b.TaskID)
}

func remainingKey(t PrioritizedTask) int {
	if t.RemainingMinutes == nil {
		return math.MaxInt
	}
	return *t.RemainingMinutes
}
