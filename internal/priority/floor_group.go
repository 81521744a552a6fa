package priority

import (
	"cmp"
	"fmt"
	"slices"
)

// FloorGroup 同一楼层的任务（保持排序后的相对顺序）
type FloorGroup struct {
	FloorID       string            `json:"floor_id"`
	FloorNumber   int               `json:"floor_number"`
	FloorLabel    string            `json:"floor_label"`
	Tasks         []PrioritizedTask `json:"tasks"`
	TotalCount    int               `json:"total_count"`
	CriticalCount int               `json:"critical_count"`
	// FirstRank 本楼层最靠前的 rank，用于推荐楼层顺序
	FirstRank int `json:"first_rank"`
}

// floorKey 楼层号相同但 FloorID 不同（未限定酒店时的多酒店计划）分为不同组
type floorKey struct {
	number int
	id     string
}

// GroupByFloor 按 (楼层号, FloorID) 分组，楼层按楼层号、FloorID 升序（与任务顺序无关）。
// 每组的 Tasks 与 Plan.FloorTasks(FloorID) 一致。
// tasks 须已经过 SortTasks
func GroupByFloor(tasks []PrioritizedTask) []FloorGroup {
	buckets := make(map[floorKey][]PrioritizedTask)
	for _, t := range tasks {
		k := floorKey{number: t.FloorNumber, id: t.FloorID}
		buckets[k] = append(buckets[k], t)
	}

	keys := make([]floorKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b floorKey) int {
		if c := cmp.Compare(a.number, b.number); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	groups := make([]FloorGroup, 0, len(keys))
	for _, k := range keys {
		floorTasks := buckets[k]
		first := floorTasks[0]

		g := FloorGroup{
			FloorID:     k.id,
			FloorNumber: k.number,
			FloorLabel:  first.FloorLabel,
			Tasks:       floorTasks,
			TotalCount:  len(floorTasks),
			FirstRank:   first.Rank,
		}
		if g.FloorLabel == "" {
			g.FloorLabel = fmt.Sprintf("Floor %d", k.number)
		}
		for _, t := range floorTasks {
			if t.Tier.IsCritical() {
				g.CriticalCount++
			}
			if t.Rank < g.FirstRank {
				g.FirstRank = t.Rank
			}
		}
		groups = append(groups, g)
	}
	return groups
}
