package priority

import (
	"fmt"
	"slices"
	"strings"
)

const allClearBriefing = "No pending tasks for today. All clear."

// GenerateBriefing 生成给检查员的简短文字说明
// 空列表返回 all-clear 文本
func GenerateBriefing(sorted []PrioritizedTask, floors []FloorGroup, start *StartingPoint) string {
	if len(sorted) == 0 {
		return allClearBriefing
	}

	var conflicts, criticalConflicts, critical int
	for _, t := range sorted {
		if t.Tier == TierTurnoverConflict {
			conflicts++
			if t.Conflict != nil && t.Conflict.Critical {
				criticalConflicts++
			}
		}
		if t.Tier.IsCritical() {
			critical++
		}
	}

	lines := []string{fmt.Sprintf("Total %d %s pending.", len(sorted), plural(len(sorted), "task", "tasks"))}

	if conflicts > 0 {
		line := fmt.Sprintf("WARNING: %d %s with a same-day departure/arrival turnover conflict",
			conflicts, plural(conflicts, "room", "rooms"))
		if criticalConflicts > 0 {
			line += fmt.Sprintf(" (%d under %d min turnaround)", criticalConflicts, CriticalGapMinutes)
		}
		lines = append(lines, line+"!")
	}

	if critical > 0 {
		lines = append(lines, fmt.Sprintf("%d high-priority %s (turnover conflicts and arrivals).",
			critical, plural(critical, "task", "tasks")))
	}

	if start != nil {
		lines = append(lines,
			"",
			fmt.Sprintf("Recommended start: %s", start.FloorLabel),
			fmt.Sprintf("   First room: %s - %s", start.RoomLabel, start.Reason),
		)
	}

	if len(floors) > 1 {
		ordered := slices.Clone(floors)
		slices.SortStableFunc(ordered, func(a, b FloorGroup) int {
			return a.FirstRank - b.FirstRank
		})
		names := make([]string, 0, len(ordered))
		for _, f := range ordered {
			names = append(names, fmt.Sprintf("Floor %d", f.FloorNumber))
		}
		lines = append(lines, "", "Suggested floor order: "+strings.Join(names, " → "))
	}

	return strings.Join(lines, "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
