package main

import (
	"fmt"
	"strings"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/priority"

	"github.com/charmbracelet/lipgloss"
)

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	briefingStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	tierStyles = map[priority.Tier]lipgloss.Style{
		priority.TierTurnoverConflict: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		priority.TierArrival:          lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		priority.TierDeparture:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		priority.TierInHouse:          lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		priority.TierDNDRecheck:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

func renderPlan(plan *priority.Plan) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Plan %s  staff %s", plan.Date, plan.StaffID)))
	b.WriteString("\n\n")

	if len(plan.Tasks) > 0 {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-10s %-6s %-18s %-9s %s", "#", "FLOOR", "ROOM", "TIER", "DEADLINE", "REASON")))
		b.WriteString("\n")
		for _, t := range plan.Tasks {
			deadline := "-"
			if t.Deadline != nil {
				deadline = t.Deadline.Format("15:04")
				if t.Overdue() {
					deadline += "!"
				}
			}
			tier := fmt.Sprintf("%-18s", t.Tier)
			if style, ok := tierStyles[t.Tier]; ok {
				tier = style.Render(tier)
			}
			fmt.Fprintf(&b, "%-4d %-10s %-6s %s %-9s %s\n", t.Rank, t.FloorLabel, t.RoomLabel, tier, deadline, t.Reason)
		}
		b.WriteString("\n")
	}

	b.WriteString(briefingStyle.Render(plan.Briefing))
	b.WriteString("\n")

	if plan.Summary.Skipped > 0 {
		fmt.Fprintf(&b, "\n%d task(s) skipped: %s\n", plan.Summary.Skipped, strings.Join(plan.SkippedTaskIDs, ", "))
	}
	return b.String()
}
