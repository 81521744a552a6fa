package httpapi

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/priority"

	"github.com/xuri/excelize/v2"
)

const (
	planSheetName     = "Plan"
	briefingSheetName = "Briefing"
)

// PlanExportHeader 导出表头
var PlanExportHeader = []string{
	"Rank",
	"Floor",
	"Room",
	"Category",
	"Tier",
	"Deadline",
	"Remaining (min)",
	"Reason",
}

var planColumnWidths = []float64{8, 12, 10, 16, 20, 10, 16, 60}

// GeneratePlanWorkbook 生成计划 Excel 文件（任务表 + 简报）
func GeneratePlanWorkbook(plan *priority.Plan) ([]byte, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan is nil")
	}

	f := excelize.NewFile()
	// Note: Don't defer Close() here, because WriteTo needs the file to be open

	index, err := f.NewSheet(planSheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(briefingSheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	// 紧急任务（冲突、到达）整行高亮
	criticalStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FDE2E1"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create row style: %w", err)
	}

	// 写入表头
	for col, header := range PlanExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(planSheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(planSheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
		colName, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(planSheetName, colName, colName, planColumnWidths[col]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	// 写入任务
	for i, t := range plan.Tasks {
		row := i + 2
		values := []interface{}{
			t.Rank,
			t.FloorLabel,
			t.RoomLabel,
			string(t.Category),
			string(t.Tier),
			"",
			"",
			t.Reason,
		}
		if t.Deadline != nil {
			values[5] = t.Deadline.Format("15:04")
		}
		if t.RemainingMinutes != nil {
			values[6] = *t.RemainingMinutes
		}

		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(planSheetName, start, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
		if t.Tier.IsCritical() {
			end, _ := excelize.CoordinatesToCellName(len(PlanExportHeader), row)
			if err := f.SetCellStyle(planSheetName, start, end, criticalStyle); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set row style: %w", err)
			}
		}
	}

	// 冻结表头
	if err := f.SetPanes(planSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	// 简报：每行一个单元格
	if err := f.SetColWidth(briefingSheetName, "A", "A", 100); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	title := fmt.Sprintf("Staff %s - %s", plan.StaffID, plan.Date)
	if err := f.SetCellValue(briefingSheetName, "A1", title); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write briefing title: %w", err)
	}
	for i, line := range strings.Split(plan.Briefing, "\n") {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err := f.SetCellValue(briefingSheetName, cell, line); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write briefing line: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	return buf.Bytes(), nil
}
