package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/service"

	"go.uber.org/zap"
)

// PlanHandler 检查员任务优先级计划 Handler
type PlanHandler struct {
	planService service.PlanService
	loc         *time.Location
	now         func() time.Time
	logger      *zap.Logger
}

// NewPlanHandler 创建 PlanHandler；loc 用于确定未传 date 时的"今天"
func NewPlanHandler(planService service.PlanService, loc *time.Location, logger *zap.Logger) *PlanHandler {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanHandler{
		planService: planService,
		loc:         loc,
		now:         time.Now,
		logger:      logger,
	}
}

// planParams 读取 staff_id / date（默认今天）
func (h *PlanHandler) planParams(r *http.Request) (string, time.Time, error) {
	staffID := r.URL.Query().Get("staff_id")
	if staffID == "" {
		return "", time.Time{}, errors.New("staff_id is required")
	}
	y, m, d := h.now().In(h.loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	date, err := parseDate(r.URL.Query().Get("date"), today)
	if err != nil {
		return "", time.Time{}, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return staffID, date, nil
}

// GetPlan GET /housekeeping/api/v1/plan?staff_id=&date=&hotel_id=
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	staffID, date, err := h.planParams(r)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}

	plan := h.planService.GetPlan(r.Context(), service.GetPlanRequest{
		StaffID: staffID,
		HotelID: r.URL.Query().Get("hotel_id"),
		Date:    date,
	})
	if !plan.Success {
		writeJSON(w, http.StatusOK, Fail(plan.Error))
		return
	}
	writeJSON(w, http.StatusOK, Ok(plan))
}

// GetFloorPlan GET /housekeeping/api/v1/plan/floor/{floor_id}?staff_id=&date=
func (h *PlanHandler) GetFloorPlan(w http.ResponseWriter, r *http.Request, floorID string) {
	staffID, date, err := h.planParams(r)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}

	resp := h.planService.GetFloorPlan(r.Context(), service.GetFloorPlanRequest{
		StaffID: staffID,
		FloorID: floorID,
		Date:    date,
	})
	if !resp.Success {
		writeJSON(w, http.StatusOK, Fail(resp.Error))
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// GetLastPlan GET /housekeeping/api/v1/plan/last?staff_id=&date=
func (h *PlanHandler) GetLastPlan(w http.ResponseWriter, r *http.Request) {
	staffID, date, err := h.planParams(r)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}

	plan, err := h.planService.GetLastPlan(r.Context(), staffID, date)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotCached) {
			writeJSON(w, http.StatusOK, Fail("no cached plan, compute the plan first"))
			return
		}
		h.logger.Error("Failed to read cached plan", zap.String("staff_id", staffID), zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(plan))
}

// ExportPlan GET /housekeeping/api/v1/plan/export?staff_id=&date=&hotel_id=
// 重新计算计划并导出为 xlsx（打印用），不刷新缓存也不推送简报
func (h *PlanHandler) ExportPlan(w http.ResponseWriter, r *http.Request) {
	staffID, date, err := h.planParams(r)
	if err != nil {
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}

	plan := h.planService.PreviewPlan(r.Context(), service.GetPlanRequest{
		StaffID: staffID,
		HotelID: r.URL.Query().Get("hotel_id"),
		Date:    date,
	})
	if !plan.Success {
		writeJSON(w, http.StatusOK, Fail(plan.Error))
		return
	}

	data, err := GeneratePlanWorkbook(plan)
	if err != nil {
		h.logger.Error("Failed to generate plan workbook", zap.String("plan_id", plan.PlanID), zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(fmt.Sprintf("failed to generate export: %v", err)))
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=housekeeping-plan-%s-%s.xlsx", plan.StaffID, plan.Date))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
