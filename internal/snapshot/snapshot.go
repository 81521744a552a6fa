// Package snapshot 读取 YAML 格式的当日任务快照，用于离线计算计划（不依赖数据库）
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/domain"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/priority"

	"gopkg.in/yaml.v3"
)

// File YAML 快照文件
//
//	date: 2025-06-01
//	now: "09:00"
//	timezone: Europe/Nicosia
//	staff_id: "7"
//	tasks:
//	  - id: t101
//	    room: "101"
//	    floor: 1
//	    category: arrival-check
//	    arrival: "14:00"
//	turnovers:
//	  - room_id: "203"
//	    kind: departure
//	    time: "10:00"
type File struct {
	Date      string     `yaml:"date"`
	Now       string     `yaml:"now"`
	Timezone  string     `yaml:"timezone"`
	StaffID   string     `yaml:"staff_id"`
	HotelID   string     `yaml:"hotel_id"`
	Tasks     []Task     `yaml:"tasks"`
	Turnovers []Turnover `yaml:"turnovers"`
}

// Task 快照中的任务；room 为空表示房间无法解析
type Task struct {
	ID         string `yaml:"id"`
	Room       string `yaml:"room"`
	RoomID     string `yaml:"room_id"` // 默认同 room
	Floor      int    `yaml:"floor"`
	FloorID    string `yaml:"floor_id"`
	FloorLabel string `yaml:"floor_label"`
	Category   string `yaml:"category"`
	State      string `yaml:"state"`
	Arrival    string `yaml:"arrival"`
	Departure  string `yaml:"departure"`
	DNDCount   int    `yaml:"dnd_count"`
	LastDND    string `yaml:"last_dnd"` // HH:MM（当日）或 RFC3339
}

// Turnover 快照中的登记记录
type Turnover struct {
	RoomID string `yaml:"room_id"`
	Kind   string `yaml:"kind"`
	Date   string `yaml:"date"` // 默认同快照日期
	Time   string `yaml:"time"`
}

// Load 读取并解析快照文件
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Parse(data)
}

// Parse 解析快照内容
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if f.Date == "" {
		return nil, errors.New("snapshot date is required")
	}
	return &f, nil
}

// Location 快照时区，未设置时为 UTC
func (f *File) Location() (*time.Location, error) {
	if f.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", f.Timezone, err)
	}
	return loc, nil
}

// Build 转换为规划输入；nowOverride 非空时替代文件中的 now
func (f *File) Build(nowOverride string) (priority.Snapshot, priority.PlanOptions, error) {
	var snap priority.Snapshot

	loc, err := f.Location()
	if err != nil {
		return snap, priority.PlanOptions{}, err
	}
	date, err := time.ParseInLocation(priority.DateLayout, f.Date, loc)
	if err != nil {
		return snap, priority.PlanOptions{}, fmt.Errorf("invalid date %q: %w", f.Date, err)
	}

	nowText := f.Now
	if nowOverride != "" {
		nowText = nowOverride
	}
	now, err := parseInstant(nowText, date, loc)
	if err != nil {
		return snap, priority.PlanOptions{}, fmt.Errorf("invalid now %q: %w", nowText, err)
	}

	for i, t := range f.Tasks {
		task, err := t.toDomain(i, f.StaffID, f.HotelID, date, loc)
		if err != nil {
			return snap, priority.PlanOptions{}, err
		}
		snap.Tasks = append(snap.Tasks, task)
	}
	for i, t := range f.Turnovers {
		rec, err := t.toDomain(date, loc)
		if err != nil {
			return snap, priority.PlanOptions{}, fmt.Errorf("turnover #%d: %w", i+1, err)
		}
		rec.HotelID = f.HotelID
		snap.Turnovers = append(snap.Turnovers, rec)
	}

	opts := priority.PlanOptions{
		StaffID:  f.StaffID,
		HotelID:  f.HotelID,
		Date:     date,
		Now:      now,
		Location: loc,
	}
	return snap, opts, nil
}

func (t Task) toDomain(index int, staffID, hotelID string, date time.Time, loc *time.Location) (domain.Task, error) {
	id := t.ID
	if id == "" {
		id = fmt.Sprintf("task-%d", index+1)
	}
	task := domain.Task{
		TaskID:   id,
		StaffID:  staffID,
		HotelID:  hotelID,
		RoomID:   t.RoomID,
		DNDCount: t.DNDCount,
	}
	if task.RoomID == "" {
		task.RoomID = t.Room
	}

	switch domain.TaskCategory(t.Category) {
	case domain.TaskCategoryArrival, domain.TaskCategoryDeparture, domain.TaskCategoryInHouse:
		task.Category = domain.TaskCategory(t.Category)
	case "":
		task.Category = domain.TaskCategoryInHouse
	default:
		return task, fmt.Errorf("task %s: unknown category %q", id, t.Category)
	}
	switch domain.TaskState(t.State) {
	case domain.TaskStatePending, domain.TaskStateDNDPending, domain.TaskStateCompleted:
		task.State = domain.TaskState(t.State)
	case "":
		task.State = domain.TaskStatePending
	default:
		return task, fmt.Errorf("task %s: unknown state %q", id, t.State)
	}

	var err error
	if task.ArrivalTime, err = optionalTime(t.Arrival); err != nil {
		return task, fmt.Errorf("task %s: arrival: %w", id, err)
	}
	if task.DepartureTime, err = optionalTime(t.Departure); err != nil {
		return task, fmt.Errorf("task %s: departure: %w", id, err)
	}
	if t.LastDND != "" {
		last, err := parseInstant(t.LastDND, date, loc)
		if err != nil {
			return task, fmt.Errorf("task %s: last_dnd: %w", id, err)
		}
		task.LastDNDAt = &last
	}

	if t.Room != "" {
		floorID := t.FloorID
		if floorID == "" {
			floorID = fmt.Sprintf("floor-%d", t.Floor)
		}
		task.Room = &domain.RoomLocation{
			RoomLabel:   t.Room,
			FloorID:     floorID,
			FloorNumber: t.Floor,
			FloorLabel:  t.FloorLabel,
		}
	}
	return task, nil
}

func (t Turnover) toDomain(date time.Time, loc *time.Location) (domain.TurnoverRecord, error) {
	rec := domain.TurnoverRecord{RoomID: t.RoomID, Date: date}
	switch domain.TurnoverKind(t.Kind) {
	case domain.TurnoverDeparture, domain.TurnoverArrival:
		rec.Kind = domain.TurnoverKind(t.Kind)
	default:
		return rec, fmt.Errorf("unknown kind %q", t.Kind)
	}
	if t.Date != "" {
		d, err := time.ParseInLocation(priority.DateLayout, t.Date, loc)
		if err != nil {
			return rec, fmt.Errorf("invalid date %q: %w", t.Date, err)
		}
		rec.Date = d
	}
	var err error
	if rec.Time, err = optionalTime(t.Time); err != nil {
		return rec, err
	}
	return rec, nil
}

func optionalTime(s string) (*domain.TimeOfDay, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseInstant 接受 HH:MM（规划当日）或 RFC3339
func parseInstant(s string, date time.Time, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("time is required")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	tod, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return time.Time{}, err
	}
	return tod.On(date, loc), nil
}
