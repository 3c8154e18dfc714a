package models

import "time"

// LocationGroupRequest describes a location group to create in Nimbus.
// LocationIDs keeps the caller's order; the server does not depend on it.
type LocationGroupRequest struct {
	Description string  `json:"description"`
	LocationIDs []int64 `json:"location_ids"`
}

// LocationGroupResponse carries the server-assigned identifier of a
// newly created location group.
type LocationGroupResponse struct {
	LocationGroupID int64 `json:"location_group_id"`
}

// ScheduleGroupRequest describes a schedule group to create in Nimbus.
// Dates are plain YYYY-MM-DD text and LearningPeriod is opaque text; both
// are forwarded to the server as-is, which owns all validation. The
// referenced location group is not checked locally either.
type ScheduleGroupRequest struct {
	Description     string `json:"description"`
	LocationGroupID int64  `json:"location_group_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	LearningPeriod  string `json:"learning_period"`
}

// ScheduleGroupResponse carries the server-assigned identifier of a
// newly created schedule group.
type ScheduleGroupResponse struct {
	ScheduleGroupID int64 `json:"schedule_group_id"`
}

// ProvisionPlan is one parsed plan file listing the groups to create.
type ProvisionPlan struct {
	Path           string      `yaml:"-"`
	LocationGroups []PlanGroup `yaml:"location_groups"`
}

// PlanGroup is a location group entry in a provisioning plan, together
// with the schedule groups that should reference it once created.
type PlanGroup struct {
	Description string         `yaml:"description"`
	LocationIDs []int64        `yaml:"location_ids"`
	Schedules   []PlanSchedule `yaml:"schedules"`
}

// PlanSchedule is a schedule group entry in a provisioning plan.
type PlanSchedule struct {
	Description    string `yaml:"description"`
	StartDate      string `yaml:"start_date"`
	EndDate        string `yaml:"end_date"`
	LearningPeriod string `yaml:"learning_period"`
}

// RunReport summarizes one provisioning run.
type RunReport struct {
	RunID     string        `json:"run_id"`
	DryRun    bool          `json:"dry_run"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Groups    []GroupResult `json:"groups"`
}

// GroupResult records the outcome of one location group and its schedules.
type GroupResult struct {
	PlanFile        string           `json:"plan_file,omitempty"`
	Description     string           `json:"description"`
	LocationGroupID int64            `json:"location_group_id,omitempty"`
	Error           string           `json:"error,omitempty"`
	Schedules       []ScheduleResult `json:"schedules,omitempty"`
}

// ScheduleResult records the outcome of one schedule group.
type ScheduleResult struct {
	Description     string `json:"description"`
	ScheduleGroupID int64  `json:"schedule_group_id,omitempty"`
	Error           string `json:"error,omitempty"`
}

// ErrorCount returns the number of failed groups and schedules in the run.
func (r *RunReport) ErrorCount() int {
	count := 0
	for _, group := range r.Groups {
		if group.Error != "" {
			count++
		}
		for _, schedule := range group.Schedules {
			if schedule.Error != "" {
				count++
			}
		}
	}
	return count
}

// Status summarizes the run outcome for notifications.
func (r *RunReport) Status() string {
	if r.ErrorCount() > 0 {
		return "failed"
	}
	return "success"
}
