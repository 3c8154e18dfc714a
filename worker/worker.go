package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	config "github.com/insightfinder/nimbus-agent/configs"
	"github.com/insightfinder/nimbus-agent/nimbus"
	"github.com/insightfinder/nimbus-agent/pkg/models"
	"github.com/sirupsen/logrus"
)

type Worker struct {
	config        *config.Config
	nimbusService *nimbus.Service
	dryRun        bool
}

// NewWorker creates a new worker instance
func NewWorker(cfg *config.Config, nimbusService *nimbus.Service) *Worker {
	return &Worker{
		config:        cfg,
		nimbusService: nimbusService,
		dryRun:        cfg.Agent.DryRun,
	}
}

// EnableDryRun makes the worker log what it would create without sending
// any requests to Nimbus.
func (w *Worker) EnableDryRun() {
	w.dryRun = true
	logrus.Info("Dry run enabled - no requests will be sent to Nimbus")
}

// Run provisions every group in every matching plan file and returns the
// run report. A failed group is recorded and the run moves on; only plan
// loading problems and context cancellation abort the run. On cancellation
// the partial report is returned together with the context error.
func (w *Worker) Run(ctx context.Context) (*models.RunReport, error) {
	report := &models.RunReport{
		RunID:     uuid.New().String(),
		DryRun:    w.dryRun,
		StartTime: time.Now(),
	}

	logrus.Infof("Starting provisioning run %s", report.RunID)

	plans, err := LoadPlans(w.config.Agent.PlanGlob)
	if err != nil {
		report.EndTime = time.Now()
		return report, err
	}

	for _, plan := range plans {
		for _, group := range plan.LocationGroups {
			if ctx.Err() != nil {
				report.EndTime = time.Now()
				return report, ctx.Err()
			}
			report.Groups = append(report.Groups, w.provisionGroup(ctx, plan.Path, group))
		}
	}

	report.EndTime = time.Now()
	logrus.Infof("Provisioning run %s finished: %d group(s), %d error(s)",
		report.RunID, len(report.Groups), report.ErrorCount())
	return report, nil
}

// provisionGroup creates one location group and then its schedule groups.
// When the location group fails there is no id to attach schedules to, so
// they are marked skipped instead of being attempted.
func (w *Worker) provisionGroup(ctx context.Context, planFile string, group models.PlanGroup) models.GroupResult {
	result := models.GroupResult{
		PlanFile:    planFile,
		Description: group.Description,
	}

	if w.dryRun {
		logrus.Infof("DRY RUN: would create location group %q with %d location(s) and %d schedule(s)",
			group.Description, len(group.LocationIDs), len(group.Schedules))
		for _, schedule := range group.Schedules {
			result.Schedules = append(result.Schedules, models.ScheduleResult{
				Description: schedule.Description,
			})
		}
		return result
	}

	groupResp, err := w.nimbusService.CreateLocationGroup(ctx, w.config.Nimbus.BaseURL, w.config.Nimbus.Token, models.LocationGroupRequest{
		Description: group.Description,
		LocationIDs: group.LocationIDs,
	})
	if err != nil {
		logrus.Errorf("Location group %q failed: %v", group.Description, err)
		result.Error = err.Error()
		for _, schedule := range group.Schedules {
			result.Schedules = append(result.Schedules, models.ScheduleResult{
				Description: schedule.Description,
				Error:       "skipped: location group was not created",
			})
		}
		return result
	}
	result.LocationGroupID = groupResp.LocationGroupID

	for _, schedule := range group.Schedules {
		scheduleResult := models.ScheduleResult{Description: schedule.Description}

		scheduleResp, err := w.nimbusService.CreateScheduleGroup(ctx, w.config.Nimbus.BaseURL, w.config.Nimbus.Token, models.ScheduleGroupRequest{
			Description:     schedule.Description,
			LocationGroupID: groupResp.LocationGroupID,
			StartDate:       schedule.StartDate,
			EndDate:         schedule.EndDate,
			LearningPeriod:  schedule.LearningPeriod,
		})
		if err != nil {
			logrus.Errorf("Schedule group %q failed: %v", schedule.Description, err)
			scheduleResult.Error = err.Error()
		} else {
			scheduleResult.ScheduleGroupID = scheduleResp.ScheduleGroupID
		}

		result.Schedules = append(result.Schedules, scheduleResult)
	}

	return result
}

// WriteReport saves the run report as indented JSON under the configured
// report directory and returns the file path. An empty directory disables
// report files.
func (w *Worker) WriteReport(report *models.RunReport) (string, error) {
	dir := w.config.Agent.ReportDir
	if dir == "" {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %v", dir, err)
	}

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run report: %v", err)
	}

	fileName := filepath.Join(dir, fmt.Sprintf("run-%s.json", report.RunID))
	if err := os.WriteFile(fileName, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write run report %s: %v", fileName, err)
	}

	logrus.Infof("Run report written to %s", fileName)
	return fileName, nil
}
