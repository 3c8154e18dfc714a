package worker

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/insightfinder/nimbus-agent/pkg/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LoadPlans resolves the plan glob and parses every matching YAML file.
// Files are processed in sorted path order so runs are deterministic.
func LoadPlans(pattern string) ([]models.ProvisionPlan, error) {
	files, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid plan glob %q: %v", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no plan files match %q", pattern)
	}
	sort.Strings(files)

	plans := make([]models.ProvisionPlan, 0, len(files))
	for _, file := range files {
		plan, err := loadPlan(file)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	logrus.Infof("Loaded %d plan file(s) matching %q", len(plans), pattern)
	return plans, nil
}

func loadPlan(path string) (models.ProvisionPlan, error) {
	var plan models.ProvisionPlan

	data, err := os.ReadFile(path)
	if err != nil {
		return plan, fmt.Errorf("failed to read plan file %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, &plan); err != nil {
		return plan, fmt.Errorf("failed to parse plan file %s: %v", path, err)
	}
	plan.Path = path

	if err := validatePlan(&plan); err != nil {
		return plan, fmt.Errorf("invalid plan file %s: %v", path, err)
	}

	return plan, nil
}

// validatePlan checks that every entry carries the fields the API needs.
// Dates and learning periods are not inspected; the server owns their
// format.
func validatePlan(plan *models.ProvisionPlan) error {
	if len(plan.LocationGroups) == 0 {
		return fmt.Errorf("at least one location group must be configured")
	}

	for i, group := range plan.LocationGroups {
		if group.Description == "" {
			return fmt.Errorf("location group %d: description is required", i)
		}
		if len(group.LocationIDs) == 0 {
			return fmt.Errorf("location group %d (%s): at least one location id is required", i, group.Description)
		}
		for j, schedule := range group.Schedules {
			if schedule.Description == "" {
				return fmt.Errorf("location group %d (%s): schedule %d: description is required", i, group.Description, j)
			}
		}
	}

	return nil
}
