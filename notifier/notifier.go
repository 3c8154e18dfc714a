package notifier

import (
	"context"
	"fmt"

	"github.com/carlmjohnson/requests"
	"github.com/google/go-querystring/query"
	config "github.com/insightfinder/nimbus-agent/configs"
	"github.com/insightfinder/nimbus-agent/pkg/models"
	"github.com/sirupsen/logrus"
)

type Service struct {
	config config.NotifyConfig
}

func NewService(cfg config.NotifyConfig) *Service {
	return &Service{config: cfg}
}

// runMeta is duplicated into the webhook query string so receivers can
// route on the outcome without parsing the report body.
type runMeta struct {
	RunID      string `url:"run_id"`
	Status     string `url:"status"`
	ErrorCount int    `url:"error_count"`
}

// SendReport posts the run report to the configured webhook. A missing
// webhook URL is not an error; notifications are simply off.
func (s *Service) SendReport(ctx context.Context, report *models.RunReport) error {
	if s.config.WebhookURL == "" {
		logrus.Debug("No webhook configured, skipping run notification")
		return nil
	}

	meta := runMeta{
		RunID:      report.RunID,
		Status:     report.Status(),
		ErrorCount: report.ErrorCount(),
	}
	params, err := query.Values(meta)
	if err != nil {
		return fmt.Errorf("failed to build notification params: %v", err)
	}

	var resultStr string
	err = requests.URL(s.config.WebhookURL).
		UserAgent("nimbus-agent").
		BodyJSON(report).
		Params(params).
		ToString(&resultStr).
		Post().
		Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to send run notification: %v", err)
	}

	logrus.Infof("Run notification sent for run %s (%s)", report.RunID, meta.Status)
	return nil
}
