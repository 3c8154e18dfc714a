package nimbus

import (
	"context"
	"fmt"

	"github.com/insightfinder/nimbus-agent/pkg/models"
	"github.com/sirupsen/logrus"
)

// LEARNING_PERIOD_FIELD is the adhoc field name Nimbus expects the
// learning period under.
const LEARNING_PERIOD_FIELD = "adhoc_LearningPeriod"

// CreateScheduleGroup creates a schedule group attached to an existing
// location group and returns the server-assigned ScheduleGroupID.
func (s *Service) CreateScheduleGroup(ctx context.Context, baseURL, token string, request models.ScheduleGroupRequest) (*models.ScheduleGroupResponse, error) {
	payload := buildScheduleGroupPayload(request)

	id, err := s.postForID(ctx, baseURL, token, SCHEDULE_GROUP_API, payload, "ScheduleGroupID")
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule group: %v", err)
	}

	logrus.Infof("Created schedule group %q (ScheduleGroupID=%d)", request.Description, id)
	return &models.ScheduleGroupResponse{ScheduleGroupID: id}, nil
}

func buildScheduleGroupPayload(request models.ScheduleGroupRequest) ScheduleGroupPayload {
	return ScheduleGroupPayload{
		Description:     request.Description,
		Active:          true,
		LocationGroupID: request.LocationGroupID,
		GroupStartDate:  request.StartDate,
		GroupEndDate:    request.EndDate,
		AdhocFields: []AdhocField{
			{FieldName: LEARNING_PERIOD_FIELD, Value: request.LearningPeriod},
		},
	}
}
