package nimbus

import (
	"context"
	"fmt"

	"github.com/insightfinder/nimbus-agent/pkg/models"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// CreateLocationGroup creates a location group over the Nimbus REST API
// and returns the server-assigned LocationGroupID.
func (s *Service) CreateLocationGroup(ctx context.Context, baseURL, token string, request models.LocationGroupRequest) (*models.LocationGroupResponse, error) {
	payload := buildLocationGroupPayload(request)

	id, err := s.postForID(ctx, baseURL, token, LOCATION_GROUP_API, payload, "LocationGroupID")
	if err != nil {
		return nil, fmt.Errorf("failed to create location group: %v", err)
	}

	logrus.Infof("Created location group %q (LocationGroupID=%d)", request.Description, id)
	return &models.LocationGroupResponse{LocationGroupID: id}, nil
}

// buildLocationGroupPayload wraps every location id into its own
// {"LocationID": id} object, preserving the caller's order.
func buildLocationGroupPayload(request models.LocationGroupRequest) LocationGroupPayload {
	return LocationGroupPayload{
		Description: request.Description,
		Active:      true,
		Locations: lo.Map(request.LocationIDs, func(id int64, _ int) GroupLocation {
			return GroupLocation{LocationID: id}
		}),
	}
}
