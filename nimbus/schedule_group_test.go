package nimbus

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/insightfinder/nimbus-agent/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScheduleGroup(t *testing.T) {
	var gotPath string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ScheduleGroupID": 77}`))
	}))
	defer server.Close()

	service := newTestService()
	resp, err := service.CreateScheduleGroup(context.Background(), server.URL, "secret-token", models.ScheduleGroupRequest{
		Description:     "Fall Cohort",
		LocationGroupID: 42,
		StartDate:       "2025-01-01",
		EndDate:         "2025-12-31",
		LearningPeriod:  "30",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), resp.ScheduleGroupID)
	assert.Equal(t, "/RESTApi/ScheduleGroup", gotPath)

	assert.JSONEq(t, `{
		"Description": "Fall Cohort",
		"Active": true,
		"LocationGroupID": 42,
		"GroupStartDate": "2025-01-01",
		"GroupEndDate": "2025-12-31",
		"AdhocFields": [{"FieldName": "adhoc_LearningPeriod", "Value": "30"}]
	}`, string(gotBody))
}

func TestCreateScheduleGroupAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "LocationGroupID 42 does not exist", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	service := newTestService()
	resp, err := service.CreateScheduleGroup(context.Background(), server.URL, "secret-token", models.ScheduleGroupRequest{
		Description:     "Fall Cohort",
		LocationGroupID: 42,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to create schedule group")
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "LocationGroupID 42 does not exist")
}

// The learning period rides in a single adhoc field whatever its content;
// the client never interprets it.
func TestBuildScheduleGroupPayloadAdhocFields(t *testing.T) {
	learningPeriods := []string{"30", "", "P30D", "six weeks, give or take"}

	for _, lp := range learningPeriods {
		payload := buildScheduleGroupPayload(models.ScheduleGroupRequest{
			Description:     "Cohort",
			LocationGroupID: 1,
			StartDate:       "2025-01-01",
			EndDate:         "2025-06-30",
			LearningPeriod:  lp,
		})

		require.Len(t, payload.AdhocFields, 1)
		assert.Equal(t, "adhoc_LearningPeriod", payload.AdhocFields[0].FieldName)
		assert.Equal(t, lp, payload.AdhocFields[0].Value)
	}
}

func TestBuildScheduleGroupPayloadForwardsDatesVerbatim(t *testing.T) {
	payload := buildScheduleGroupPayload(models.ScheduleGroupRequest{
		Description:     "Backwards",
		LocationGroupID: 9,
		StartDate:       "2025-12-31",
		EndDate:         "2025-01-01",
		LearningPeriod:  "x",
	})

	// End before start is the server's problem, not ours.
	assert.Equal(t, "2025-12-31", payload.GroupStartDate)
	assert.Equal(t, "2025-01-01", payload.GroupEndDate)
	assert.Equal(t, int64(9), payload.LocationGroupID)
	assert.True(t, payload.Active)
}
