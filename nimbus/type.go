package nimbus

import (
	"net/http"
)

// Service issues requests against a Nimbus REST backend. It only owns the
// HTTP client; base URL and token travel with each call, so concurrent
// calls share nothing but the client.
type Service struct {
	HttpClient *http.Client
}

// Wire structures. Field names are the exact PascalCase names the Nimbus
// REST API expects and are distinct from the snake_case caller structs in
// pkg/models.

type LocationGroupPayload struct {
	Description string          `json:"Description"`
	Active      bool            `json:"Active"`
	Locations   []GroupLocation `json:"Locations"`
}

type GroupLocation struct {
	LocationID int64 `json:"LocationID"`
}

type ScheduleGroupPayload struct {
	Description     string       `json:"Description"`
	Active          bool         `json:"Active"`
	LocationGroupID int64        `json:"LocationGroupID"`
	GroupStartDate  string       `json:"GroupStartDate"`
	GroupEndDate    string       `json:"GroupEndDate"`
	AdhocFields     []AdhocField `json:"AdhocFields"`
}

// AdhocField is the generic key/value extension the Nimbus API uses to
// attach custom attributes to a schedule group.
type AdhocField struct {
	FieldName string `json:"FieldName"`
	Value     string `json:"Value"`
}
