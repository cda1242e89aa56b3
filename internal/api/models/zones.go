package models

import "github.com/zonekit/zonekeeper/internal/zone"

// ZoneListResponse is the payload of GET /zones.
type ZoneListResponse struct {
	Zones map[string]zone.RecordSet `json:"zones"`
	Count int                       `json:"count"`
}

// WriteResponse reports where a zone write landed.
type WriteResponse struct {
	Status string `json:"status"`

	// Path is the zone text file written.
	Path string `json:"path"`

	// Location is "primary" or "secondary".
	Location string `json:"location"`

	// Warning is set when the zone text was written but its JSON
	// snapshot was not.
	Warning string `json:"warning,omitempty"`
}

// DeleteResponse lists the artifact paths a deletion actually removed. The
// list is empty, not an error, for a domain that was never written.
type DeleteResponse struct {
	Status  string   `json:"status"`
	Removed []string `json:"removed"`
}
