package models

import "github.com/zonekit/zonekeeper/internal/changelog"

// ChangesResponse is the payload of GET /changes, newest entries first.
type ChangesResponse struct {
	Entries []changelog.Entry `json:"entries"`
	Count   int               `json:"count"`
}
