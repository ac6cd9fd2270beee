package application

import "time"

// ApplicationIn is the creation payload for an application resource.
type ApplicationIn struct {
	Name      string            `json:"name"`
	UID       *string           `json:"uid,omitempty"`
	RateLimit *uint16           `json:"rateLimit,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// ApplicationOut is an application as returned by the service, including
// the server-assigned identity and timestamps.
type ApplicationOut struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	UID       *string           `json:"uid,omitempty"`
	RateLimit *uint16           `json:"rateLimit,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
