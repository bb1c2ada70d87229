// Package queue defines message payloads exchanged over the message broker.
package queue

// Actions recorded in a CatalogChangeEvent.
const (
    ActionCreated = "created"
    ActionUpdated = "updated"
    ActionDeleted = "deleted"
)

// CatalogChangeEvent is published after a console write commits. It carries
// enough information for downstream consumers to log or trigger analytics
// without querying the primary database.
type CatalogChangeEvent struct {
    Entity     string `json:"entity"`      // table-level entity name, e.g. "movie"
    Action     string `json:"action"`      // created | updated | deleted
    Key        string `json:"key"`         // primary key, composite keys joined with "/"
    OccurredAt string `json:"occurred_at"` // RFC3339 timestamp of the write
}
