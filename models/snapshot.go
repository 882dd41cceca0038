package models

import "time"

// Storage keys carried over from the browser build of this app.
const (
	SnapshotKey = "invoicegen:data"
	ThemeKey    = "invoicegen:theme"
)

// Snapshot is one persisted key-value row. The invoice snapshot and the
// theme preference each live under their own key; a missing row means
// "use the default", never an error.
type Snapshot struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Body      string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
