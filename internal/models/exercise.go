package models

import "time"

// Exercise is one logged activity. It always belongs to exactly one
// user's log and is immutable after creation.
type Exercise struct {
	Description string    `json:"description" bson:"description"`
	Duration    int       `json:"duration" bson:"duration"`
	Date        time.Time `json:"date" bson:"date"`
}

// LogEntry is an Exercise rendered for a log response: the date carries
// no time-of-day component (e.g. "Mon May 01 2023").
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}
