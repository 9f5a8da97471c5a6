package model

import "time"

// DateRange bounds a transaction fetch. From and To are inclusive
// calendar dates.
type DateRange struct {
	From time.Time
	To   time.Time
}
