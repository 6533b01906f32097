// models/interval.go
package models

// TimeInterval is a half-open [Start, End) wall-clock window within one day,
// both endpoints formatted as zero-padded "HH:MM". It represents either a
// booked appointment or a candidate free slot; it is never persisted on its
// own.
type TimeInterval struct {
	Start string `bson:"startTime" json:"startTime"`
	End   string `bson:"endTime" json:"endTime"`
}
