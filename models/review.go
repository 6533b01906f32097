// models/review.go
package models

import "time"

// ReviewPhoto is a client-supplied photo reference attached to a review.
type ReviewPhoto struct {
	URL     string `bson:"url" json:"url"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
}

// Review is a client's rating of a completed appointment.
type Review struct {
	ID            string        `bson:"id" json:"id"`
	ClientID      string        `bson:"clientId" json:"clientId"`
	ServiceID     string        `bson:"serviceId" json:"serviceId"`
	EmployeeID    string        `bson:"employeeId" json:"employeeId"`
	AppointmentID string        `bson:"appointmentId" json:"appointmentId"`
	Rating        int           `bson:"rating" json:"rating"` // 1 to 5
	Comment       string        `bson:"comment,omitempty" json:"comment,omitempty"`
	Photos        []ReviewPhoto `bson:"photos,omitempty" json:"photos,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// RatingSummary is an aggregated average rating with its sample size.
type RatingSummary struct {
	AverageRating float64 `bson:"averageRating" json:"averageRating"`
	Count         int     `bson:"count" json:"count"`
}
