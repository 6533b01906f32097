// models/service.go
package models

import "time"

// Service is a bookable salon service.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceSummary is the projection of a service embedded in responses.
type ServiceSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// Summary returns the embeddable subset of a service.
func (s *Service) Summary() ServiceSummary {
	return ServiceSummary{ID: s.ID, Name: s.Name, Price: s.Price, Duration: s.Duration}
}
