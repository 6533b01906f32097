// models/user.go
package models

import "time"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleClient   = "client"
)

// Address holds a client's postal address.
type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
}

// Preferences holds a client's saved preferences.
type Preferences struct {
	PreferredServices  []string `bson:"preferredServices,omitempty" json:"preferredServices,omitempty"`
	PreferredEmployees []string `bson:"preferredEmployees,omitempty" json:"preferredEmployees,omitempty"`
	Notes              string   `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Visit records one completed service for a client's history.
type Visit struct {
	Date       string `bson:"date" json:"date"`
	ServiceID  string `bson:"serviceId" json:"serviceId"`
	EmployeeID string `bson:"employeeId" json:"employeeId"`
}

// User represents a platform user: admin, employee or client.
type User struct {
	ID            string      `bson:"id" json:"id"`
	Name          string      `bson:"name" json:"name"`
	Email         string      `bson:"email" json:"email"`
	PasswordHash  string      `bson:"passwordHash" json:"-"`
	Role          string      `bson:"role" json:"role"`
	Phone         string      `bson:"phone,omitempty" json:"phone,omitempty"`
	Birthdate     string      `bson:"birthdate,omitempty" json:"birthdate,omitempty"`
	Address       Address     `bson:"address,omitempty" json:"address,omitempty"`
	Preferences   Preferences `bson:"preferences,omitempty" json:"preferences,omitempty"`
	LoyaltyPoints int         `bson:"loyaltyPoints" json:"loyaltyPoints"`
	VisitHistory  []Visit     `bson:"visitHistory,omitempty" json:"visitHistory,omitempty"`
	TokenHash     string      `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Summary returns the public subset of a user, for embedding in responses.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserSummary is the projection of a user exposed inside other documents.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
