package model

// Therapist represents a member of the therapist roster.
// Reservations reference therapists by name, not by ID, so no relation
// is declared here.
type Therapist struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"type:varchar(100);not null"`
	Active bool   `json:"active"`
}
