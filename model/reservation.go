package model

// Reservation is a forward-looking booking for a customer.
// The therapist column is free text and intentionally not a foreign key
// into the therapists table.
type Reservation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CustomerID      uint      `json:"customer_id" gorm:"not null"`
	ReservationDate string    `json:"reservation_date" gorm:"type:varchar(10);not null"`
	StartTime       string    `json:"start_time" gorm:"type:varchar(5);not null"`
	Therapist       string    `json:"therapist" gorm:"type:varchar(100);not null"`
	MassageType     string    `json:"massage_type" gorm:"type:varchar(50);not null"`
	MassageDuration string    `json:"massage_duration" gorm:"type:varchar(20);not null"`
	Designation     string    `json:"designation" gorm:"type:varchar(20)"`
	Memo            string    `json:"memo" gorm:"type:text"`
	Customer        *Customer `json:"-" gorm:"foreignKey:CustomerID"`
}

// ListReservationResponse is a reservation row joined with the owning
// customer's name for list responses.
type ListReservationResponse struct {
	Reservation
	CustomerName string `json:"customer_name" gorm:"column:customer_name"`
}
