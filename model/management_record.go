package model

// ManagementRecord is a historical log entry of a treatment session,
// distinct from a forward-looking Reservation.
type ManagementRecord struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CustomerID      uint      `json:"customer_id" gorm:"not null"`
	RecordDate      string    `json:"record_date" gorm:"type:varchar(10);not null"`
	MassageType     string    `json:"massage_type" gorm:"type:varchar(50);not null"`
	MassageDuration string    `json:"massage_duration" gorm:"type:varchar(20);not null"`
	Memo            string    `json:"memo" gorm:"type:text"`
	StartTime       string    `json:"start_time" gorm:"type:varchar(5)"`
	Customer        *Customer `json:"-" gorm:"foreignKey:CustomerID"`
}

// ListManagementRecordResponse is a management record joined with the
// owning customer's name for list responses.
type ListManagementRecordResponse struct {
	ManagementRecord
	CustomerName string `json:"customer_name" gorm:"column:customer_name"`
}
