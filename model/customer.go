package model

// Customer represents a shop customer record.
// Date fields are stored as plain strings supplied by the caller
// ("YYYY-MM-DD" by convention, not enforced).
type Customer struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"type:varchar(100);not null"`
	Phone     string `json:"phone" gorm:"type:varchar(20)"`
	BirthDate string `json:"birth_date" gorm:"type:varchar(10)"`
	JoinDate  string `json:"join_date" gorm:"type:varchar(10)"`
	Memo      string `json:"memo" gorm:"type:text"`
}
