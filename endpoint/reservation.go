package endpoint

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jihokang/massage-shop-web/model"
	"github.com/jihokang/massage-shop-web/util"
	"gorm.io/gorm"
)

func fetchReservations(db *gorm.DB, date string) ([]model.ListReservationResponse, error) {
	reservations := []model.ListReservationResponse{}

	query := db.Table("reservations").
		Select("reservations.*, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = reservations.customer_id")
	if date != "" {
		// Exact string equality, not a date-semantic comparison: a row stored
		// as "2024-1-15" does not match a query for "2024-01-15".
		query = query.Where("reservations.reservation_date = ?", date)
	}

	if err := query.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListReservations returns reservations with the owning customer's name
// denormalized in, optionally filtered to one reservation_date.
func ListReservations(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	reservations, err := fetchReservations(db, c.Query("date"))
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve reservations",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

type createReservationRequest struct {
	CustomerID      uint   `json:"customer_id" example:"1"`
	ReservationDate string `json:"reservation_date" example:"2024-01-15"`
	StartTime       string `json:"start_time" example:"14:00"`
	Therapist       string `json:"therapist" example:"Lee"`
	MassageType     string `json:"massage_type" example:"aroma"`
	MassageDuration string `json:"massage_duration" example:"60"`
	Designation     string `json:"designation"`
	Memo            string `json:"memo"`
}

func (r createReservationRequest) missingField() string {
	switch {
	case r.CustomerID == 0:
		return "customer_id"
	case r.ReservationDate == "":
		return "reservation_date"
	case r.StartTime == "":
		return "start_time"
	case r.Therapist == "":
		return "therapist"
	case r.MassageType == "":
		return "massage_type"
	case r.MassageDuration == "":
		return "massage_duration"
	}
	return ""
}

// CreateReservation books a reservation. Beyond presence checks there is no
// validation; whether customer_id references a real customer is left to the
// store's foreign key constraint.
func CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}
	if field := req.missingField(); field != "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Missing required field: %s", field),
			Err: fmt.Errorf("missing required field: %s", field),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	reservation := model.Reservation{
		CustomerID:      req.CustomerID,
		ReservationDate: req.ReservationDate,
		StartTime:       req.StartTime,
		Therapist:       req.Therapist,
		MassageType:     req.MassageType,
		MassageDuration: req.MassageDuration,
		Designation:     req.Designation,
		Memo:            req.Memo,
	}
	if err := db.Create(&reservation).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to create reservation",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": reservation.ID})
}
