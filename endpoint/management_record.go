package endpoint

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jihokang/massage-shop-web/model"
	"github.com/jihokang/massage-shop-web/util"
	"gorm.io/gorm"
)

func fetchManagementRecords(db *gorm.DB, customerID string) ([]model.ListManagementRecordResponse, error) {
	records := []model.ListManagementRecordResponse{}

	query := db.Table("management_records").
		Select("management_records.*, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = management_records.customer_id")
	if customerID != "" {
		query = query.Where("management_records.customer_id = ?", customerID)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListManagementRecords returns treatment history entries with the owning
// customer's name denormalized in, optionally filtered to one customer.
func ListManagementRecords(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	records, err := fetchManagementRecords(db, c.Query("customer_id"))
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve management records",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusOK, records)
}

type createManagementRecordRequest struct {
	CustomerID      uint   `json:"customer_id" example:"1"`
	RecordDate      string `json:"record_date" example:"2024-01-15"`
	MassageType     string `json:"massage_type" example:"aroma"`
	MassageDuration string `json:"massage_duration" example:"60"`
	Memo            string `json:"memo"`
	StartTime       string `json:"start_time" example:"14:00"`
}

func (r createManagementRecordRequest) missingField() string {
	switch {
	case r.CustomerID == 0:
		return "customer_id"
	case r.RecordDate == "":
		return "record_date"
	case r.MassageType == "":
		return "massage_type"
	case r.MassageDuration == "":
		return "massage_duration"
	}
	return ""
}

// CreateManagementRecord logs a completed treatment session.
func CreateManagementRecord(c *gin.Context) {
	var req createManagementRecordRequest
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

	record := model.ManagementRecord{
		CustomerID:      req.CustomerID,
		RecordDate:      req.RecordDate,
		MassageType:     req.MassageType,
		MassageDuration: req.MassageDuration,
		Memo:            req.Memo,
		StartTime:       req.StartTime,
	}
	if err := db.Create(&record).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to create management record",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": record.ID})
}
