package endpoint

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jihokang/massage-shop-web/model"
	"github.com/jihokang/massage-shop-web/util"
	"gorm.io/gorm"
)

// ListCustomers returns every customer in insertion order, unpaginated.
func ListCustomers(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	customers := []model.Customer{}
	if err := db.Find(&customers).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve customers",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusOK, customers)
}

type createCustomerRequest struct {
	Name      string `json:"name" example:"Kim"`
	Phone     string `json:"phone" example:"010-1111-2222"`
	BirthDate string `json:"birth_date" example:"1990-05-01"`
	JoinDate  string `json:"join_date" example:"2024-01-02"`
	Memo      string `json:"memo"`
}

// CreateCustomer registers a new customer. Only the name is required; no
// other validation is applied.
func CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}
	if req.Name == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Customer name is required",
			Err: fmt.Errorf("missing required field: name"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	customer := model.Customer{
		Name:      req.Name,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		JoinDate:  req.JoinDate,
		Memo:      req.Memo,
	}
	if err := db.Create(&customer).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to create customer",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": customer.ID})
}

type updateCustomerRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
	JoinDate  string `json:"join_date"`
	Memo      string `json:"memo"`
}

func getCustomerByID(c *gin.Context, db *gorm.DB) (model.Customer, bool) {
	id := c.Param("id")

	var customer model.Customer
	if err := db.First(&customer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{
				Msg: "Customer not found",
				Err: err,
			})
		} else {
			util.CallServerError(c, util.APIErrorParams{
				Msg: "Failed to retrieve customer",
				Err: err,
			})
		}
		return model.Customer{}, false
	}

	return customer, true
}

// UpdateCustomer merges the provided fields into an existing customer.
// Fields absent from the payload keep their stored values.
func UpdateCustomer(c *gin.Context) {
	var req updateCustomerRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	customer, ok := getCustomerByID(c, db)
	if !ok {
		return
	}

	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.BirthDate != "" {
		customer.BirthDate = req.BirthDate
	}
	if req.JoinDate != "" {
		customer.JoinDate = req.JoinDate
	}
	if req.Memo != "" {
		customer.Memo = req.Memo
	}

	if err := db.Save(&customer).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to update customer",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully"})
}

// DeleteCustomer removes a customer. Deletion is rejected with 409 while
// reservations or management records still reference the customer.
func DeleteCustomer(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	customer, ok := getCustomerByID(c, db)
	if !ok {
		return
	}

	var reservations int64
	if err := db.Model(&model.Reservation{}).Where("customer_id = ?", customer.ID).Count(&reservations).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to check customer reservations",
			Err: err,
		})
		return
	}
	var records int64
	if err := db.Model(&model.ManagementRecord{}).Where("customer_id = ?", customer.ID).Count(&records).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to check customer records",
			Err: err,
		})
		return
	}
	if reservations > 0 || records > 0 {
		util.CallConflict(c, util.APIErrorParams{
			Msg: "Customer has existing reservations or management records",
			Err: fmt.Errorf("customer %d has dependent rows", customer.ID),
		})
		return
	}

	if err := db.Delete(&customer).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to delete customer",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
