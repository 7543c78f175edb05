package endpoint

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jihokang/massage-shop-web/model"
	"github.com/jihokang/massage-shop-web/util"
)

// ListTherapists returns the full therapist roster, active or not.
func ListTherapists(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	therapists := []model.Therapist{}
	if err := db.Find(&therapists).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve therapists",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusOK, therapists)
}

type createTherapistRequest struct {
	Name   string `json:"name" example:"Lee"`
	Active *bool  `json:"active"`
}

// CreateTherapist adds a therapist to the roster. Active defaults to true
// when omitted.
func CreateTherapist(c *gin.Context) {
	var req createTherapistRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}
	if req.Name == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Therapist name is required",
			Err: fmt.Errorf("missing required field: name"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	therapist := model.Therapist{Name: req.Name, Active: active}
	if err := db.Create(&therapist).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to create therapist",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": therapist.ID})
}
