package endpoint

import (
	"net/http"
	"testing"

	"github.com/jihokang/massage-shop-web/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateTherapist_DefaultsActive(t *testing.T) {
	r, db := setupEndpointTest(t)

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodPost,
		registerPath: "/api/therapists",
		requestPath:  "/api/therapists",
		handler:      CreateTherapist,
		body:         map[string]interface{}{"name": "Lee"},
	})
	assertStatus(t, w, http.StatusCreated)

	var created map[string]uint
	decodeJSON(t, w, &created)

	var therapist model.Therapist
	assert.NoError(t, db.First(&therapist, created["id"]).Error)
	assert.Equal(t, "Lee", therapist.Name)
	assert.True(t, therapist.Active)
}

func TestCreateTherapist_ExplicitInactive(t *testing.T) {
	r, db := setupEndpointTest(t)

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodPost,
		registerPath: "/api/therapists",
		requestPath:  "/api/therapists",
		handler:      CreateTherapist,
		body:         map[string]interface{}{"name": "Park", "active": false},
	})
	assertStatus(t, w, http.StatusCreated)

	var created map[string]uint
	decodeJSON(t, w, &created)

	var therapist model.Therapist
	assert.NoError(t, db.First(&therapist, created["id"]).Error)
	assert.False(t, therapist.Active)
}

func TestCreateTherapist_MissingName(t *testing.T) {
	r, db := setupEndpointTest(t)
	_ = db

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodPost,
		registerPath: "/api/therapists",
		requestPath:  "/api/therapists",
		handler:      CreateTherapist,
		body:         map[string]interface{}{"active": true},
	})
	assertStatus(t, w, http.StatusBadRequest)
}

func TestListTherapists(t *testing.T) {
	r, db := setupEndpointTest(t)
	assert.NoError(t, db.Create(&model.Therapist{Name: "Lee", Active: true}).Error)
	assert.NoError(t, db.Create(&model.Therapist{Name: "Park", Active: false}).Error)

	w := doRequestWithHandler(r, requestSpec{method: http.MethodGet, registerPath: "/api/therapists", requestPath: "/api/therapists", handler: ListTherapists})
	assertStatus(t, w, http.StatusOK)

	var therapists []model.Therapist
	decodeJSON(t, w, &therapists)
	assert.Len(t, therapists, 2)
}
