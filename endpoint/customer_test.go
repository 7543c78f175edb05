package endpoint

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jihokang/massage-shop-web/model"
	"github.com/stretchr/testify/assert"
)

func TestListCustomers_Empty(t *testing.T) {
	r, db := setupEndpointTest(t)
	_ = db

	w := doRequestWithHandler(r, requestSpec{method: http.MethodGet, registerPath: "/api/customers", requestPath: "/api/customers", handler: ListCustomers})
	assertStatus(t, w, http.StatusOK)

	var customers []model.Customer
	decodeJSON(t, w, &customers)
	assert.Empty(t, customers)
}

func TestCreateCustomer_ThenList(t *testing.T) {
	r, db := setupEndpointTest(t)
	_ = db

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodPost,
		registerPath: "/api/customers",
		requestPath:  "/api/customers",
		handler:      CreateCustomer,
		body:         map[string]string{"name": "Kim", "phone": "010-1111-2222"},
	})
	assertStatus(t, w, http.StatusCreated)

	var created map[string]uint
	decodeJSON(t, w, &created)
	assert.NotZero(t, created["id"])

	r.GET("/api/customers", ListCustomers)
	w = performRequest(r, requestSpec{method: http.MethodGet, requestPath: "/api/customers"})
	assertStatus(t, w, http.StatusOK)

	var customers []model.Customer
	decodeJSON(t, w, &customers)
	assert.Len(t, customers, 1)
	assert.Equal(t, created["id"], customers[0].ID)
	assert.Equal(t, "Kim", customers[0].Name)
	assert.Equal(t, "010-1111-2222", customers[0].Phone)
}

func TestCreateCustomer_MissingName(t *testing.T) {
	r, db := setupEndpointTest(t)
	_ = db

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodPost,
		registerPath: "/api/customers",
		requestPath:  "/api/customers",
		handler:      CreateCustomer,
		body:         map[string]string{"phone": "010-1111-2222"},
	})
	assertStatus(t, w, http.StatusBadRequest)
}

func TestUpdateCustomer_PartialFieldsRetained(t *testing.T) {
	r, db := setupEndpointTest(t)
	customer := model.Customer{Name: "Kim", Phone: "010-1111-2222", BirthDate: "1990-05-01", JoinDate: "2024-01-02", Memo: "first visit"}
	assert.NoError(t, db.Create(&customer).Error)

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodPut,
		registerPath: "/api/customers/:id",
		requestPath:  fmt.Sprintf("/api/customers/%d", customer.ID),
		handler:      UpdateCustomer,
		body:         map[string]string{"memo": "updated"},
	})
	assertStatus(t, w, http.StatusOK)

	var resp map[string]interface{}
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Customer updated successfully", resp["message"])

	var updated model.Customer
	assert.NoError(t, db.First(&updated, customer.ID).Error)
	assert.Equal(t, "updated", updated.Memo)
	assert.Equal(t, "Kim", updated.Name)
	assert.Equal(t, "010-1111-2222", updated.Phone)
	assert.Equal(t, "1990-05-01", updated.BirthDate)
	assert.Equal(t, "2024-01-02", updated.JoinDate)
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	r, db := setupEndpointTest(t)
	_ = db

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodPut,
		registerPath: "/api/customers/:id",
		requestPath:  "/api/customers/99999",
		handler:      UpdateCustomer,
		body:         map[string]string{"memo": "updated"},
	})
	assertStatus(t, w, http.StatusNotFound)
}

func TestDeleteCustomer_Success(t *testing.T) {
	r, db := setupEndpointTest(t)
	customer := createTestCustomer(t, db, "Kim")

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodDelete,
		registerPath: "/api/customers/:id",
		requestPath:  fmt.Sprintf("/api/customers/%d", customer.ID),
		handler:      DeleteCustomer,
	})
	assertStatus(t, w, http.StatusOK)

	var count int64
	db.Model(&model.Customer{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	r, db := setupEndpointTest(t)
	_ = db

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodDelete,
		registerPath: "/api/customers/:id",
		requestPath:  "/api/customers/99999",
		handler:      DeleteCustomer,
	})
	assertStatus(t, w, http.StatusNotFound)
}

func TestDeleteCustomer_RejectedWithReservations(t *testing.T) {
	r, db := setupEndpointTest(t)
	customer := createTestCustomer(t, db, "Kim")
	reservation := model.Reservation{
		CustomerID:      customer.ID,
		ReservationDate: "2024-01-15",
		StartTime:       "14:00",
		Therapist:       "Lee",
		MassageType:     "aroma",
		MassageDuration: "60",
	}
	assert.NoError(t, db.Create(&reservation).Error)

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodDelete,
		registerPath: "/api/customers/:id",
		requestPath:  fmt.Sprintf("/api/customers/%d", customer.ID),
		handler:      DeleteCustomer,
	})
	assertStatus(t, w, http.StatusConflict)

	var count int64
	db.Model(&model.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCustomer_RejectedWithManagementRecords(t *testing.T) {
	r, db := setupEndpointTest(t)
	customer := createTestCustomer(t, db, "Kim")
	record := model.ManagementRecord{
		CustomerID:      customer.ID,
		RecordDate:      "2024-01-10",
		MassageType:     "deep",
		MassageDuration: "90",
	}
	assert.NoError(t, db.Create(&record).Error)

	w := doRequestWithHandler(r, requestSpec{
		method:       http.MethodDelete,
		registerPath: "/api/customers/:id",
		requestPath:  fmt.Sprintf("/api/customers/%d", customer.ID),
		handler:      DeleteCustomer,
	})
	assertStatus(t, w, http.StatusConflict)
}
