package Controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/controllers"
	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/utils"
)

func setupTableRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	tableCtrl := controllers.NewTableController(db)
	router.POST("/tables", tableCtrl.CreateTable)
	router.GET("/tables", tableCtrl.GetAllTables)
	router.GET("/tables/stats", tableCtrl.GetTableStats)
	router.PATCH("/tables/:table_id/status", tableCtrl.UpdateTableStatus)
	router.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	return router
}

func TestCreateAndListTables(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "tables_list")
	router := setupTableRouter(db)

	w := doJSON(t, router, "POST", "/tables", map[string]interface{}{
		"number": 1, "capacity": 4, "location": "window",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/tables", map[string]interface{}{
		"number": 2, "capacity": 6, "status": "occupied",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// duplicate table number
	w = doJSON(t, router, "POST", "/tables", map[string]interface{}{
		"number": 1, "capacity": 2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", "/tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	assert.Equal(t, "List of tables", response["message"])
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	w = doJSON(t, router, "GET", "/tables?status=occupied", nil)
	response = parseResponse(t, w)
	data = response["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestUpdateTableStatus(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "tables_status")
	router := setupTableRouter(db)

	table := models.Table{Number: 7, Capacity: 2, Status: models.TableStatusAvailable}
	require.NoError(t, db.Create(&table).Error)

	url := "/tables/" + strconv.Itoa(int(table.ID)) + "/status"
	w := doJSON(t, router, "PATCH", url, map[string]string{"status": "occupied"})
	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	assert.Equal(t, "Table status updated", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "occupied", data["status"])

	// outside the closed set
	w = doJSON(t, router, "PATCH", url, map[string]string{"status": "on-fire"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "PATCH", "/tables/999/status", map[string]string{"status": "occupied"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTableStats(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "tables_stats")
	router := setupTableRouter(db)

	for i, status := range []string{
		models.TableStatusAvailable, models.TableStatusAvailable,
		models.TableStatusReserved, models.TableStatusOccupied,
	} {
		require.NoError(t, db.Create(&models.Table{Number: i + 1, Capacity: 4, Status: status}).Error)
	}

	w := doJSON(t, router, "GET", "/tables/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.EqualValues(t, 4, data["total"])
	assert.EqualValues(t, 2, data["available"])
	assert.EqualValues(t, 1, data["reserved"])
	assert.EqualValues(t, 1, data["occupied"])
}

func TestDeleteTableCascadesReservations(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "tables_delete")
	router := setupTableRouter(db)

	user := models.User{FullName: "Guest", Email: "guest-tables@example.com", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)
	table := models.Table{Number: 9, Capacity: 4}
	require.NoError(t, db.Create(&table).Error)
	require.NoError(t, db.Create(&models.Reservation{
		UserID: user.ID, TableID: table.ID, Guests: 2, Duration: 60,
		ReservationTime: mustParseTime(t, "2026-09-12T18:00:00Z"),
		Status:          models.ReservationStatusPending,
	}).Error)

	w := doJSON(t, router, "DELETE", "/tables/"+strconv.Itoa(int(table.ID)), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Reservation{}).Where("table_id = ?", table.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}
