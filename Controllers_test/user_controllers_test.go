package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/controllers"
	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/utils"
)

func setupUserRouter(db *gorm.DB, callerID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(db)
	authed := router.Group("", authAs(callerID, models.RoleAdmin))
	authed.GET("/users", userCtrl.GetAllUsers)
	authed.PATCH("/users/me", userCtrl.UpdateProfile)
	authed.PATCH("/users/:user_id/status", userCtrl.ChangeUserStatus)
	authed.PATCH("/users/:user_id/role", userCtrl.ChangeUserRole)
	authed.GET("/users/count/by-status", userCtrl.CountUsersByStatus)
	return router
}

func TestChangeUserRole(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "users_role")

	admin := models.User{FullName: "Root", Email: "root@example.com", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	target := models.User{FullName: "Newbie", Email: "newbie@example.com", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&target).Error)

	router := setupUserRouter(db, admin.ID)

	w := doJSON(t, router, "PATCH", "/users/"+itoa(target.ID)+"/role", map[string]string{"role": "WAITER"})
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, target.ID).Error)
	assert.Equal(t, models.RoleWaiter, reloaded.Role)

	// roles outside the closed set are rejected
	w = doJSON(t, router, "PATCH", "/users/"+itoa(target.ID)+"/role", map[string]string{"role": "SUPERUSER"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, db.First(&reloaded, target.ID).Error)
	assert.Equal(t, models.RoleWaiter, reloaded.Role)
}

func TestSuspendUserRequiresDays(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "users_suspend")

	admin := models.User{FullName: "Root", Email: "root2@example.com", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	target := models.User{FullName: "Troublemaker", Email: "trouble@example.com", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&target).Error)

	router := setupUserRouter(db, admin.ID)
	url := "/users/" + itoa(target.ID) + "/status"

	w := doJSON(t, router, "PATCH", url, map[string]interface{}{"status": "suspended"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "PATCH", url, map[string]interface{}{"status": "suspended", "days": 7})
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, target.ID).Error)
	assert.Equal(t, models.UserStatusSuspended, reloaded.Status)
	assert.NotNil(t, reloaded.SuspensionEndsAt)

	// reactivation clears the suspension window; load into a fresh struct
	// so the NULL column is not masked by the previous value
	w = doJSON(t, router, "PATCH", url, map[string]interface{}{"status": "active"})
	assert.Equal(t, http.StatusOK, w.Code)
	var reactivated models.User
	require.NoError(t, db.First(&reactivated, target.ID).Error)
	assert.Equal(t, models.UserStatusActive, reactivated.Status)
	assert.Nil(t, reactivated.SuspensionEndsAt)
}

func TestCountUsersByStatusZeroFilled(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "users_counts")

	admin := models.User{FullName: "Root", Email: "root3@example.com", Role: models.RoleAdmin, Status: models.UserStatusActive}
	require.NoError(t, db.Create(&admin).Error)

	router := setupUserRouter(db, admin.ID)
	w := doJSON(t, router, "GET", "/users/count/by-status", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["active"])
	assert.EqualValues(t, 0, data["suspended"])
	assert.EqualValues(t, 0, data["banned"])
}

func TestUpdateOwnProfile(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "users_profile")

	user := models.User{FullName: "Old Name", Email: "me@example.com", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)

	router := setupUserRouter(db, user.ID)
	w := doJSON(t, router, "PATCH", "/users/me", map[string]string{"full_name": "New Name"})
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, "New Name", reloaded.FullName)
	assert.Equal(t, "me@example.com", reloaded.Email)
}
