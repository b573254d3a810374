package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/models"
)

func setupOrderDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:order_svc_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.MenuCategory{}, &models.MenuItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, categoryID uint, name string, prepMinutes int) models.MenuItem {
	item := models.MenuItem{Name: name, Price: 9.5, CategoryID: categoryID, PreparationTime: prepMinutes, IsAvailable: true}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestUpdateEstimationUsesSlowestItem(t *testing.T) {
	db := setupOrderDB(t)

	user := models.User{FullName: "Bob", Email: "bob@example.com", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)
	category := models.MenuCategory{Name: "Mains"}
	require.NoError(t, db.Create(&category).Error)

	soup := seedMenuItem(t, db, category.ID, "Soup", 10)
	steak := seedMenuItem(t, db, category.ID, "Steak", 25)
	salad := seedMenuItem(t, db, category.ID, "Salad", 5)

	order := models.Order{UserID: user.ID, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)
	for _, m := range []models.MenuItem{soup, steak, salad} {
		require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, MenuItemID: m.ID, Quantity: 1}).Error)
	}

	svc := NewOrderService(db)
	updated, err := svc.UpdateEstimation(db, order.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.EstimatedCompletion)

	// the 25 minute steak dominates regardless of the other items
	assert.WithinDuration(t, updated.CreatedAt.Add(25*time.Minute), *updated.EstimatedCompletion, time.Second)
}

func TestUpdateEstimationEmptyOrder(t *testing.T) {
	db := setupOrderDB(t)

	user := models.User{FullName: "Bob", Email: "bob@example.com", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)
	order := models.Order{UserID: user.ID, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)

	svc := NewOrderService(db)
	updated, err := svc.UpdateEstimation(db, order.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.EstimatedCompletion)
	assert.WithinDuration(t, updated.CreatedAt, *updated.EstimatedCompletion, time.Second)
}

func TestUpdateEstimationReactsToRemovedItem(t *testing.T) {
	db := setupOrderDB(t)

	user := models.User{FullName: "Bob", Email: "bob@example.com", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)
	category := models.MenuCategory{Name: "Mains"}
	require.NoError(t, db.Create(&category).Error)

	quick := seedMenuItem(t, db, category.ID, "Fries", 8)
	slow := seedMenuItem(t, db, category.ID, "Roast", 40)

	order := models.Order{UserID: user.ID, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, MenuItemID: quick.ID, Quantity: 1}).Error)
	slowLine := models.OrderItem{OrderID: order.ID, MenuItemID: slow.ID, Quantity: 1}
	require.NoError(t, db.Create(&slowLine).Error)

	svc := NewOrderService(db)
	updated, err := svc.UpdateEstimation(db, order.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, updated.CreatedAt.Add(40*time.Minute), *updated.EstimatedCompletion, time.Second)

	require.NoError(t, db.Delete(&slowLine).Error)
	updated, err = svc.UpdateEstimation(db, order.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, updated.CreatedAt.Add(8*time.Minute), *updated.EstimatedCompletion, time.Second)
}

func TestUpdateEstimationOrderNotFound(t *testing.T) {
	db := setupOrderDB(t)
	svc := NewOrderService(db)
	_, err := svc.UpdateEstimation(db, 12345)
	assert.Error(t, err)
}
