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

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	categoryCtrl := controllers.NewMenuCategoryController(db)
	itemCtrl := controllers.NewMenuItemController(db)
	router.GET("/menu/categories", categoryCtrl.GetAllCategories)
	router.POST("/menu/categories", categoryCtrl.CreateCategory)
	router.GET("/menu/items", itemCtrl.GetAllMenuItems)
	router.POST("/menu/items", itemCtrl.CreateMenuItem)
	router.PUT("/menu/items/:item_id", itemCtrl.UpdateMenuItem)
	return router
}

func TestCategoryTreeListing(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "menu_tree")
	router := setupMenuRouter(db)

	drinks := models.MenuCategory{Name: "Drinks", DisplayOrder: 2, IsActive: true}
	require.NoError(t, db.Create(&drinks).Error)
	mains := models.MenuCategory{Name: "Mains", DisplayOrder: 1, IsActive: true}
	require.NoError(t, db.Create(&mains).Error)
	hot := models.MenuCategory{Name: "Hot Drinks", ParentID: &drinks.ID, IsActive: true}
	require.NoError(t, db.Create(&hot).Error)

	// one visible item and one that is sold out
	require.NoError(t, db.Create(&models.MenuItem{Name: "Tea", Price: 3, CategoryID: drinks.ID, PreparationTime: 5, IsAvailable: true}).Error)
	require.NoError(t, db.Create(&models.MenuItem{Name: "Cider", Price: 6, CategoryID: drinks.ID, PreparationTime: 2, IsAvailable: false}).Error)

	w := doJSON(t, router, "GET", "/menu/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].([]interface{})
	// only the two roots, ordered by display_order
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Mains", first["name"])

	second := data[1].(map[string]interface{})
	subs := second["subcategories"].([]interface{})
	assert.Len(t, subs, 1)
	items := second["menu_items"].([]interface{})
	assert.Len(t, items, 1)
}

func TestCreateMenuItemDefaults(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "menu_items")
	router := setupMenuRouter(db)

	w := doJSON(t, router, "POST", "/menu/categories", map[string]interface{}{"name": "Desserts"})
	require.Equal(t, http.StatusCreated, w.Code)
	category := parseResponse(t, w)["data"].(map[string]interface{})
	categoryID := uint(category["id"].(float64))

	w = doJSON(t, router, "POST", "/menu/items", map[string]interface{}{
		"name": "Tiramisu", "price": 8.5, "category_id": categoryID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	item := parseResponse(t, w)["data"].(map[string]interface{})
	// preparation time falls back to 15 minutes
	assert.EqualValues(t, 15, item["preparation_time"])
	assert.Equal(t, true, item["is_available"])

	// unknown category
	w = doJSON(t, router, "POST", "/menu/items", map[string]interface{}{
		"name": "Orphan", "price": 1.0, "category_id": uint(999),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuFlagsPersistFalse(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "menu_flags")
	router := setupMenuRouter(db)

	category := models.MenuCategory{Name: "Seasonal", IsActive: false}
	require.NoError(t, db.Create(&category).Error)
	item := models.MenuItem{Name: "Mulled Wine", Price: 5, CategoryID: category.ID, PreparationTime: 4, IsAvailable: false}
	require.NoError(t, db.Create(&item).Error)

	// the false values survive the round trip to the database
	var reloadedCategory models.MenuCategory
	require.NoError(t, db.First(&reloadedCategory, category.ID).Error)
	assert.False(t, reloadedCategory.IsActive)

	var reloadedItem models.MenuItem
	require.NoError(t, db.First(&reloadedItem, item.ID).Error)
	assert.False(t, reloadedItem.IsAvailable)

	// and the availability filter respects them
	w := doJSON(t, router, "GET", "/menu/items?available=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 0)
}

func TestMenuItemAvailabilityToggle(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "menu_toggle")
	router := setupMenuRouter(db)

	category := models.MenuCategory{Name: "Sides", IsActive: true}
	require.NoError(t, db.Create(&category).Error)
	item := models.MenuItem{Name: "Fries", Price: 4, CategoryID: category.ID, PreparationTime: 8, IsAvailable: true}
	require.NoError(t, db.Create(&item).Error)

	w := doJSON(t, router, "PUT", "/menu/items/"+itoa(item.ID), map[string]interface{}{
		"is_available": false, "price": 4.5,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/menu/items?available=true", nil)
	data := parseResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 0)

	w = doJSON(t, router, "GET", "/menu/items", nil)
	data = parseResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 1)
}
