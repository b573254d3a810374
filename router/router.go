package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/controllers"
	"github.com/dinesync/restaurant-api/middlewares"
	"github.com/dinesync/restaurant-api/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(db)
	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuItemCtrl := controllers.NewMenuItemController(db)
	orderCtrl := controllers.NewOrderController(db)
	orderItemCtrl := controllers.NewOrderItemController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	activityCtrl := controllers.NewActivityController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/api/auth")
	public.Use(middlewares.StrictRateLimiter())
	{
		public.POST("/register", authCtrl.Register)
		public.POST("/login", authCtrl.Login)
	}

	// Menu browsing requires no login
	r.GET("/api/menu/categories", categoryCtrl.GetAllCategories)
	r.GET("/api/menu/categories/:cat_id", categoryCtrl.GetCategoryByID)
	r.GET("/api/menu/items", menuItemCtrl.GetAllMenuItems)
	r.GET("/api/menu/items/:item_id", menuItemCtrl.GetMenuItemByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	api.Use(middlewares.ActivityLogger(db))

	api.POST("/auth/logout", authCtrl.Logout)
	api.GET("/auth/profile", authCtrl.GetProfile)

	// USERS
	api.PATCH("/users/me", userCtrl.UpdateProfile)

	staff := api.Group("")
	staff.Use(middlewares.RequireRole(models.RoleWaiter, models.RoleChef, models.RoleCashier, models.RoleAdmin))

	admin := api.Group("")
	admin.Use(middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:user_id", userCtrl.GetUserByID)
		admin.PATCH("/users/:user_id/status", userCtrl.ChangeUserStatus)
		admin.PATCH("/users/:user_id/role", userCtrl.ChangeUserRole)
		admin.DELETE("/users/:user_id", userCtrl.DeleteUser)
		admin.GET("/users/count/by-role", userCtrl.CountUsersByRole)
		admin.GET("/users/count/by-status", userCtrl.CountUsersByStatus)
	}

	// TABLES
	api.GET("/tables", tableCtrl.GetAllTables)
	api.GET("/tables/:table_id", tableCtrl.GetTableByID)
	admin.POST("/tables", tableCtrl.CreateTable)
	admin.PUT("/tables/:table_id", tableCtrl.UpdateTable)
	admin.PATCH("/tables/:table_id/status", tableCtrl.UpdateTableStatus)
	admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	admin.GET("/tables/stats", tableCtrl.GetTableStats)

	// RESERVATIONS
	api.POST("/reservations", reservationCtrl.CreateReservation)
	api.GET("/reservations", reservationCtrl.GetAllReservations)
	api.GET("/reservations/upcoming", reservationCtrl.GetUpcomingReservations)
	api.POST("/reservations/check-availability", reservationCtrl.CheckAvailability)
	api.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	api.PUT("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
	admin.PATCH("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)
	admin.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

	// MENU management
	staff.POST("/menu/categories", categoryCtrl.CreateCategory)
	staff.PUT("/menu/categories/:cat_id", categoryCtrl.UpdateCategory)
	staff.DELETE("/menu/categories/:cat_id", categoryCtrl.DeleteCategory)
	staff.POST("/menu/items", menuItemCtrl.CreateMenuItem)
	staff.PUT("/menu/items/:item_id", menuItemCtrl.UpdateMenuItem)
	staff.DELETE("/menu/items/:item_id", menuItemCtrl.DeleteMenuItem)

	// ORDERS
	api.POST("/orders", orderCtrl.CreateOrder)
	api.GET("/orders", orderCtrl.GetAllOrders)
	api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	api.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
	staff.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	// ORDER ITEMS
	api.POST("/order-items", orderItemCtrl.CreateOrderItem)
	api.GET("/order-items", orderItemCtrl.GetAllOrderItems)
	api.GET("/order-items/:item_id", orderItemCtrl.GetOrderItemByID)
	staff.PUT("/order-items/:item_id", orderItemCtrl.UpdateOrderItem)
	staff.DELETE("/order-items/:item_id", orderItemCtrl.DeleteOrderItem)

	// PAYMENTS
	staff.GET("/payments", paymentCtrl.GetAllPayments)
	staff.GET("/payments/:payment_id", paymentCtrl.GetPaymentByID)
	staff.POST("/payments", paymentCtrl.CreatePayment)
	staff.PUT("/payments/:payment_id", paymentCtrl.UpdatePayment)
	staff.DELETE("/payments/:payment_id", paymentCtrl.DeletePayment)

	// NOTIFICATIONS
	api.GET("/notifications", notificationCtrl.GetMyNotifications)
	api.GET("/notifications/unread-count", notificationCtrl.GetUnreadCount)
	api.PATCH("/notifications/:notif_id/read", notificationCtrl.MarkAsRead)
	api.PATCH("/notifications/mark-all-read", notificationCtrl.MarkAllAsRead)
	api.POST("/notifications", notificationCtrl.CreateNotification)
	api.DELETE("/notifications/:notif_id", notificationCtrl.DeleteNotification)

	// ACTIVITY LOGS
	admin.GET("/activity", activityCtrl.GetActivityLogs)

	return r
}
