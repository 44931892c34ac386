package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/controllers"
	"github.com/yeremiapane/warung-pos/middlewares"
	"github.com/yeremiapane/warung-pos/repositories"
	"github.com/yeremiapane/warung-pos/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// One active cart per terminal; every controller shares the session.
	session := services.NewCartSession()
	ledger := repositories.NewTransactionRepository(db)
	suspendedStore := repositories.NewSuspendedOrderRepository(db)

	productCtrl := controllers.NewProductController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	settingCtrl := controllers.NewSettingController(db)
	cartCtrl := controllers.NewCartController(db, session)
	suspendedCtrl := controllers.NewSuspendedOrderController(services.NewOrderService(session, suspendedStore))
	paymentCtrl := controllers.NewPaymentController(db, services.NewPaymentService(db, ledger, session))
	transactionCtrl := controllers.NewTransactionController(ledger)
	reportCtrl := controllers.NewReportController(services.NewReportService(ledger))
	backupCtrl := controllers.NewBackupController(services.NewBackupService(db))

	products := r.Group("/products")
	{
		products.GET("", productCtrl.GetAllProducts)
		products.POST("", productCtrl.CreateProduct)
		products.GET("/:product_id", productCtrl.GetProductByID)
		products.PATCH("/:product_id", productCtrl.UpdateProduct)
		products.PATCH("/:product_id/availability", productCtrl.ToggleAvailability)
		products.PATCH("/:product_id/price", productCtrl.UpdatePrice)
		products.DELETE("/:product_id", productCtrl.DeleteProduct)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", categoryCtrl.GetCategories)
		categories.PATCH("", categoryCtrl.RenameCategory)
		categories.DELETE("/:category", categoryCtrl.DeleteCategory)
	}

	settings := r.Group("/settings")
	{
		settings.GET("", settingCtrl.GetAllSettings)
		settings.PUT("", settingCtrl.SetSetting)
		settings.GET("/:key", settingCtrl.GetSetting)
	}

	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:index", cartCtrl.AdjustQuantity)
		cart.DELETE("/items/:index", cartCtrl.RemoveLine)
		cart.DELETE("", cartCtrl.ClearCart)
	}

	suspended := r.Group("/suspended-orders")
	{
		suspended.GET("", suspendedCtrl.GetSuspendedOrders)
		suspended.POST("", suspendedCtrl.SuspendOrder)
		suspended.POST("/:order_id/resume", suspendedCtrl.ResumeOrder)
		suspended.DELETE("/:order_id", suspendedCtrl.DeleteSuspendedOrder)
	}

	r.POST("/payments", paymentCtrl.Checkout)

	transactions := r.Group("/transactions")
	{
		transactions.GET("", transactionCtrl.GetAllTransactions)
		transactions.GET("/:transaction_id", transactionCtrl.GetTransactionByID)
	}

	reports := r.Group("/reports")
	{
		reports.GET("", reportCtrl.GetSalesReport)
		reports.GET("/transactions", reportCtrl.GetTransactionsPage)
	}

	r.GET("/backup", backupCtrl.ExportData)
	r.POST("/backup", backupCtrl.ImportData)
	r.POST("/reset", backupCtrl.ResetData)

	return r
}
