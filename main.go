package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/config"
	"github.com/yeremiapane/warung-pos/middlewares"
	"github.com/yeremiapane/warung-pos/models"
	"github.com/yeremiapane/warung-pos/router"
	"github.com/yeremiapane/warung-pos/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seedDefaultSettings(db)
	seedDefaultCatalog(db)

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Setting{},
		&models.Product{},
		&models.Transaction{},
		&models.TransactionItem{},
		&models.SuspendedOrder{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seedDefaultSettings fills the store identity keys on first run so receipts
// never come out blank.
func seedDefaultSettings(db *gorm.DB) {
	defaults := []models.Setting{
		{Key: models.SettingStoreName, Value: "Warung Makan Enak"},
		{Key: models.SettingFooterStruk, Value: "Terima kasih atas kunjungan Anda!"},
	}
	for _, setting := range defaults {
		var count int64
		db.Model(&models.Setting{}).Where("key = ?", setting.Key).Count(&count)
		if count == 0 {
			if err := db.Create(&setting).Error; err != nil {
				utils.ErrorLogger.Printf("Error seeding setting %s: %v", setting.Key, err)
			}
		}
	}
}

// seedDefaultCatalog loads the sample menu on first run so a fresh terminal
// has something to sell. An existing catalog is left alone.
func seedDefaultCatalog(db *gorm.DB) {
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	type entry struct {
		name     string
		price    int
		category string
	}
	menu := []entry{
		{"Nasi Goreng", 15000, "Makanan Berat"},
		{"Nasi Goreng Spesial", 20000, "Makanan Berat"},
		{"Nasi Putih", 5000, "Makanan Berat"},
		{"Ayam Goreng", 18000, "Makanan Berat"},
		{"Ayam Bakar", 20000, "Makanan Berat"},
		{"Ikan Goreng", 17000, "Makanan Berat"},
		{"Lele Goreng", 15000, "Makanan Berat"},
		{"Mie Goreng", 14000, "Makanan Berat"},
		{"Kwetiau Goreng", 15000, "Makanan Berat"},
		{"Capcay", 18000, "Makanan Berat"},
		{"Soto Ayam", 16000, "Makanan Berat"},
		{"Bakso", 15000, "Makanan Berat"},
		{"Es Teh Manis", 4000, "Minuman"},
		{"Es Teh Tawar", 3000, "Minuman"},
		{"Teh Hangat", 3000, "Minuman"},
		{"Es Jeruk", 6000, "Minuman"},
		{"Jeruk Hangat", 6000, "Minuman"},
		{"Es Campur", 10000, "Minuman"},
		{"Es Kelapa", 8000, "Minuman"},
		{"Kopi Hitam", 5000, "Minuman"},
		{"Kopi Susu", 7000, "Minuman"},
		{"Susu Coklat", 8000, "Minuman"},
		{"Air Mineral", 4000, "Minuman"},
		{"Tahu Goreng", 2000, "Gorengan"},
		{"Tempe Goreng", 2000, "Gorengan"},
		{"Bakwan", 2000, "Gorengan"},
		{"Pisang Goreng", 3000, "Gorengan"},
		{"Ubi Goreng", 3000, "Gorengan"},
		{"Cireng", 2000, "Gorengan"},
		{"Gehu", 2000, "Gorengan"},
		{"Combro", 2000, "Gorengan"},
		{"Kerupuk", 2000, "Snack"},
		{"Emping", 3000, "Snack"},
		{"Kentang Goreng", 8000, "Snack"},
		{"Roti Bakar", 10000, "Snack"},
		{"Martabak Manis", 25000, "Snack"},
		{"Telur Dadar", 5000, "Lainnya"},
		{"Telur Ceplok", 5000, "Lainnya"},
		{"Telur Rebus", 4000, "Lainnya"},
		{"Perkedel", 3000, "Lainnya"},
		{"Sambal", 2000, "Lainnya"},
		{"Lalapan", 3000, "Lainnya"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for i, item := range menu {
			product := models.Product{
				Name:        item.name,
				Price:       item.price,
				Category:    item.category,
				IsAvailable: true,
				SortOrder:   i + 1,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error seeding catalog: %v", err)
		return
	}
	utils.InfoLogger.Printf("Seeded %d catalog products.", len(menu))
}
