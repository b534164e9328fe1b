package config

import (
	"time"

	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/log"
	"github.com/shaanzeeeee/rate-punk/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func initDB() {
	dsn := AppConfig.Database.Dsn
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L().Fatal("database connection failed",
			zap.Error(err),
		)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.L().Fatal("database handle unavailable", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(AppConfig.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(AppConfig.Database.ConnMaxLifetimeHours) * time.Hour)
	global.DB = db
	log.L().Info("database connected")
}

func runMigrations() {
	if err := global.DB.AutoMigrate(
		&models.Users{},
		&models.Badge{},
		&models.Game{},
		&models.GameTag{},
		&models.Review{},
		&models.ReviewVote{},
		&models.PerformanceReport{},
		&models.AccessibilityVote{},
	); err != nil {
		log.L().Fatal("migration failed", zap.Error(err))
	}
}
