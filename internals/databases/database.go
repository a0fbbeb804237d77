package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"chwc_backend/internals/configs"
)

// Connect opens the MySQL pool. The handle is owned by main and injected into
// every controller; there is no package-level *gorm.DB.
func Connect() (*gorm.DB, error) {
	log.Println("🔌 Connecting to MySQL...")

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		configs.GetEnv("DB_USER", "admin"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST", "127.0.0.1"),
		configs.GetEnv("DB_PORT", "3306"),
		configs.GetEnv("DB_NAME", "chwc"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	log.Println("✅ DB connected.")
	return db, nil
}

// TunePool caps the pool at 10 connections (deployment sizing carried over
// from the previous backend); excess requests queue on acquisition.
func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUp pings once in the background so the first request does not pay the
// connection handshake.
func WarmUp(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("warm-up err: %v", err)
			return
		}
		if err := sqlDB.Ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}
