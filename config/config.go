package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName  string `json:"appname"`
	AppEnv   string `json:"appenv"`
	AppPort  uint16 `json:"appport"`
	GinMode  string `json:"ginmode"`
	DBDriver string `json:"dbdriver"`
	DBPath   string `json:"dbpath"`
	DBHost   string `json:"dbhost"`
	DBPort   uint16 `json:"dbport"`
	DBName   string `json:"dbname"`
	DBUser   string `json:"dbuser"`
	DBPass   string `json:"dbpass"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// A missing .env file is fine; plain environment variables still apply.
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		if appPort == 0 {
			appPort = 5000
		}
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)

		ginMode := os.Getenv("GINMODE")
		if ginMode == "" {
			ginMode = "release"
		}

		driver := os.Getenv("DBDRIVER")
		if driver == "" {
			driver = "sqlite"
		}
		dbPath := os.Getenv("DBPATH")
		if dbPath == "" {
			dbPath = "massage_shop.db"
		}

		config = &Config{
			AppName:  os.Getenv("APPNAME"),
			AppEnv:   os.Getenv("APPENV"),
			AppPort:  uint16(appPort),
			GinMode:  ginMode,
			DBDriver: driver,
			DBPath:   dbPath,
			DBHost:   os.Getenv("DBHOST"),
			DBPort:   uint16(dbPort),
			DBName:   os.Getenv("DBNAME"),
			DBUser:   os.Getenv("DBUSER"),
			DBPass:   os.Getenv("DBPASS"),
		}
	})
	return config
}

// ConnectDatabase opens the configured relational store. The default is a
// file-backed SQLite database with foreign keys enabled; MySQL is selected
// with DBDRIVER=mysql.
func ConnectDatabase() (*gorm.DB, error) {
	cfg := LoadConfig()

	switch cfg.DBDriver {
	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.DBPath)
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DBDRIVER: %s", cfg.DBDriver)
	}
}
