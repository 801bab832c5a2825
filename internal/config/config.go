package config

import (
	"os"

	"github.com/spf13/viper"
)

// Config holds every value the service reads from the environment.
// It is built once in main and never mutated afterwards; handlers and
// services receive it by value or hold copies of individual fields.
type Config struct {
	Port       string
	MongoURI   string
	DBName     string
	AdminToken string
	AdminUser  string
	AdminPass  string

	// MongoURIFromEnv records whether MONGO_URI was explicitly set,
	// for the /test diagnostic report.
	MongoURIFromEnv bool
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "catalog")
	viper.SetDefault("ADMIN_TOKEN", "admin-token")
	viper.SetDefault("ADMIN_USER", "admin")
	viper.SetDefault("ADMIN_PASS", "admin123")
	viper.AutomaticEnv()

	_, fromEnv := os.LookupEnv("MONGO_URI")

	return Config{
		Port:            viper.GetString("PORT"),
		MongoURI:        viper.GetString("MONGO_URI"),
		DBName:          viper.GetString("DB_NAME"),
		AdminToken:      viper.GetString("ADMIN_TOKEN"),
		AdminUser:       viper.GetString("ADMIN_USER"),
		AdminPass:       viper.GetString("ADMIN_PASS"),
		MongoURIFromEnv: fromEnv,
	}
}
