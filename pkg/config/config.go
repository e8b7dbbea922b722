package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string

	Risk RiskConfig
}

// RiskConfig holds the day thresholds the order risk classifier evaluates
// against. There are no hard-coded business constants in the classifier; the
// thresholds always come from here.
type RiskConfig struct {
	WatchDays       int
	OverdueDays     int
	HighRiskDays    int
	UnpaidAgingDays int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		Risk: RiskConfig{
			WatchDays:       getEnvAsInt("RISK_WATCH_DAYS", 3),
			OverdueDays:     getEnvAsInt("RISK_OVERDUE_DAYS", 7),
			HighRiskDays:    getEnvAsInt("RISK_HIGH_RISK_DAYS", 2),
			UnpaidAgingDays: getEnvAsInt("RISK_UNPAID_AGING_DAYS", 14),
		},
	}

	if err := config.Risk.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (r RiskConfig) validate() error {
	if r.WatchDays < 0 || r.OverdueDays < 0 || r.HighRiskDays < 0 || r.UnpaidAgingDays < 0 {
		return fmt.Errorf("risk thresholds must be non-negative: %+v", r)
	}
	if r.WatchDays > r.OverdueDays {
		return fmt.Errorf("RISK_WATCH_DAYS (%d) must not exceed RISK_OVERDUE_DAYS (%d)", r.WatchDays, r.OverdueDays)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
