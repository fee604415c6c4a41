package config

import (
	"os"
	"strconv"
	"time"
)

type CirculationConfig struct {
	StudentLoanDays    int
	StaffLoanDays      int
	StudentRenewalDays int
	StaffRenewalDays   int
	MaxRenewals        int
	DailyFineRate      float64
	SweepInterval      time.Duration
}

func LoadCirculationConfig() *CirculationConfig {
	return &CirculationConfig{
		StudentLoanDays:    getEnvAsInt("CIRC_STUDENT_LOAN_DAYS", 14),
		StaffLoanDays:      getEnvAsInt("CIRC_STAFF_LOAN_DAYS", 30),
		StudentRenewalDays: getEnvAsInt("CIRC_STUDENT_RENEWAL_DAYS", 7),
		StaffRenewalDays:   getEnvAsInt("CIRC_STAFF_RENEWAL_DAYS", 14),
		MaxRenewals:        getEnvAsInt("CIRC_MAX_RENEWALS", 2),
		DailyFineRate:      getEnvAsFloat("CIRC_DAILY_FINE_RATE", 1.0),
		SweepInterval:      getEnvAsDuration("CIRC_SWEEP_INTERVAL", 1*time.Hour),
	}
}

// LoanPeriodDays returns the loan period for a borrower category. Faculty and
// staff share the longer period.
func (c *CirculationConfig) LoanPeriodDays(category string) int {
	if category == "student" {
		return c.StudentLoanDays
	}
	return c.StaffLoanDays
}

// RenewalPeriodDays returns the due-date extension granted by a renewal.
func (c *CirculationConfig) RenewalPeriodDays(category string) int {
	if category == "student" {
		return c.StudentRenewalDays
	}
	return c.StaffRenewalDays
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if floatVal, err := strconv.ParseFloat(val, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			return duration
		}
	}
	return defaultVal
}
