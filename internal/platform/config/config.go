// Package config loads runtime settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProcessorCash         = "cash"
	ProcessorBankTransfer = "bank"
)

type Config struct {
	LogPath        string
	LogToFile      bool
	Processor      string
	TaxEnabled     bool
	PayslipDir     string
	PayslipEnabled bool
}

func Load() Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return Config{
		LogPath:        getEnv("PAYROLL_LOG_PATH", "payroll.log"),
		LogToFile:      getEnvBool("PAYROLL_LOG_TO_FILE", true),
		Processor:      getEnv("PAYROLL_PROCESSOR", ProcessorCash),
		TaxEnabled:     getEnvBool("PAYROLL_TAX_ENABLED", true),
		PayslipDir:     getEnv("PAYROLL_PAYSLIP_DIR", "storage/payslips"),
		PayslipEnabled: getEnvBool("PAYROLL_PAYSLIPS_ENABLED", false),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	switch c.Processor {
	case ProcessorCash, ProcessorBankTransfer:
	default:
		return fmt.Errorf("PAYROLL_PROCESSOR must be %q or %q", ProcessorCash, ProcessorBankTransfer)
	}
	if c.LogToFile && strings.TrimSpace(c.LogPath) == "" {
		return fmt.Errorf("PAYROLL_LOG_PATH is required when file logging is enabled")
	}
	if c.PayslipEnabled && strings.TrimSpace(c.PayslipDir) == "" {
		return fmt.Errorf("PAYROLL_PAYSLIP_DIR is required when payslips are enabled")
	}
	return nil
}
