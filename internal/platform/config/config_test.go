package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PAYROLL_LOG_PATH", "")
	t.Setenv("PAYROLL_LOG_TO_FILE", "")
	t.Setenv("PAYROLL_PROCESSOR", "")
	t.Setenv("PAYROLL_TAX_ENABLED", "")
	t.Setenv("PAYROLL_PAYSLIP_DIR", "")
	t.Setenv("PAYROLL_PAYSLIPS_ENABLED", "")

	cfg := Load()

	if cfg.LogPath != "payroll.log" {
		t.Fatalf("expected default log path, got %q", cfg.LogPath)
	}
	if !cfg.LogToFile {
		t.Fatal("expected file logging by default")
	}
	if cfg.Processor != ProcessorCash {
		t.Fatalf("expected cash processor by default, got %q", cfg.Processor)
	}
	if !cfg.TaxEnabled {
		t.Fatal("expected tax enabled by default")
	}
	if cfg.PayslipEnabled {
		t.Fatal("expected payslips disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PAYROLL_PROCESSOR", ProcessorBankTransfer)
	t.Setenv("PAYROLL_TAX_ENABLED", "false")
	t.Setenv("PAYROLL_LOG_TO_FILE", "false")

	cfg := Load()

	if cfg.Processor != ProcessorBankTransfer {
		t.Fatalf("expected bank processor, got %q", cfg.Processor)
	}
	if cfg.TaxEnabled {
		t.Fatal("expected tax disabled")
	}
	if cfg.LogToFile {
		t.Fatal("expected console logging")
	}
}

func TestValidateRejectsUnknownProcessor(t *testing.T) {
	cfg := Config{Processor: "crypto", LogPath: "payroll.log"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown processor")
	}
}

func TestValidateRequiresLogPathForFileLogging(t *testing.T) {
	cfg := Config{Processor: ProcessorCash, LogToFile: true, LogPath: "  "}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for blank log path")
	}
}
