package config

import "testing"

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	if cfg.Source.Driver != "json" {
		t.Errorf("Source.Driver = %q, want json", cfg.Source.Driver)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %q, want table", cfg.Output.Format)
	}
	if cfg.Report.Top != 3 {
		t.Errorf("Report.Top = %d, want 3", cfg.Report.Top)
	}
	if cfg.Report.Sender == "" || cfg.Report.Client == "" {
		t.Errorf("report names should have defaults: %+v", cfg.Report)
	}
}
