package logger

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("defaults = %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Error("timestamp not defaulted")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "debug", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "info", Format: "console", Output: "stderr"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	log := New(&Config{Level: "nonsense", Format: "json", Output: "stdout"}, "test")
	if log == nil {
		t.Fatal("nil logger")
	}
	log.Info("still works")
}

func TestFields(t *testing.T) {
	m := Fields("op", "login", "status", 200)
	if m["op"] != "login" || m["status"] != 200 {
		t.Errorf("fields = %v", m)
	}
	// Odd trailing key is dropped.
	m = Fields("only-key")
	if len(m) != 0 {
		t.Errorf("fields = %v, want empty", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("login", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("duration = %v", m[FieldDuration])
	}
	if m[FieldOperation] != "login" {
		t.Errorf("operation = %v", m[FieldOperation])
	}
}

func TestNop(t *testing.T) {
	log := Nop().WithComponent("x").WithError(nil)
	log.Debug("dropped")
	log.Error("dropped", Fields("k", "v"))
}
