package config_test

import (
	"testing"
	"time"

	"texttools/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	if got := config.GetEnvString("TEST_STRING", "default"); got != "value" {
		t.Errorf("GetEnvString() = %q, want value", got)
	}
	if got := config.GetEnvString("TEST_STRING_UNSET", "default"); got != "default" {
		t.Errorf("GetEnvString() = %q, want default", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"negative", "-7", -7},
		{"invalid falls back", "not-a-number", 10},
		{"empty falls back", "", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			if got := config.GetEnvInt("TEST_INT", 10); got != tt.want {
				t.Errorf("GetEnvInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"True", true},
		{"0", false},
		{"false", false},
		{"F", false},
		{"yes", true},  // invalid, falls back to default
		{"", true},     // unset, falls back to default
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			if got := config.GetEnvBool("TEST_BOOL", true); got != tt.want {
				t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	if got := config.GetEnvDuration("TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("GetEnvDuration() = %v, want 90s", got)
	}

	t.Setenv("TEST_DURATION", "ninety seconds")
	if got := config.GetEnvDuration("TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("GetEnvDuration() = %v, want default on parse error", got)
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	if err := config.ValidatePositiveDuration(time.Second); err != nil {
		t.Errorf("ValidatePositiveDuration(1s) = %v, want nil", err)
	}
	if err := config.ValidatePositiveDuration(0); err == nil {
		t.Error("ValidatePositiveDuration(0) = nil, want error")
	}
	if err := config.ValidatePositiveDuration(-time.Second); err == nil {
		t.Error("ValidatePositiveDuration(-1s) = nil, want error")
	}
}

func TestValidateDurationRange(t *testing.T) {
	tests := []struct {
		name    string
		d       time.Duration
		min     time.Duration
		max     time.Duration
		wantErr bool
	}{
		{"within range", 10 * time.Second, time.Second, time.Minute, false},
		{"at min", time.Second, time.Second, time.Minute, false},
		{"at max", time.Minute, time.Second, time.Minute, false},
		{"below min", time.Millisecond, time.Second, time.Minute, true},
		{"above max", time.Hour, time.Second, time.Minute, true},
		{"inverted range", time.Second, time.Minute, time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.ValidateDurationRange(tt.d, tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDurationRange() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
