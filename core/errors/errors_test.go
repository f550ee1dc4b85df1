package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with value",
			err:      &ConfigError{Field: "columns", Value: "12", Message: "accepted values are 8, 16, 32, 64"},
			wantMsg:  `invalid columns "12": accepted values are 8, 16, 32, 64`,
			wantBase: ErrInvalidConfig,
		},
		{
			name:     "without value",
			err:      &ConfigError{Field: "log-level", Message: "unknown level"},
			wantMsg:  "invalid log-level: unknown level",
			wantBase: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("parse error")
		err := &ConfigError{Field: "columns", Value: "x", Message: "not a number", Err: underlyingErr}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestReadError(t *testing.T) {
	underlyingErr := fmt.Errorf("device gone")

	tests := []struct {
		name    string
		err     *ReadError
		wantMsg string
	}{
		{
			name:    "with stream",
			err:     &ReadError{Stream: "input.bin", Address: 0x10, Err: underlyingErr},
			wantMsg: "failed to read input.bin at 0x00000010: device gone",
		},
		{
			name:    "without stream",
			err:     &ReadError{Address: 0xdeadbeef, Err: underlyingErr},
			wantMsg: "failed to read at 0xdeadbeef: device gone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); got != underlyingErr {
				t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	underlyingErr := fmt.Errorf("disk full")

	tests := []struct {
		name    string
		err     *WriteError
		wantMsg string
	}{
		{
			name:    "with sink",
			err:     &WriteError{Sink: "out.dump", Address: 0x20, Err: underlyingErr},
			wantMsg: "failed to write out.dump at 0x00000020: disk full",
		},
		{
			name:    "without sink",
			err:     &WriteError{Address: 0, Err: underlyingErr},
			wantMsg: "failed to write at 0x00000000: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); got != underlyingErr {
				t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
			}
		})
	}
}

func TestUnsupportedError(t *testing.T) {
	tests := []struct {
		name     string
		err      *UnsupportedError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with reason",
			err:      &UnsupportedError{Feature: "compression", Reason: "only xz containers are handled"},
			wantMsg:  "unsupported compression: only xz containers are handled",
			wantBase: ErrUnsupported,
		},
		{
			name:     "without reason",
			err:      &UnsupportedError{Feature: "seek"},
			wantMsg:  "unsupported seek",
			wantBase: ErrUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("cause")

	if err := NewConfig("columns", "7", "bad"); err.Field != "columns" || err.Value != "7" || err.Message != "bad" {
		t.Errorf("NewConfig() = %+v", err)
	}
	if err := NewRead("in", 5, cause); err.Stream != "in" || err.Address != 5 || err.Err != cause {
		t.Errorf("NewRead() = %+v", err)
	}
	if err := NewWrite("out", 9, cause); err.Sink != "out" || err.Address != 9 || err.Err != cause {
		t.Errorf("NewWrite() = %+v", err)
	}
	if err := NewUnsupported("gzip", "use xz"); err.Feature != "gzip" || err.Reason != "use xz" {
		t.Errorf("NewUnsupported() = %+v", err)
	}
}

func TestWrap(t *testing.T) {
	if got := Wrap(nil, "context"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}

	base := fmt.Errorf("base")
	wrapped := Wrap(base, "context")
	if wrapped.Error() != "context: base" {
		t.Errorf("Wrap() = %q, want %q", wrapped.Error(), "context: base")
	}
	if !Is(wrapped, base) {
		t.Errorf("Is(wrapped, base) = false, want true")
	}

	wrappedf := Wrapf(base, "op %s", "dump")
	if wrappedf.Error() != "op dump: base" {
		t.Errorf("Wrapf() = %q, want %q", wrappedf.Error(), "op dump: base")
	}
	if got := Wrapf(nil, "op %s", "dump"); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}

func TestAs(t *testing.T) {
	err := Wrap(NewConfig("columns", "3", "bad"), "startup")
	var cfgErr *ConfigError
	if !As(err, &cfgErr) {
		t.Fatalf("As() = false, want true for %v", err)
	}
	if cfgErr.Value != "3" {
		t.Errorf("ConfigError.Value = %q, want %q", cfgErr.Value, "3")
	}
}
