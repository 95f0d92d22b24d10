package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMechanism verifies string-to-Mechanism conversion, including
// case normalization and rejection of unknown values.
func TestParseMechanism(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mechanism
		wantErr bool
	}{
		{name: "venv", input: "venv", want: MechanismVenv},
		{name: "virtualenv", input: "virtualenv", want: MechanismVirtualenv},
		{name: "uppercase normalized", input: "VENV", want: MechanismVenv},
		{name: "unknown rejected", input: "conda", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMechanism(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

// TestRequestValidate verifies that a Request without a destination
// directory is rejected with a ConfigError.
func TestRequestValidate(t *testing.T) {
	req := &Request{EnvDir: ""}
	err := req.Validate()
	require.Error(t, err)

	var configErr *ConfigError
	assert.True(t, errors.As(err, &configErr), "validation failure should be a ConfigError")

	req.EnvDir = "/tmp/env"
	assert.NoError(t, req.Validate())
}

// TestConfigErrorExitStatus verifies that configuration errors always
// map to exit status 1, regardless of any wrapped error.
func TestConfigErrorExitStatus(t *testing.T) {
	err := NewConfigError("no usable mechanism")
	assert.Equal(t, 1, err.ExitStatus())
	assert.Equal(t, "no usable mechanism", err.Error())

	wrapped := WrapConfigError(errors.New("boom"), "probe failed")
	assert.Equal(t, 1, wrapped.ExitStatus())
	assert.Contains(t, wrapped.Error(), "probe failed")
	assert.Contains(t, wrapped.Error(), "boom")
}

// TestProcessErrorExitStatus verifies exit-code mirroring: a child that
// exited non-zero propagates its own status, while a child that never
// started falls back to exit 1.
func TestProcessErrorExitStatus(t *testing.T) {
	exited := &ProcessError{Command: "python -m venv /tmp/env", Code: 3}
	assert.Equal(t, 3, exited.ExitStatus())
	assert.Contains(t, exited.Error(), "status 3")

	notStarted := &ProcessError{Command: "python virtualenv.py", Err: errors.New("no such file")}
	assert.Equal(t, 1, notStarted.ExitStatus())
	assert.Contains(t, notStarted.Error(), "failed to start")
}

// TestProcessErrorUnwrap verifies errors.Is works through the wrapper,
// which the CLI relies on when classifying failures.
func TestProcessErrorUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := &ProcessError{Command: "python", Err: sentinel}
	assert.True(t, errors.Is(err, sentinel))
}

// TestExitCoderInterface verifies both error types satisfy ExitCoder via
// errors.As, which is how cli.Execute extracts exit codes.
func TestExitCoderInterface(t *testing.T) {
	var coder ExitCoder

	err := error(NewConfigError("bad"))
	require.True(t, errors.As(err, &coder))
	assert.Equal(t, 1, coder.ExitStatus())

	err = error(&ProcessError{Command: "python", Code: 42})
	require.True(t, errors.As(err, &coder))
	assert.Equal(t, 42, coder.ExitStatus())
}
