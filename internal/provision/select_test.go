package provision

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/virtenv/internal/model"
)

// usableCaps returns capabilities for a healthy interpreter where the
// built-in venv builder is fully usable.
func usableCaps() model.Capabilities {
	return model.Capabilities{
		Executable: "/usr/bin/python3",
		Version:    "3.11.4",
		Venv:       true,
		Ensurepip:  true,
	}
}

// TestSelect exercises the four-way decision procedure over capability
// flags, with and without an external virtualenv.py path supplied.
func TestSelect(t *testing.T) {
	tests := []struct {
		name         string
		caps         model.Capabilities
		virtualenvPy string
		want         model.Mechanism
		wantReason   string
		wantErr      bool
	}{
		{
			name:       "fully usable venv is preferred",
			caps:       usableCaps(),
			want:       model.MechanismVenv,
			wantReason: "Using venv",
		},
		{
			name: "venv preferred even when a virtualenv script is supplied",
			caps: usableCaps(),
			// Supplying the external tool must not override a usable builtin.
			virtualenvPy: "/opt/virtualenv.py",
			want:         model.MechanismVenv,
			wantReason:   "Using venv",
		},
		{
			name:         "missing venv module falls back",
			caps:         model.Capabilities{Venv: false, Ensurepip: true},
			virtualenvPy: "/opt/virtualenv.py",
			want:         model.MechanismVirtualenv,
			wantReason:   "venv not available, falling back to virtualenv",
		},
		{
			name:         "venv without ensurepip falls back",
			caps:         model.Capabilities{Venv: true, Ensurepip: false},
			virtualenvPy: "/opt/virtualenv.py",
			want:         model.MechanismVirtualenv,
			wantReason:   "venv without ensurepip is unuseful, falling back to virtualenv",
		},
		{
			name: "nesting hazard falls back",
			caps: model.Capabilities{
				Venv:             true,
				Ensurepip:        true,
				LegacyVirtualenv: true,
			},
			virtualenvPy: "/opt/virtualenv.py",
			want:         model.MechanismVirtualenv,
			wantReason:   "venv breaks when nesting in virtualenv, falling back to virtualenv",
		},
		{
			name:    "missing venv without a script is a hard error",
			caps:    model.Capabilities{Venv: false},
			wantErr: true,
		},
		{
			name:    "nesting hazard without a script is a hard error",
			caps:    model.Capabilities{Venv: true, Ensurepip: true, LegacyVirtualenv: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason, err := Select(tt.caps, tt.virtualenvPy)

			if tt.wantErr {
				require.Error(t, err)
				var configErr *model.ConfigError
				assert.True(t, errors.As(err, &configErr), "no usable mechanism should be a ConfigError")
				assert.Equal(t, 1, configErr.ExitStatus())
				assert.NotEmpty(t, reason, "reason should explain the rejection even on error")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

// TestSelectNeverPicksVenvUnderHazard pins the invariant that the
// nesting-hazard sentinel always rules out the built-in builder, whatever
// the other flags say.
func TestSelectNeverPicksVenvUnderHazard(t *testing.T) {
	caps := usableCaps()
	caps.LegacyVirtualenv = true

	got, _, err := Select(caps, "/opt/virtualenv.py")
	require.NoError(t, err)
	assert.Equal(t, model.MechanismVirtualenv, got)
}
