package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/payonekit/pkg/environment"
)

func TestTokenizerMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  environment.Environment
		want string
	}{
		{
			name: "test environment",
			env:  environment.Test,
			want: "test",
		},
		{
			name: "production environment",
			env:  environment.Production,
			want: "prod",
		},
		{
			name: "unknown environment falls back to test",
			env:  environment.Environment("staging"),
			want: "test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.env.TokenizerMode())
		})
	}
}

func TestFingerprintMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  environment.Environment
		want string
	}{
		{
			name: "test environment",
			env:  environment.Test,
			want: "t",
		},
		{
			name: "production environment",
			env:  environment.Production,
			want: "p",
		},
		{
			name: "unknown environment falls back to test",
			env:  environment.Environment(""),
			want: "t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.env.FingerprintMode())
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Test.Valid())
	assert.True(t, environment.Production.Valid())
	assert.False(t, environment.Environment("").Valid())
	assert.False(t, environment.Environment("prod").Valid())
}
