package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "create-modern-fullstack version v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}

func TestShort(t *testing.T) {
	tests := []struct {
		version string
		want    string
		dev     bool
	}{
		{version: "v1.2.3", want: "1.2.3"},
		{version: "0.4.0", want: "0.4.0"},
		{version: "v0.0.0-dev", want: "0.0.0-dev", dev: true},
		{version: "snapshot", want: "snapshot", dev: true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			info := Info{Version: tt.version}
			assert.Equal(t, tt.want, info.Short())
			assert.Equal(t, tt.dev, info.IsDev())
		})
	}
}
