package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stamp(t *testing.T, v, built, commit string) {
	t.Helper()
	origV, origB, origC := Version, BuildTime, Commit
	t.Cleanup(func() { Version, BuildTime, Commit = origV, origB, origC })
	Version, BuildTime, Commit = v, built, commit
}

func vcsBuildInfo() *debug.BuildInfo {
	return &debug.BuildInfo{
		GoVersion: "go1.24.1",
		Main:      debug.Module{Path: "github.com/quantmind-br/postsync", Version: "v0.5.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "4f2a9c1e8b7d6a5f4e3d2c1b0a998877"},
			{Key: "vcs.time", Value: "2026-03-02T10:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
}

func TestGet_LdflagsStamped(t *testing.T) {
	stamp(t, "0.4.0", "2026-01-15T00:00:00Z", "c0ffee")

	info := Get()
	require.Equal(t, "postsync", info.Program)
	require.Equal(t, "0.4.0", info.Version)
	require.Equal(t, "2026-01-15T00:00:00Z", info.BuildTime)
	require.Equal(t, "c0ffee", info.Commit)
	require.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	require.NotEmpty(t, info.GoVersion)

	assert.Equal(t, "0.4.0", Short())
	assert.Equal(t, info.String(), Full())
}

func TestResolve_FallsBackToBuildInfo(t *testing.T) {
	stamp(t, "dev", unknown, unknown)

	info := resolve(vcsBuildInfo())
	assert.Equal(t, "0.5.1", info.Version)
	assert.Equal(t, "4f2a9c1e8b7d", info.Commit)
	assert.Equal(t, "2026-03-02T10:04:05Z", info.BuildTime)
	assert.Equal(t, "go1.24.1", info.GoVersion)
	assert.True(t, info.Dirty)
	assert.Contains(t, info.String(), "postsync 0.5.1 (commit: 4f2a9c1e8b7d-dirty, built: 2026-03-02T10:04:05Z, go1.24.1 ")
}

func TestResolve_LdflagsWinOverBuildInfo(t *testing.T) {
	stamp(t, "1.0.0", "2026-01-15T00:00:00Z", "c0ffee")

	info := resolve(vcsBuildInfo())
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "c0ffee", info.Commit)
	assert.Equal(t, "2026-01-15T00:00:00Z", info.BuildTime)
}

func TestResolve_DevelBuild(t *testing.T) {
	stamp(t, "dev", unknown, unknown)

	info := resolve(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, unknown, info.Commit)
	assert.False(t, info.Dirty)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestResolve_NoBuildInfo(t *testing.T) {
	stamp(t, "dev", unknown, unknown)

	info := resolve(nil)
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, unknown, info.BuildTime)
	assert.NotContains(t, info.String(), "-dirty")
}
