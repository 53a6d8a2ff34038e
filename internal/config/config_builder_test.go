package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation: a zero-value StructuredConfig has no DSN.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://localhost/courses"}},
		},
		&StructuredConfig{
			Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/courses", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// TestBuild_FirstNonZeroFieldWins verifies mergo's merge semantics: a field
// already set by an earlier source is not overridden by a later one.
func TestBuild_FirstNonZeroFieldWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://env/courses"}},
			Server:  Server{HTTPAddress: "localhost:8080"},
		},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://flags/courses"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/courses", cfg.Storage.DB.DSN)
}

// TestBuild_ValidationFailure verifies that a merged config missing the
// server address is rejected.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/courses"}},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}
