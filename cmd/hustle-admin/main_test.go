package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hustlehub/hustle-api/internal/migrate"
)

func TestIsLikelyRemoteHost(t *testing.T) {
	tests := map[string]bool{
		"":                 false,
		"localhost":        false,
		"127.0.0.1":        false,
		"::1":              false,
		"db.local":         false,
		"10.0.0.5":         true,
		"db.prod.internal": true,
	}
	for host, want := range tests {
		assert.Equal(t, want, isLikelyRemoteHost(host), host)
	}
}

func TestPrintMigrationStatus(t *testing.T) {
	applied := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, printMigrationStatus(&buf, []migrate.Migration{
		{Version: "0001_marketplace.sql", AppliedAt: &applied},
		{Version: "0002_notifications_reviews_messages.sql"},
	}))

	out := buf.String()
	assert.Contains(t, out, "0001_marketplace.sql")
	assert.Contains(t, out, "2025-03-01T09:00:00Z")
	assert.Contains(t, out, "pending")
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, confirm(strings.NewReader("yes\n"), &out, "reset db"))
	require.Error(t, confirm(strings.NewReader("\n"), &out, "reset db"))
	require.NoError(t, confirmTyped(strings.NewReader("db.prod\n"), &out, "db.prod"))
	require.Error(t, confirmTyped(strings.NewReader("nope\n"), &out, "db.prod"))
}

func TestParseFlags(t *testing.T) {
	opts, err := parseDBResetFlags([]string{"--yes", "--seed", "--timeout", "30s"})
	require.NoError(t, err)
	assert.True(t, opts.Yes)
	assert.True(t, opts.Seed)
	assert.Equal(t, 30*time.Second, opts.Timeout)

	_, err = parseMigrateFlags("migrate", []string{"--timeout", "0s"})
	require.Error(t, err)

	cache, err := parseClearCacheFlags([]string{"--dry-run"})
	require.NoError(t, err)
	assert.True(t, cache.DryRun)
	assert.Equal(t, defaultScanBatch, cache.Batch)

	_, err = parseClearCacheFlags([]string{"--batch", "0"})
	require.Error(t, err)
}

func TestPrintUsageListsCommands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printUsage(&buf))
	for name := range commands() {
		assert.Contains(t, buf.String(), name)
	}
}
