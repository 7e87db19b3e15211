package migrate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_Ordered(t *testing.T) {
	files, err := migrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for i := 1; i < len(files); i++ {
		assert.Less(t, files[i-1], files[i])
	}
	for _, f := range files {
		assert.True(t, strings.HasSuffix(f, ".sql"))
	}
}

func TestMigrations_DeclareLifecycleConstraints(t *testing.T) {
	var all strings.Builder
	files, err := migrationFiles()
	require.NoError(t, err)
	for _, f := range files {
		b, readErr := migrationsFS.ReadFile("migrations/" + f)
		require.NoError(t, readErr)
		all.Write(b)
	}
	schema := all.String()

	for _, name := range []string{
		"bids_job_hustler_key",
		"bids_one_accepted_per_job",
		"reviews_job_id_key",
		"jobs_assignment_check",
		"bid_status_history_append_only",
		"CREATE OR REPLACE VIEW job_listings",
	} {
		assert.Contains(t, schema, name)
	}
}
