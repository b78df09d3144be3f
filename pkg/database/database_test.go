package database_test

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/pkg/database"
	testdb "github.com/datalens-ai/datalens/test/database"
)

func TestHealth(t *testing.T) {
	client := testdb.NewTestClient(t)

	status, err := database.Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.OpenConnections, 1)
}

func TestIndexCreationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	drv := entsql.OpenDB(dialect.Postgres, client.DB())
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))
}

func TestOneActiveTurnPerReport(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	report, err := client.Report.Create().
		SetID(uuid.New().String()).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Completion.Create().
		SetID(uuid.New().String()).
		SetReportID(report.ID).
		SetRole(completion.RoleSystem).
		SetStatus(completion.StatusInProgress).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Completion.Create().
		SetID(uuid.New().String()).
		SetReportID(report.ID).
		SetRole(completion.RoleSystem).
		SetStatus(completion.StatusInProgress).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err), "second in_progress system completion must be rejected")

	// Terminal turns do not hold the slot.
	_, err = client.Completion.Create().
		SetID(uuid.New().String()).
		SetReportID(report.ID).
		SetRole(completion.RoleSystem).
		SetStatus(completion.StatusSuccess).
		Save(ctx)
	require.NoError(t, err)
}
