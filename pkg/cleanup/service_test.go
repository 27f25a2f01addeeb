package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/recapcrew/recap/ent"
	"github.com/recapcrew/recap/ent/job"
	"github.com/recapcrew/recap/pkg/config"
	"github.com/recapcrew/recap/pkg/models"
	"github.com/recapcrew/recap/pkg/services"
	testdb "github.com/recapcrew/recap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		JobRetentionDays: 30,
		CleanupInterval:  1 * time.Hour,
	}
}

func createFinishedJob(t *testing.T, client *ent.Client, status job.Status, age time.Duration) *ent.Job {
	t.Helper()
	now := time.Now()
	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetJobType(models.JobTypeChunkSummary).
		SetStatus(status).
		SetCreatedAt(now.Add(-age)).
		SetCompletedAt(now.Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return j
}

func TestService_DeletesOldFinishedJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobService := services.NewJobService(client.Client)
	ctx := context.Background()

	old := createFinishedJob(t, client.Client, job.StatusCompleted, 40*24*time.Hour)
	oldFailed := createFinishedJob(t, client.Client, job.StatusFailed, 40*24*time.Hour)

	svc := NewService(retentionConfig(), jobService)
	svc.sweep(ctx)

	_, err := jobService.GetJob(ctx, old.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = jobService.GetJob(ctx, oldFailed.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobService := services.NewJobService(client.Client)
	ctx := context.Background()

	recent := createFinishedJob(t, client.Client, job.StatusCompleted, 24*time.Hour)

	svc := NewService(retentionConfig(), jobService)
	svc.sweep(ctx)

	_, err := jobService.GetJob(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestService_PreservesInFlightJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobService := services.NewJobService(client.Client)
	ctx := context.Background()

	// Old but still pending: age alone must not delete it.
	j, err := client.Client.Job.Create().
		SetID(uuid.New().String()).
		SetJobType(models.JobTypeComposeSummary).
		SetCreatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), jobService)
	svc.sweep(ctx)

	_, err = jobService.GetJob(ctx, j.ID)
	assert.NoError(t, err)
}

func TestService_FallsBackToCreatedAt(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobService := services.NewJobService(client.Client)
	ctx := context.Background()

	// Terminal job without a completion timestamp, e.g. failed by
	// startup orphan cleanup.
	j, err := client.Client.Job.Create().
		SetID(uuid.New().String()).
		SetJobType(models.JobTypeChunkSummary).
		SetStatus(job.StatusFailed).
		SetCreatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), jobService)
	svc.sweep(ctx)

	_, err = jobService.GetJob(ctx, j.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobService := services.NewJobService(client.Client)

	cfg := retentionConfig()
	cfg.CleanupInterval = 50 * time.Millisecond

	svc := NewService(cfg, jobService)
	svc.Start(context.Background())
	time.Sleep(120 * time.Millisecond)
	svc.Stop()
}
