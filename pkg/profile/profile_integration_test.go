package profile_test

import (
	"context"
	"testing"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/inttest"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/clinicdesk/calendar/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	t.Parallel()

	db := inttest.SetupDB(t)
	repository := profile.NewRepository(db)
	ctx := context.Background()

	created := model.UserProfile{FullName: "Dr. Sarah Johnson", Email: "sarah.johnson@example.com", Specialty: "Cardiologist"}
	require.NoError(t, repository.Create(ctx, &created))
	require.NotZero(t, created.ID)

	updated, err := repository.Update(ctx, created.ID, model.UserProfile{FullName: "Dr. Sarah Johnson", Specialty: "Cardiac Surgeon"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Cardiac Surgeon", updated.Specialty)
	assert.Empty(t, updated.Email)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Millisecond)

	_, err = repository.Update(ctx, 999, model.UserProfile{FullName: "Nobody"})
	assert.True(t, errdef.IsNotFound(err))
	_, err = repository.FindByID(ctx, 999)
	assert.True(t, errdef.IsNotFound(err))
}
