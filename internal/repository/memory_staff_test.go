package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

func TestMemoryStaffRepository(t *testing.T) {
	repo := NewMemoryStaffRepository()
	ctx := context.Background()

	admin := &domain.Staff{
		FirstName: "Laura",
		LastName:  "Mendez",
		Nickname:  "lau",
		Role:      domain.RoleAdministrator,
		Shift:     domain.ShiftEvening,
		Weekend:   true,
	}
	require.NoError(t, admin.Password.Set("s3cret-Pa55"))

	require.NoError(t, repo.Create(ctx, admin))
	assert.NotEqual(t, uuid.Nil, admin.ID)
	assert.False(t, admin.CreatedAt.IsZero())

	got, err := repo.GetByNickname(ctx, "lau")
	require.NoError(t, err)
	assert.Equal(t, "Admin (Weekend): lau", got.DisplayString())

	match, err := got.Password.Matches("s3cret-Pa55")
	require.NoError(t, err)
	assert.True(t, match)

	duplicate := &domain.Staff{Nickname: "lau", Role: domain.RoleConcessionsSeller}
	assert.ErrorIs(t, repo.Create(ctx, duplicate), domain.ErrStaffExists)

	_, err = repo.GetByNickname(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}
