package volunteers

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/store"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVolunteer() models.Volunteer {
	return models.Volunteer{
		Name:        "Alice Johnson",
		Email:       "alice@volunteer.com",
		VolunteerID: "VOL-001",
	}
}

func TestVolunteerRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("TestRegisterAndAuthenticate", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		created, err := svc.Register(ctx, validVolunteer())
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Nil(t, created.LastLogin)

		v, err := svc.Authenticate(ctx, "Alice@Volunteer.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, v.ID)

		// login stamp ถูกบันทึก
		again, err := svc.Authenticate(ctx, "alice@volunteer.com")
		require.NoError(t, err)
		assert.NotNil(t, again.LastLogin)
	})

	t.Run("TestDuplicateEmailRejected", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		_, err := svc.Register(ctx, validVolunteer())
		require.NoError(t, err)

		dup := validVolunteer()
		dup.VolunteerID = "VOL-002"
		_, err = svc.Register(ctx, dup)
		assert.ErrorIs(t, err, store.ErrDuplicateRegistration)
	})

	t.Run("TestUnknownEmailRejected", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		_, err := svc.Authenticate(ctx, "nobody@volunteer.com")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
