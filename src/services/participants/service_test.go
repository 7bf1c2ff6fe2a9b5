package participants

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/store"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParticipant() models.Participant {
	return models.Participant{
		Name:      "Somchai Jaidee",
		Email:     "somchai@example.com",
		CollegeID: "CS101",
		College:   "Demo University",
		Phone:     "+6612345678",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("TestRegisterAssignsQRPayload", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		created, err := svc.Register(ctx, validParticipant())
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, created.ID, created.QRCode)
		assert.False(t, created.RegisteredAt.IsZero())
	})

	t.Run("TestRegisterNormalizesEmail", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		p := validParticipant()
		p.Email = "  Somchai@Example.COM "
		created, err := svc.Register(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "somchai@example.com", created.Email)
	})

	t.Run("TestDuplicateEmailRejected", func(t *testing.T) {
		// Scenario: ลงทะเบียนสองคนด้วย email เดียวกัน → คนที่สองถูกปฏิเสธ
		svc := NewService(store.NewMemoryStore())

		_, err := svc.Register(ctx, validParticipant())
		require.NoError(t, err)

		second := validParticipant()
		second.CollegeID = "CS102" // email ซ้ำอย่างเดียวก็พอ
		_, err = svc.Register(ctx, second)
		assert.ErrorIs(t, err, store.ErrDuplicateRegistration)
	})

	t.Run("TestMissingFieldsRejected", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		p := validParticipant()
		p.Email = "not-an-email"
		_, err := svc.Register(ctx, p)
		assert.Error(t, err)

		p = validParticipant()
		p.Name = ""
		_, err = svc.Register(ctx, p)
		assert.Error(t, err)
	})
}

func TestQRCodePNG(t *testing.T) {
	ctx := context.Background()

	t.Run("TestGeneratesPNG", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		created, err := svc.Register(ctx, validParticipant())
		require.NoError(t, err)

		png, err := svc.QRCodePNG(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	})

	t.Run("TestUnknownParticipant", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		_, err := svc.QRCodePNG(ctx, "ghost")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
