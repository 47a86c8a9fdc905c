package order_test

import (
	"testing"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Draft, "Draft"},
		{order.Sent, "Sent"},
		{order.Ready, "Ready"},
		{order.Void, "Void"},
		{order.Status(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{order.Draft, order.Sent, order.Ready, order.Void} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown fails", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("out of range fails", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_Submit(t *testing.T) {
	t.Run("draft submits to sent", func(t *testing.T) {
		newStatus, err := order.Draft.Submit()

		require.NoError(t, err)
		assert.Equal(t, order.Sent, newStatus)
	})

	t.Run("all other statuses fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Sent, order.Ready, order.Void} {
			_, err := s.Submit()

			require.Error(t, err, "submit from %s should fail", s)
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("sent becomes ready", func(t *testing.T) {
		newStatus, err := order.Sent.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, order.Ready, newStatus)
	})

	t.Run("all other statuses fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Draft, order.Ready, order.Void} {
			_, err := s.MarkReady()

			require.Error(t, err, "mark ready from %s should fail", s)
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestStatus_MarkVoid(t *testing.T) {
	t.Run("sent becomes void", func(t *testing.T) {
		newStatus, err := order.Sent.MarkVoid()

		require.NoError(t, err)
		assert.Equal(t, order.Void, newStatus)
	})

	t.Run("all other statuses fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Draft, order.Ready, order.Void} {
			_, err := s.MarkVoid()

			require.Error(t, err, "void from %s should fail", s)
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Draft.IsTerminal())
	assert.False(t, order.Sent.IsTerminal())
	assert.True(t, order.Ready.IsTerminal())
	assert.True(t, order.Void.IsTerminal())
}

func TestStatus_AllowsLineEdit(t *testing.T) {
	assert.True(t, order.Draft.AllowsLineEdit())
	assert.False(t, order.Sent.AllowsLineEdit())
	assert.False(t, order.Ready.AllowsLineEdit())
	assert.False(t, order.Void.AllowsLineEdit())
}
