package order_test

import (
	"testing"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T) *order.Order {
	t.Helper()

	origin, err := order.NewRoomOrigin(12)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), origin, nil, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newSent(t *testing.T) *order.Order {
	t.Helper()

	o := newDraft(t)
	require.NoError(t, o.ReplaceLines([]*order.Line{mustLine(t, "Cola", 2, 1200)}, time.Now().UTC()))
	require.NoError(t, o.Submit(time.Now().UTC()))
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validOrigin, _ := order.NewRoomOrigin(12)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create draft with all valid parameters", func(t *testing.T) {
		staffID := kernel.NewUUID()

		o, err := order.NewOrder(validID, validOrigin, &staffID, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, order.Draft, o.Status())
		assert.True(t, o.Origin().IsEqual(validOrigin))
		require.NotNil(t, o.CreatedBy())
		assert.True(t, o.CreatedBy().IsEqual(staffID))
		assert.Empty(t, o.Lines())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
		assert.Nil(t, o.ReadyAt())
	})

	t.Run("should allow anonymized owner", func(t *testing.T) {
		o, err := order.NewOrder(validID, validOrigin, nil, now)

		require.NoError(t, err)
		assert.Nil(t, o.CreatedBy())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validOrigin, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid origin", func(t *testing.T) {
		var invalidOrigin order.Origin

		o, err := order.NewOrder(validID, invalidOrigin, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "origin must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidOrigin order.Origin

		o, err := order.NewOrder(invalidID, invalidOrigin, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "origin must be created")
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("empty draft totals zero", func(t *testing.T) {
		o := newDraft(t)

		assert.Equal(t, 0, o.Total())
	})

	t.Run("total is sum of line subtotals", func(t *testing.T) {
		o := newDraft(t)
		lines := []*order.Line{
			mustLine(t, "Cola", 2, 1200),
			mustLine(t, "Empanada", 3, 2500),
		}
		require.NoError(t, o.ReplaceLines(lines, time.Now().UTC()))

		assert.Equal(t, 2*1200+3*2500, o.Total())
	})

	t.Run("total tracks wholesale replacement", func(t *testing.T) {
		o := newDraft(t)
		require.NoError(t, o.ReplaceLines([]*order.Line{mustLine(t, "Cola", 2, 1200)}, time.Now().UTC()))
		require.Equal(t, 2400, o.Total())

		require.NoError(t, o.ReplaceLines([]*order.Line{mustLine(t, "Cafe", 1, 1800)}, time.Now().UTC()))

		assert.Equal(t, 1800, o.Total())
	})
}

func TestOrder_ReplaceLines(t *testing.T) {
	t.Run("replaces lines while draft and bumps updated-at", func(t *testing.T) {
		o := newDraft(t)
		created := o.CreatedAt()
		later := created.Add(5 * time.Minute)

		err := o.ReplaceLines([]*order.Line{mustLine(t, "Cola", 1, 1200)}, later)

		require.NoError(t, err)
		assert.Len(t, o.Lines(), 1)
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("fails on sent order and keeps lines unchanged", func(t *testing.T) {
		o := newSent(t)
		before := o.Lines()

		err := o.ReplaceLines([]*order.Line{mustLine(t, "Cafe", 1, 1800)}, time.Now().UTC())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, before, o.Lines())
	})

	t.Run("fails on terminal orders", func(t *testing.T) {
		ready := newSent(t)
		require.NoError(t, ready.MarkReady(time.Now().UTC()))

		err := ready.ReplaceLines(nil, time.Now().UTC())
		require.ErrorIs(t, err, errs.ErrInvalidState)

		voided := newSent(t)
		require.NoError(t, voided.MarkVoid(time.Now().UTC()))

		err = voided.ReplaceLines(nil, time.Now().UTC())
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects invalid lines", func(t *testing.T) {
		o := newDraft(t)

		err := o.ReplaceLines([]*order.Line{{}}, time.Now().UTC())

		require.Error(t, err)
		assert.Empty(t, o.Lines())
	})
}

func TestOrder_Submit(t *testing.T) {
	t.Run("draft submits to sent", func(t *testing.T) {
		o := newDraft(t)
		later := o.CreatedAt().Add(time.Minute)

		err := o.Submit(later)

		require.NoError(t, err)
		assert.Equal(t, order.Sent, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("second submit fails and state stays sent", func(t *testing.T) {
		o := newDraft(t)
		require.NoError(t, o.Submit(time.Now().UTC()))

		err := o.Submit(time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Sent, o.Status())
	})
}

func TestOrder_MarkReady(t *testing.T) {
	t.Run("sent becomes ready with ready-at stamped", func(t *testing.T) {
		o := newSent(t)
		now := time.Now().UTC()

		err := o.MarkReady(now)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		require.NotNil(t, o.ReadyAt())
		assert.Equal(t, now, *o.ReadyAt())
	})

	t.Run("draft cannot be marked ready", func(t *testing.T) {
		o := newDraft(t)

		err := o.MarkReady(time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Draft, o.Status())
	})
}

func TestOrder_TerminalTransitionsAreExclusive(t *testing.T) {
	t.Run("ready wins then void fails", func(t *testing.T) {
		o := newSent(t)
		require.NoError(t, o.MarkReady(time.Now().UTC()))

		err := o.MarkVoid(time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("void wins then ready fails", func(t *testing.T) {
		o := newSent(t)
		require.NoError(t, o.MarkVoid(time.Now().UTC()))

		err := o.MarkReady(time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Void, o.Status())
		assert.Nil(t, o.ReadyAt())
	})
}

func TestOrder_SetKitchenNotes(t *testing.T) {
	t.Run("editable while draft", func(t *testing.T) {
		o := newDraft(t)

		require.NoError(t, o.SetKitchenNotes("rush, table waiting", time.Now().UTC()))

		assert.Equal(t, "rush, table waiting", o.KitchenNotes())
	})

	t.Run("frozen after submit", func(t *testing.T) {
		o := newSent(t)

		err := o.SetKitchenNotes("too late", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRestoreOrder(t *testing.T) {
	origin, _ := order.NewRoomOrigin(7)
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(10 * time.Minute)

	t.Run("restores sent order with lines", func(t *testing.T) {
		lines := []*order.Line{mustLine(t, "Cola", 2, 1200)}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), origin, order.Sent, nil, "no onions", lines, created, updated, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Sent, o.Status())
		assert.Equal(t, "no onions", o.KitchenNotes())
		assert.Len(t, o.Lines(), 1)
		assert.Equal(t, 2400, o.Total())
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, updated, o.UpdatedAt())
	})

	t.Run("restores ready order with ready-at", func(t *testing.T) {
		readyAt := updated.Add(time.Minute)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), origin, order.Ready, nil, "", nil, created, updated, &readyAt)

		require.NoError(t, err)
		require.NotNil(t, o.ReadyAt())
		assert.Equal(t, readyAt, *o.ReadyAt())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), origin, order.Status(42), nil, "", nil, created, updated, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("rejects invalid stored line", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), origin, order.Draft, nil, "", []*order.Line{{}}, created, updated, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		o := &order.Order{}

		require.Error(t, o.Validate())
	})
}
