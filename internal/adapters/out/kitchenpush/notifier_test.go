package kitchenpush

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittedOrder(t *testing.T) *order.Order {
	t.Helper()

	origin, err := order.NewRoomOrigin(7)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), origin, nil, time.Now().UTC())
	require.NoError(t, err)

	price, err := kernel.NewPrice(5500)
	require.NoError(t, err)
	quantity, err := kernel.NewQuantity(2)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), nil, "Milanesa napolitana", price, quantity, "sin papas")
	require.NoError(t, err)

	require.NoError(t, aggregate.ReplaceLines([]*order.Line{line}, time.Now().UTC()))
	require.NoError(t, aggregate.Submit(time.Now().UTC()))

	return aggregate
}

func Test_Notifier_Notify_PostsPayload(t *testing.T) {
	aggregate := submittedOrder(t)

	var (
		gotPath    string
		gotToken   string
		gotPayload pushPayload
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get(relayTokenHeader)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier, err := NewNotifier(server.URL, "relay-secret")
	require.NoError(t, err)

	require.NoError(t, notifier.Notify(t.Context(), aggregate))

	assert.Equal(t, "/kitchen/ingest", gotPath)
	assert.Equal(t, "relay-secret", gotToken)
	assert.Equal(t, aggregate.ID().String(), gotPayload.OrderID)
	assert.Equal(t, "Room 7", gotPayload.Origin)
	require.Len(t, gotPayload.Items, 1)
	assert.Equal(t, "Milanesa napolitana", gotPayload.Items[0].Name)
	assert.Equal(t, 2, gotPayload.Items[0].Quantity)
	assert.Equal(t, "sin papas", gotPayload.Items[0].Notes)
}

func Test_Notifier_Notify_RejectedPush_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier, err := NewNotifier(server.URL, "")
	require.NoError(t, err)

	err = notifier.Notify(t.Context(), submittedOrder(t))
	assert.ErrorContains(t, err, "kitchen push rejected")
}

func Test_Notifier_Notify_CanceledContext_ReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier, err := NewNotifier(server.URL, "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	assert.Error(t, notifier.Notify(ctx, submittedOrder(t)))
}

func Test_NewNotifier_RequiresBaseURL(t *testing.T) {
	_, err := NewNotifier("", "token")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
