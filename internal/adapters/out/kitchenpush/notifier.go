// Package kitchenpush notifies the kitchen display endpoint that a comanda
// was submitted. The push is advisory: the kitchen queue endpoint remains
// the source of truth, so callers treat failures as non-fatal.
package kitchenpush

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

const relayTokenHeader = "X-Relay-Token"

// Notifier pushes submitted comandas to the kitchen ingest endpoint.
type Notifier struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewNotifier creates a kitchen push notifier for the given base URL.
// The token is sent with every push so the ingest endpoint can tell relay
// traffic from staff traffic.
func NewNotifier(baseURL string, token string) (*Notifier, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Notifier{
		baseURL: baseURL,
		token:   token,
		client:  http.DefaultClient,
	}, nil
}

type pushItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type pushPayload struct {
	OrderID      string     `json:"order_id"`
	Origin       string     `json:"origin"`
	KitchenNotes string     `json:"kitchen_notes,omitempty"`
	Items        []pushItem `json:"items"`
}

// Notify posts the submitted comanda to the kitchen ingest endpoint.
// Delivery is at most once; the caller decides how to handle failure.
func (n *Notifier) Notify(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	payload := pushPayload{
		OrderID:      aggregate.ID().String(),
		Origin:       aggregate.Origin().String(),
		KitchenNotes: aggregate.KitchenNotes(),
		Items:        make([]pushItem, 0, len(aggregate.Lines())),
	}
	for _, line := range aggregate.Lines() {
		payload.Items = append(payload.Items, pushItem{
			Name:     line.Name(),
			Quantity: line.Quantity().Value(),
			Notes:    line.Notes(),
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/kitchen/ingest", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set(relayTokenHeader, n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("kitchen push rejected: %s", resp.Status)
	}

	return nil
}
