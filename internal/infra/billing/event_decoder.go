package billing

import (
	"bytes"
	"encoding/json"
	"time"

	"saaskit/internal/domain/service"
	"saaskit/internal/errors"

	"github.com/stripe/stripe-go/v82"
)

// expandableID accepts either a bare id or an expanded object carrying an id.
type expandableID string

func (e *expandableID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*e = ""

		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*e = expandableID(id)

		return nil
	}

	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*e = expandableID(obj.ID)

	return nil
}

type checkoutSessionPayload struct {
	ID                string            `json:"id"`
	Customer          expandableID      `json:"customer"`
	ClientReferenceID string            `json:"client_reference_id"`
	Metadata          map[string]string `json:"metadata"`
}

type subscriptionPayload struct {
	ID                 string       `json:"id"`
	Customer           expandableID `json:"customer"`
	Status             string       `json:"status"`
	CurrentPeriodStart int64        `json:"current_period_start"`
	CurrentPeriodEnd   int64        `json:"current_period_end"`
	Items              struct {
		Data []struct {
			CurrentPeriodStart int64 `json:"current_period_start"`
			CurrentPeriodEnd   int64 `json:"current_period_end"`
		} `json:"data"`
	} `json:"items"`
}

// period prefers the top-level fields and falls back to the first item,
// where newer API versions moved them.
func (s *subscriptionPayload) period() (start, end *time.Time) {
	startUnix, endUnix := s.CurrentPeriodStart, s.CurrentPeriodEnd
	if (startUnix == 0 || endUnix == 0) && len(s.Items.Data) > 0 {
		startUnix, endUnix = s.Items.Data[0].CurrentPeriodStart, s.Items.Data[0].CurrentPeriodEnd
	}

	return unixTime(startUnix), unixTime(endUnix)
}

type invoicePayload struct {
	Subscription expandableID `json:"subscription"`
	Parent       *struct {
		SubscriptionDetails *struct {
			Subscription expandableID `json:"subscription"`
		} `json:"subscription_details"`
	} `json:"parent"`
}

func (i *invoicePayload) subscriptionID() string {
	if i.Parent != nil && i.Parent.SubscriptionDetails != nil && i.Parent.SubscriptionDetails.Subscription != "" {
		return string(i.Parent.SubscriptionDetails.Subscription)
	}

	return string(i.Subscription)
}

func unixTime(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()

	return &t
}

// decodeEvent maps a verified provider event onto the domain billing event.
// Unknown types decode to an event without payload.
func decodeEvent(id, eventType string, data *stripe.EventData) (*service.BillingEvent, error) {
	event := &service.BillingEvent{ID: id, Type: service.BillingEventType(eventType)}

	var raw json.RawMessage
	if data != nil {
		raw = data.Raw
	}

	switch event.Type {
	case service.BillingCheckoutCompleted:
		var session checkoutSessionPayload
		if err := json.Unmarshal(raw, &session); err != nil {
			return nil, errors.Wrap(err, "failed to decode checkout session")
		}
		userID := session.Metadata[MetadataUserID]
		if userID == "" {
			userID = session.ClientReferenceID
		}
		event.Checkout = &service.CheckoutCompleted{
			UserID:     userID,
			Plan:       session.Metadata[MetadataPlan],
			CustomerID: string(session.Customer),
		}

	case service.BillingSubscriptionCreated, service.BillingSubscriptionUpdated, service.BillingSubscriptionDeleted:
		var sub subscriptionPayload
		if err := json.Unmarshal(raw, &sub); err != nil {
			return nil, errors.Wrap(err, "failed to decode subscription")
		}
		start, end := sub.period()
		event.Subscription = &service.ProviderSubscription{
			ID:          sub.ID,
			CustomerID:  string(sub.Customer),
			Status:      sub.Status,
			PeriodStart: start,
			PeriodEnd:   end,
		}

	case service.BillingInvoicePaymentPaid, service.BillingInvoicePaymentFailed:
		var invoice invoicePayload
		if err := json.Unmarshal(raw, &invoice); err != nil {
			return nil, errors.Wrap(err, "failed to decode invoice")
		}
		event.Invoice = &service.ProviderInvoice{SubscriptionID: invoice.subscriptionID()}
	}

	return event, nil
}
