// Package pubsub publishes subscription change events to the worker, either
// through Google Pub/Sub or through a local HTTP push that mimics it.
package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"saaskit/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every published message.
const (
	AttrEventID   = "event_id"
	AttrUserID    = "user_id"
	AttrSource    = "source"
	AttrRequestID = "request_id"
)

// PushEnvelope is the body Pub/Sub push subscriptions POST to an HTTP endpoint.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeEvent extracts the subscription event carried by a push envelope.
func (e *PushEnvelope) DecodeEvent() (*service.SubscriptionChangedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.SubscriptionChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not a subscription event")
	}
	if event.UserID == "" {
		return nil, errors.New("subscription event without user_id")
	}

	if event.RequestID == "" {
		event.RequestID = e.Message.Attributes[AttrRequestID]
	}

	return &event, nil
}

func eventAttributes(event *service.SubscriptionChangedEvent) map[string]string {
	attributes := map[string]string{
		AttrUserID: event.UserID,
		AttrSource: event.Source,
	}
	if event.EventID != "" {
		attributes[AttrEventID] = event.EventID
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
