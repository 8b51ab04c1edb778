package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventApplicationReceived      = "application_received"
	EventApplicationStatusChanged = "application_status_changed"
)

type ApplicationEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

// Notifier pushes application events to the owning company's dashboard.
// A nil Notifier is a valid no-op, so usecases never need to branch.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyApplication(companyID uuid.UUID, eventType string, applicationID, jobID uuid.UUID, jobTitle, status string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationEvent{
		Type:          eventType,
		ApplicationID: applicationID.String(),
		JobID:         jobID.String(),
		JobTitle:      jobTitle,
		Status:        status,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Send(companyID, b)
}
