package models

import "time"

// Notification statuses. A request starts Pending and is moved along by an
// admin; records are never deleted in the normal flow.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Notification is a pre-order interest record left by a storefront visitor.
type Notification struct {
	ID        string    `json:"id" bson:"_id"`
	Phone     string    `json:"phone" bson:"phone"`
	ModelName string    `json:"modelName" bson:"modelName"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// NotificationCreate is the public request body for registering interest.
type NotificationCreate struct {
	Phone     string `json:"phone" validate:"required,min=10,max=15"`
	ModelName string `json:"modelName" validate:"required"`
}

// NotificationStatusUpdate is the admin-facing status transition body.
type NotificationStatusUpdate struct {
	Status string `json:"status"`
}

// RawNotification mirrors a stored notification document. Status is a pointer
// because records written before the status field existed lack it.
type RawNotification struct {
	ID        string     `bson:"_id"`
	Phone     *string    `bson:"phone"`
	ModelName *string    `bson:"modelName"`
	Status    *string    `bson:"status"`
	CreatedAt *time.Time `bson:"createdAt"`
}

// NormalizeNotification applies the same schema-drift rules as NormalizeCover:
// an absent status defaults to Pending, an absent createdAt to now, and a
// missing required field marks the record invalid.
func NormalizeNotification(raw RawNotification) (*Notification, error) {
	switch {
	case raw.ID == "":
		return nil, ErrInvalidRecord
	case raw.Phone == nil:
		return nil, ErrInvalidRecord
	case raw.ModelName == nil:
		return nil, ErrInvalidRecord
	}

	n := &Notification{
		ID:        raw.ID,
		Phone:     *raw.Phone,
		ModelName: *raw.ModelName,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if raw.Status != nil {
		n.Status = *raw.Status
	}
	if raw.CreatedAt != nil {
		n.CreatedAt = *raw.CreatedAt
	}
	return n, nil
}
