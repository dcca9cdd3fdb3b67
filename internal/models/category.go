package models

import "time"

// Category is a grouping label for covers. Covers reference categories by id;
// the references are weak and may dangle after a category is deleted.
type Category struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// CategoryCreate is the request body for creating a category.
// Name uniqueness is case-sensitive and checked only at creation time.
type CategoryCreate struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=500"`
}
