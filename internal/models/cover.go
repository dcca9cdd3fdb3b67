package models

import (
	"fmt"
	"time"
)

// DefaultGenderPreference is filled in for covers stored before the
// genderPreference field existed.
const DefaultGenderPreference = "Unisex"

// Cover represents one sellable phone cover variant, fully normalized.
type Cover struct {
	ID               string    `json:"id" bson:"_id"`
	ModelName        string    `json:"modelName" bson:"modelName"`
	CoverType        string    `json:"coverType" bson:"coverType"`
	Color            string    `json:"color" bson:"color"`
	Price            float64   `json:"price" bson:"price"`
	Stock            int       `json:"stock" bson:"stock"`
	ImageURL         string    `json:"imageUrl" bson:"imageUrl"`
	GenderPreference string    `json:"genderPreference" bson:"genderPreference"`
	Tags             []string  `json:"tags" bson:"tags"`
	CategoryIDs      []string  `json:"category_ids" bson:"categoryIds"`
	IsAvailable      bool      `json:"is_available" bson:"isAvailable"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CoverCreate carries the validated fields of a new cover. The image itself
// travels separately as a multipart file and becomes ImageURL after upload.
type CoverCreate struct {
	ModelName        string   `validate:"required"`
	CoverType        string   `validate:"required"`
	Color            string   `validate:"required"`
	Price            float64  `validate:"required,gt=0"`
	Stock            int      `validate:"gte=0"`
	GenderPreference string   `validate:"omitempty"`
	Tags             []string
	CategoryIDs      []string
	IsAvailable      bool
}

// CoverUpdate is a partial update payload. Pointer fields distinguish
// "omitted" from "explicitly set to the zero value": stock=0 in the request
// body sets stock to 0, while an absent stock leaves it untouched.
type CoverUpdate struct {
	ModelName        *string   `json:"modelName"`
	CoverType        *string   `json:"coverType"`
	Color            *string   `json:"color"`
	Price            *float64  `json:"price" validate:"omitempty,gt=0"`
	Stock            *int      `json:"stock" validate:"omitempty,gte=0"`
	GenderPreference *string   `json:"genderPreference"`
	Tags             *[]string `json:"tags"`
	CategoryIDs      *[]string `json:"category_ids"`
	IsAvailable      *bool     `json:"is_available"`
}

// HasFields reports whether at least one recognized field is present.
func (u CoverUpdate) HasFields() bool {
	return u.ModelName != nil || u.CoverType != nil || u.Color != nil ||
		u.Price != nil || u.Stock != nil || u.GenderPreference != nil ||
		u.Tags != nil || u.CategoryIDs != nil || u.IsAvailable != nil
}

// CoverFilter holds the optional catalog listing filters. Empty strings,
// nil slices and nil bounds mean "no constraint", never "match nothing".
type CoverFilter struct {
	Model       string
	CoverTypes  []string
	Colors      []string
	MinPrice    *float64
	MaxPrice    *float64
	Gender      string
	CategoryIDs []string
	AdminMode   bool
}

// RawCover mirrors a cover document as stored. Optional fields are pointers
// so that a field absent from an old document is distinguishable from one
// explicitly stored as its zero value.
type RawCover struct {
	ID               string     `bson:"_id"`
	ModelName        *string    `bson:"modelName"`
	CoverType        *string    `bson:"coverType"`
	Color            *string    `bson:"color"`
	Price            *float64   `bson:"price"`
	Stock            *int       `bson:"stock"`
	ImageURL         *string    `bson:"imageUrl"`
	GenderPreference *string    `bson:"genderPreference"`
	Tags             []string   `bson:"tags"`
	CategoryIDs      []string   `bson:"categoryIds"`
	IsAvailable      *bool      `bson:"isAvailable"`
	CreatedAt        *time.Time `bson:"createdAt"`
	UpdatedAt        *time.Time `bson:"updatedAt"`
}

// NormalizeCover reconciles a stored document with the current schema.
// Optional fields added after the document was written get their documented
// defaults; timestamps fall back to the normalization time because the true
// write time is unrecoverable. A missing required field yields ErrInvalidRecord.
func NormalizeCover(raw RawCover) (*Cover, error) {
	switch {
	case raw.ID == "":
		return nil, fmt.Errorf("%w: missing _id", ErrInvalidRecord)
	case raw.ModelName == nil:
		return nil, fmt.Errorf("%w: cover %s missing modelName", ErrInvalidRecord, raw.ID)
	case raw.CoverType == nil:
		return nil, fmt.Errorf("%w: cover %s missing coverType", ErrInvalidRecord, raw.ID)
	case raw.Color == nil:
		return nil, fmt.Errorf("%w: cover %s missing color", ErrInvalidRecord, raw.ID)
	case raw.Price == nil:
		return nil, fmt.Errorf("%w: cover %s missing price", ErrInvalidRecord, raw.ID)
	case raw.Stock == nil:
		return nil, fmt.Errorf("%w: cover %s missing stock", ErrInvalidRecord, raw.ID)
	case raw.ImageURL == nil:
		return nil, fmt.Errorf("%w: cover %s missing imageUrl", ErrInvalidRecord, raw.ID)
	}

	cover := &Cover{
		ID:               raw.ID,
		ModelName:        *raw.ModelName,
		CoverType:        *raw.CoverType,
		Color:            *raw.Color,
		Price:            *raw.Price,
		Stock:            *raw.Stock,
		ImageURL:         *raw.ImageURL,
		GenderPreference: DefaultGenderPreference,
		Tags:             []string{},
		CategoryIDs:      []string{},
		IsAvailable:      true,
	}

	if raw.GenderPreference != nil {
		cover.GenderPreference = *raw.GenderPreference
	}
	if raw.Tags != nil {
		cover.Tags = raw.Tags
	}
	if raw.CategoryIDs != nil {
		cover.CategoryIDs = raw.CategoryIDs
	}
	if raw.IsAvailable != nil {
		cover.IsAvailable = *raw.IsAvailable
	}

	now := time.Now().UTC()
	if raw.CreatedAt != nil {
		cover.CreatedAt = *raw.CreatedAt
	} else {
		cover.CreatedAt = now
	}
	if raw.UpdatedAt != nil {
		cover.UpdatedAt = *raw.UpdatedAt
	} else {
		cover.UpdatedAt = now
	}

	return cover, nil
}
