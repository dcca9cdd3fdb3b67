package repositories

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"covershop/internal/models"
)

// BuildCoverQuery translates catalog filter parameters into a Mongo filter
// document. All supplied constraints combine with logical AND; an empty string,
// nil slice or nil bound imposes no constraint. Unless AdminMode is set, an
// isAvailable==true condition is always added so the storefront never sees
// unavailable covers.
func BuildCoverQuery(f models.CoverFilter) bson.M {
	query := bson.M{}

	if f.Model != "" {
		// Case-insensitive substring match on the model name.
		query["modelName"] = bson.M{"$regex": f.Model, "$options": "i"}
	}
	if len(f.CoverTypes) > 0 {
		query["coverType"] = bson.M{"$in": f.CoverTypes}
	}
	if len(f.Colors) > 0 {
		query["color"] = bson.M{"$in": f.Colors}
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	if gender := strings.TrimSpace(f.Gender); gender != "" {
		query["genderPreference"] = gender
	}
	if len(f.CategoryIDs) > 0 {
		// $in against an array field matches any intersection.
		query["categoryIds"] = bson.M{"$in": f.CategoryIDs}
	}

	if !f.AdminMode {
		query["isAvailable"] = true
	}

	return query
}

// BuildCoverUpdate builds the $set document for a partial update. Only fields
// present in the payload are written, so an explicit zero value (stock=0) is
// applied while an omitted field is untouched. updatedAt is always refreshed.
func BuildCoverUpdate(u models.CoverUpdate, now time.Time) bson.M {
	set := bson.M{}
	if u.ModelName != nil {
		set["modelName"] = *u.ModelName
	}
	if u.CoverType != nil {
		set["coverType"] = *u.CoverType
	}
	if u.Color != nil {
		set["color"] = *u.Color
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Stock != nil {
		set["stock"] = *u.Stock
	}
	if u.GenderPreference != nil {
		set["genderPreference"] = *u.GenderPreference
	}
	if u.Tags != nil {
		set["tags"] = *u.Tags
	}
	if u.CategoryIDs != nil {
		set["categoryIds"] = *u.CategoryIDs
	}
	if u.IsAvailable != nil {
		set["isAvailable"] = *u.IsAvailable
	}
	set["updatedAt"] = now
	return set
}
