package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"covershop/internal/models"
	"covershop/internal/repositories"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildCoverQuery_Empty(t *testing.T) {
	query := repositories.BuildCoverQuery(models.CoverFilter{})

	// An empty filter still hides unavailable covers from the storefront.
	assert.Equal(t, bson.M{"isAvailable": true}, query)
}

func TestBuildCoverQuery_AdminModeUnfiltersAvailability(t *testing.T) {
	query := repositories.BuildCoverQuery(models.CoverFilter{AdminMode: true})
	assert.Empty(t, query)

	query = repositories.BuildCoverQuery(models.CoverFilter{AdminMode: true, Model: "iPhone"})
	assert.NotContains(t, query, "isAvailable")
}

func TestBuildCoverQuery_ModelSubstring(t *testing.T) {
	query := repositories.BuildCoverQuery(models.CoverFilter{Model: "iPhone 13"})

	assert.Equal(t, bson.M{"$regex": "iPhone 13", "$options": "i"}, query["modelName"])
}

func TestBuildCoverQuery_SetFilters(t *testing.T) {
	query := repositories.BuildCoverQuery(models.CoverFilter{
		CoverTypes:  []string{"Silicone", "Leather"},
		Colors:      []string{"Black"},
		CategoryIDs: []string{"cat-1", "cat-2"},
	})

	assert.Equal(t, bson.M{"$in": []string{"Silicone", "Leather"}}, query["coverType"])
	assert.Equal(t, bson.M{"$in": []string{"Black"}}, query["color"])
	assert.Equal(t, bson.M{"$in": []string{"cat-1", "cat-2"}}, query["categoryIds"])
}

func TestBuildCoverQuery_PriceRange(t *testing.T) {
	// Both bounds merge into a single range condition.
	query := repositories.BuildCoverQuery(models.CoverFilter{
		MinPrice: floatPtr(100),
		MaxPrice: floatPtr(500),
	})
	assert.Equal(t, bson.M{"$gte": 100.0, "$lte": 500.0}, query["price"])

	// Either bound may be supplied alone.
	query = repositories.BuildCoverQuery(models.CoverFilter{MinPrice: floatPtr(100)})
	assert.Equal(t, bson.M{"$gte": 100.0}, query["price"])

	query = repositories.BuildCoverQuery(models.CoverFilter{MaxPrice: floatPtr(500)})
	assert.Equal(t, bson.M{"$lte": 500.0}, query["price"])
}

func TestBuildCoverQuery_GenderTrimmed(t *testing.T) {
	// A blank or whitespace-only gender means "parameter absent".
	query := repositories.BuildCoverQuery(models.CoverFilter{Gender: "   "})
	assert.NotContains(t, query, "genderPreference")

	query = repositories.BuildCoverQuery(models.CoverFilter{Gender: " Ladies "})
	assert.Equal(t, "Ladies", query["genderPreference"])
}

func TestBuildCoverQuery_EmptySlicesImposeNoConstraint(t *testing.T) {
	query := repositories.BuildCoverQuery(models.CoverFilter{
		CoverTypes:  []string{},
		Colors:      []string{},
		CategoryIDs: []string{},
	})

	assert.Equal(t, bson.M{"isAvailable": true}, query)
}

func TestBuildCoverQuery_AllFiltersCombine(t *testing.T) {
	query := repositories.BuildCoverQuery(models.CoverFilter{
		Model:       "Samsung",
		CoverTypes:  []string{"Hard"},
		Colors:      []string{"Red", "Blue"},
		MinPrice:    floatPtr(50),
		MaxPrice:    floatPtr(150),
		Gender:      "Gents",
		CategoryIDs: []string{"cat-9"},
	})

	assert.Len(t, query, 7)
	assert.Equal(t, true, query["isAvailable"])
}

func TestBuildCoverUpdate_ExplicitZeroApplies(t *testing.T) {
	stock := 0
	now := time.Now().UTC()

	set := repositories.BuildCoverUpdate(models.CoverUpdate{Stock: &stock}, now)

	assert.Equal(t, 0, set["stock"])
	assert.Equal(t, now, set["updatedAt"])
	assert.Len(t, set, 2)
}

func TestBuildCoverUpdate_OmittedFieldsUntouched(t *testing.T) {
	price := 299.0
	available := false
	now := time.Now().UTC()

	set := repositories.BuildCoverUpdate(models.CoverUpdate{
		Price:       &price,
		IsAvailable: &available,
	}, now)

	assert.Equal(t, 299.0, set["price"])
	assert.Equal(t, false, set["isAvailable"])
	assert.NotContains(t, set, "modelName")
	assert.NotContains(t, set, "stock")
	assert.NotContains(t, set, "tags")
}
