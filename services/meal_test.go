package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBulkFieldAliases(t *testing.T) {
	entry := map[string]interface{}{
		"food_name": "Oats",
		"meal_type": "breakfast",
		"kcal":      320.0,
		"protein_g": 12.0,
	}
	assert.Equal(t, "Oats", strField(entry, "foodName", "food_name", "name"))
	assert.Equal(t, "breakfast", strField(entry, "mealType", "meal_type", "type"))
	assert.Equal(t, 320.0, numField(entry, "calories", "kcal"))
	assert.Equal(t, 12.0, numField(entry, "protein", "protein_g"))
	assert.Equal(t, 0.0, numField(entry, "fiber"))
	assert.Equal(t, "", strField(entry, "notes"))
}

func TestNumFieldPrefersEarlierAlias(t *testing.T) {
	entry := map[string]interface{}{"calories": 100.0, "kcal": 200.0}
	assert.Equal(t, 100.0, numField(entry, "calories", "kcal"))

	intEntry := map[string]interface{}{"calories": 150}
	assert.Equal(t, 150.0, numField(intEntry, "calories"))
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 3, 10, 17, 42, 9, 0, time.UTC)
	start, end := dayBounds(at)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
