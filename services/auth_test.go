package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMaskingNeverLeaksFullIdentifiers(t *testing.T) {
	assert.Equal(t, "XXXX-XXXX-9012", maskAadhaar("123456789012"))
	assert.Equal(t, "", maskAadhaar("12"))

	assert.Equal(t, "12-XXXXXX789", maskAbha("12-3456-7890-6789"))
	assert.Equal(t, "", maskAbha("123"))

	assert.Equal(t, "XXXXXX4321", maskPhone("9876554321"))
	assert.Equal(t, "", maskPhone("432"))
}

func TestIdentityFilter(t *testing.T) {
	assert.Nil(t, identityFilter("", ""))

	filter := identityFilter("User@Example.COM ", "")
	ors := filter["$or"].([]bson.M)
	assert.Len(t, ors, 1)
	assert.Equal(t, "user@example.com", ors[0]["email"])

	filter = identityFilter("a@b.c", " 9876554321 ")
	ors = filter["$or"].([]bson.M)
	assert.Len(t, ors, 2)
	assert.Equal(t, "9876554321", ors[1]["phone"])
}

func TestIsAllDigits(t *testing.T) {
	assert.True(t, isAllDigits("9876554321"))
	assert.False(t, isAllDigits("98a76"))
	assert.False(t, isAllDigits(""))
	assert.False(t, isAllDigits("a@b.c"))
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hashed, err := hashPassword("s3cret!")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hashed)
	assert.NotEmpty(t, hashed)
}
