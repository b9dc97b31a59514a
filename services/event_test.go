package services

import (
	"testing"

	"vitalfit/util"

	"github.com/stretchr/testify/assert"
)

func TestValidateEventVenue(t *testing.T) {
	assert.NoError(t, validateEventVenue(EventOnline, "", "https://meet.example/yoga"))
	assert.NoError(t, validateEventVenue(EventOffline, "Hall A", ""))
	assert.NoError(t, validateEventVenue(EventHybrid, "Hall A", "https://meet.example/yoga"))

	err := validateEventVenue(EventOnline, "Hall A", "")
	assert.Equal(t, util.KindMissingRequiredField, util.KindOf(err))

	err = validateEventVenue(EventOffline, "", "https://meet.example/yoga")
	assert.Equal(t, util.KindMissingRequiredField, util.KindOf(err))

	err = validateEventVenue(EventHybrid, "Hall A", "")
	assert.Equal(t, util.KindMissingRequiredField, util.KindOf(err))

	err = validateEventVenue("somewhere", "Hall A", "link")
	assert.Equal(t, util.KindBadRequest, util.KindOf(err))
}
