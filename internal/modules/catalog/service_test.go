package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHours_Valid(t *testing.T) {
	assert.NoError(t, validateHours("09:00", "20:00"))
}

func TestValidateHours_BothEmpty(t *testing.T) {
	assert.NoError(t, validateHours("", ""))
}

func TestValidateHours_OneEmpty(t *testing.T) {
	assert.ErrorIs(t, validateHours("09:00", ""), ErrInvalidHours)
	assert.ErrorIs(t, validateHours("", "20:00"), ErrInvalidHours)
}

func TestValidateHours_OpenEqualsClose(t *testing.T) {
	assert.ErrorIs(t, validateHours("09:00", "09:00"), ErrInvalidHours)
}

func TestValidateHours_OpenAfterClose(t *testing.T) {
	assert.ErrorIs(t, validateHours("21:00", "09:00"), ErrInvalidHours)
}

func TestValidateHours_Malformed(t *testing.T) {
	assert.ErrorIs(t, validateHours("9am", "20:00"), ErrInvalidHours)
	assert.ErrorIs(t, validateHours("09:00", "late"), ErrInvalidHours)
}
