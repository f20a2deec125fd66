package validation_test

import (
	"testing"

	"github.com/fekuna/worktech-api/internal/model"
	"github.com/fekuna/worktech-api/internal/validation"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	ItemID  string   `validate:"required,max=15"`
	Entries []string `validate:"min=1"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, validation.Struct(&sample{ItemID: "PUMP-01", Entries: []string{"a"}}))

	err := validation.Struct(&sample{ItemID: "", Entries: []string{"a"}})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.EqualError(t, err, "invalid ItemID: is required")

	err = validation.Struct(&sample{ItemID: "THIS-ID-IS-TOO-LONG", Entries: []string{"a"}})
	assert.EqualError(t, err, "invalid ItemID: exceeds 15 characters")

	err = validation.Struct(&sample{ItemID: "OK"})
	assert.EqualError(t, err, "invalid Entries: must have at least 1 entries")
}
