package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	inv := SampleInvoice()
	inv.DiscountPct = 10
	inv.LogoDataURL = "data:image/png;base64,AAAA"

	data, err := Serialize(inv)
	require.NoError(t, err)

	got, err := Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, inv, got)
}

func TestSerializeIsPrettyPrinted(t *testing.T) {
	data, err := Serialize(SampleInvoice())
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(data), "\n  \""), "snapshot should be indented")
}

func TestDeserializeRejectsNonJSON(t *testing.T) {
	got, err := Deserialize([]byte("not json"))

	require.Error(t, err)
	assert.Nil(t, got)
	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestDeserializeRejectsWrongItemShape(t *testing.T) {
	got, err := Deserialize([]byte(`{"items": 42}`))

	require.Error(t, err)
	assert.Nil(t, got)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Reason, "items")
}

func TestDeserializeRejectsUnknownFields(t *testing.T) {
	_, err := Deserialize([]byte(`{"totallyUnknown": true}`))

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestDeserializeRejectsDuplicateItemIDs(t *testing.T) {
	_, err := Deserialize([]byte(`{"items": [{"id": "x"}, {"id": "x"}]}`))

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Reason, "duplicate")
}

func TestDeserializeRejectsMissingItemID(t *testing.T) {
	_, err := Deserialize([]byte(`{"items": [{"description": "no id"}]}`))

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Reason, "no id")
}

func TestDeserializeRejectsTrailingData(t *testing.T) {
	_, err := Deserialize([]byte(`{}{"again": true}`))

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestDeserializePreservesItemOrder(t *testing.T) {
	data := []byte(`{"items": [{"id": "c"}, {"id": "a"}, {"id": "b"}]}`)

	inv, err := Deserialize(data)
	require.NoError(t, err)

	require.Len(t, inv.Items, 3)
	assert.Equal(t, "c", inv.Items[0].ID)
	assert.Equal(t, "a", inv.Items[1].ID)
	assert.Equal(t, "b", inv.Items[2].ID)
}
