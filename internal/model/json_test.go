package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMapScan(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan([]byte(`{"style": "modern", "budget_amount": 8000}`)))
	assert.Equal(t, "modern", m["style"])
	assert.InDelta(t, 8000, m["budget_amount"].(float64), 0.001)

	// drivers may hand back strings
	var fromString JSONMap
	require.NoError(t, fromString.Scan(`{"a": 1}`))
	assert.InDelta(t, 1, fromString["a"].(float64), 0.001)

	var fromNil JSONMap
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["white", "oak", "brass"]`)))
	assert.Equal(t, StringList{"white", "oak", "brass"}, l)
}

func TestRawJSONValue(t *testing.T) {
	raw := RawJSON(`[{"name": "main_sofa"}]`)
	v, err := raw.Value()
	require.NoError(t, err)
	assert.Equal(t, `[{"name": "main_sofa"}]`, string(v.([]byte)))

	var empty RawJSON
	v, err = empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
