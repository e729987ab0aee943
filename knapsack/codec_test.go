// SPDX-License-Identifier: MIT

package knapsack_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapbnb/knapsack"
)

func demoInstance() *knapsack.Instance {
	return &knapsack.Instance{
		ID: "demo",
		Items: []knapsack.Item{
			{Weight: 2, Value: 3},
			{Weight: 3, Value: 4},
			{Weight: 4, Value: 5},
			{Weight: 5, Value: 6},
		},
		Capacity: 5,
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, knapsack.EncodeYAML(&buf, demoInstance()))

	got, err := knapsack.DecodeYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, demoInstance(), got)
}

func TestJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, knapsack.EncodeJSON(&buf, demoInstance()))

	got, err := knapsack.DecodeJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, demoInstance(), got)
}

func TestDecodeYAML_HandEditedDocument(t *testing.T) {
	doc := `
id: demo
capacity: 5
items:
  - {weight: 2, value: 3}
  - {weight: 3, value: 4}
`
	in, err := knapsack.DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "demo", in.ID)
	assert.Equal(t, 5.0, in.Capacity)
	require.Equal(t, 2, in.NumItems())
	assert.Equal(t, knapsack.Item{Weight: 3, Value: 4}, in.Items[1])
}

func TestDecodeYAML_BadPayload(t *testing.T) {
	_, err := knapsack.DecodeYAML(strings.NewReader("items: [not an item]"))
	assert.ErrorIs(t, err, knapsack.ErrDecode)
}

func TestDecodeYAML_InvalidInstanceIsRejected(t *testing.T) {
	doc := `
capacity: 5
items:
  - {weight: -2, value: 3}
`
	_, err := knapsack.DecodeYAML(strings.NewReader(doc))
	assert.ErrorIs(t, err, knapsack.ErrNegativeWeight)
}

func TestDecodeJSON_BadPayload(t *testing.T) {
	_, err := knapsack.DecodeJSON(strings.NewReader("{"))
	assert.ErrorIs(t, err, knapsack.ErrDecode)
}

func TestDecodeJSON_InvalidInstanceIsRejected(t *testing.T) {
	_, err := knapsack.DecodeJSON(strings.NewReader(`{"capacity":-1,"items":[]}`))
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)
}

func TestEncodeYAML_RejectsInvalidInstance(t *testing.T) {
	var buf bytes.Buffer
	err := knapsack.EncodeYAML(&buf, &knapsack.Instance{Capacity: -1})
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)
	assert.Zero(t, buf.Len())
}

func TestEncodeJSON_RejectsNil(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, knapsack.EncodeJSON(&buf, nil), knapsack.ErrNilInstance)
}
