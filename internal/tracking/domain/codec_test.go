package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWeeks_RoundTrip(t *testing.T) {
	weeks := SampleWeeks()

	encoded, err := EncodeWeeks(weeks)
	require.NoError(t, err)

	decoded := DecodeWeeks(encoded)
	require.NotNil(t, decoded)
	assert.Equal(t, weeks, decoded)
}

func TestDecodeWeeks_ExportRoundTrip(t *testing.T) {
	weeks := SampleWeeks()

	encoded, err := EncodeExport(weeks, time.Date(2025, 12, 8, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	decoded := DecodeWeeks(encoded)
	require.NotNil(t, decoded)
	assert.Equal(t, weeks, decoded)
}

func TestDecodeWeeks_LegacyBareArray(t *testing.T) {
	weeks := SampleWeeks()
	encoded, err := json.Marshal(weeks)
	require.NoError(t, err)

	decoded := DecodeWeeks(encoded)
	require.NotNil(t, decoded)
	assert.Equal(t, weeks, decoded)
}

func TestDecodeWeeks_EmptyCollection(t *testing.T) {
	decoded := DecodeWeeks([]byte(`{"version":1,"weeks":[]}`))
	require.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

func TestDecodeWeeks_UnreadableShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{"version":1,`},
		{"scalar", `42`},
		{"null", `null`},
		{"wrong version", `{"version":2,"weeks":[]}`},
		{"string version", `{"version":"1","weeks":[]}`},
		{"missing weeks", `{"version":1}`},
		{"weeks not an array", `{"version":1,"weeks":{}}`},
		{"element not an object", `{"version":1,"weeks":[7]}`},
		{"null element", `{"version":1,"weeks":[null]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, DecodeWeeks([]byte(tt.raw)))
		})
	}
}

func TestDecodeWeeks_RejectsMalformedFields(t *testing.T) {
	base := func(mutate func(obj map[string]any)) []byte {
		encoded, err := EncodeWeeks(SampleWeeks())
		require.NoError(t, err)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(encoded, &envelope))
		weeks := envelope["weeks"].([]any)
		mutate(weeks[0].(map[string]any))

		out, err := json.Marshal(envelope)
		require.NoError(t, err)
		return out
	}

	tests := []struct {
		name   string
		mutate func(obj map[string]any)
	}{
		{"numeric id", func(obj map[string]any) { obj["id"] = 7 }},
		{"missing weekOf", func(obj map[string]any) { delete(obj, "weekOf") }},
		{"days missing a key", func(obj map[string]any) {
			delete(obj["days"].(map[string]any), "wed")
		}},
		{"days not an object", func(obj map[string]any) { obj["days"] = []any{} }},
		{"string calories", func(obj map[string]any) {
			obj["days"].(map[string]any)["mon"].(map[string]any)["calories"] = "2800"
		}},
		{"null weight", func(obj map[string]any) {
			obj["days"].(map[string]any)["mon"].(map[string]any)["weightKg"] = nil
		}},
		{"boolean protein", func(obj map[string]any) {
			obj["days"].(map[string]any)["tue"].(map[string]any)["proteinG"] = true
		}},
		{"string steps", func(obj map[string]any) { obj["avgStepsPerDay"] = "10925" }},
		{"numeric notes", func(obj map[string]any) { obj["notes"] = 12 }},
		{"object totalSets", func(obj map[string]any) { obj["totalSets"] = map[string]any{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, DecodeWeeks(base(tt.mutate)))
		})
	}
}

func TestDecodeWeeks_OneBadRecordRejectsAll(t *testing.T) {
	// A corrupt single record invalidates the whole collection rather than
	// being silently dropped.
	encoded, err := EncodeWeeks(SampleWeeks())
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(encoded, &envelope))
	weeks := envelope["weeks"].([]any)
	require.Len(t, weeks, 2)
	weeks[1].(map[string]any)["days"].(map[string]any)["fri"].(map[string]any)["calories"] = "oops"

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	assert.Nil(t, DecodeWeeks(raw))
}

func TestDecodeWeeks_ExtraEnvelopeKeysIgnored(t *testing.T) {
	decoded := DecodeWeeks([]byte(`{"version":1,"exportedAt":"2025-12-08T09:30:00Z","weeks":[]}`))
	require.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

func TestEncodeWeeks_NilCollection(t *testing.T) {
	encoded, err := EncodeWeeks(nil)
	require.NoError(t, err)

	decoded := DecodeWeeks(encoded)
	require.NotNil(t, decoded)
	assert.Empty(t, decoded)
}
