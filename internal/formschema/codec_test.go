package formschema

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeParse_RoundTrip(t *testing.T) {
	res, err := Normalize([]Candidate{
		{FieldID: "years", Label: Text("Years"), InputType: TypeNumber, MinValue: ptr(0.5), IsRequired: true},
		{FieldID: "cv", Label: LocalizedText{Primary: "CV link", Secondary: "رابط السيرة"}, InputType: TypeURL},
		{FieldID: "shift", Label: Text("Shift"), InputType: TypeRadio, Choices: []LocalizedText{Text("Day"), Text("Night")}},
		{FieldID: "kids", Label: Text("Children"), InputType: TypeGroup, Children: []Candidate{
			{FieldID: "kid_name", Label: Text("Name"), InputType: TypeText},
			{FieldID: "kid_age", Label: Text("Age"), InputType: TypeNumber, MinValue: ptr(0.0), MaxValue: ptr(18.0)},
		}},
	}, true)
	require.NoError(t, err)

	data, err := Serialize(res.Schema)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)

	if diff := cmp.Diff(res.Schema, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_Shape(t *testing.T) {
	data, err := Serialize(Schema{{
		FieldID:      "f1",
		Label:        Text("Experience"),
		InputType:    TypeNumber,
		IsRequired:   true,
		MinValue:     ptr(0.0),
		DisplayOrder: 1,
	}})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)

	want := map[string]any{
		"fieldId":      "f1",
		"label":        map[string]any{"primary": "Experience", "secondary": "Experience"},
		"inputType":    "number",
		"isRequired":   true,
		"minValue":     0.0,
		"displayOrder": 1.0,
	}
	if diff := cmp.Diff(want, raw[0]); diff != "" {
		t.Fatalf("serialized shape mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_NilIsEmptyArray(t *testing.T) {
	data, err := Serialize(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantLen int
		wantErr bool
	}{
		{name: "empty document", in: "", wantLen: 0},
		{name: "null", in: "null", wantLen: 0},
		{name: "empty array", in: " [] ", wantLen: 0},
		{name: "one field", in: `[{"fieldId":"a","label":{"primary":"A","secondary":"A"},"inputType":"text","isRequired":false,"displayOrder":0}]`, wantLen: 1},
		{name: "object", in: `{"fieldId":"a"}`, wantErr: true},
		{name: "malformed", in: `[{"fieldId":}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.in))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
			assert.Len(t, s, tt.wantLen)
		})
	}
}

func TestParseCandidates_KeepsMissingDisplayOrder(t *testing.T) {
	cs, err := ParseCandidates([]byte(`[{"fieldId":"a","label":{"primary":"A"},"inputType":"text"}]`))
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Nil(t, cs[0].DisplayOrder)
	assert.Equal(t, "", cs[0].Label.Secondary)
}
