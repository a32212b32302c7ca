package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"array", `["Logo Design","Web Development"]`, StringList{"Logo Design", "Web Development"}},
		{"single string", `"Logo Design"`, StringList{"Logo Design"}},
		{"empty string", `""`, nil},
		{"null", `null`, nil},
		{"empty array", `[]`, StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringList_UnmarshalJSONRejectsObjects(t *testing.T) {
	var got StringList
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &got))
}

func TestStringList_Flatten(t *testing.T) {
	assert.Equal(t, "Email, Phone", StringList{"Email", "Phone"}.Flatten())
	assert.Equal(t, "Email", StringList{"Email"}.Flatten())
	assert.Equal(t, "", StringList(nil).Flatten())
}

func TestCreateEnquiryRequest_BindsMixedShapes(t *testing.T) {
	payload := `{
		"full_name": "Jane Doe",
		"service_type": ["Logo Design", "Branding"],
		"contact_preference": "Email"
	}`

	var req CreateEnquiryRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, "Logo Design, Branding", req.ServiceType.Flatten())
	assert.Equal(t, "Email", req.ContactPreference.Flatten())
}
