package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "roster/pkg/domain-errors"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		input string
		want  Gender
	}{
		{"Male", GenderMale},
		{"male", GenderMale},
		{" FEMALE ", GenderFemale},
		{"others", GenderOthers},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGender(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects values outside the enumeration", func(t *testing.T) {
		_, err := ParseGender("Unknown")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Equal(t, "gender", dErrors.FieldOf(err))
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseGender("")
		require.Error(t, err)
	})
}

func TestGender_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Gender Gender `json:"gender"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"gender":"female"}`), &payload))
	assert.Equal(t, GenderFemale, payload.Gender)

	require.NoError(t, json.Unmarshal([]byte(`{"gender":""}`), &payload))
	assert.Equal(t, Gender(""), payload.Gender)

	err := json.Unmarshal([]byte(`{"gender":"garbage"}`), &payload)
	require.Error(t, err)
}

func TestParseSortOrder(t *testing.T) {
	o, err := ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, SortAscending, o)

	o, err = ParseSortOrder("desc")
	require.NoError(t, err)
	assert.True(t, o.IsDescending())

	_, err = ParseSortOrder("sideways")
	require.Error(t, err)
}
