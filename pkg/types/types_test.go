package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondition_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, ConditionNearMint.Valid())
	assert.True(t, ConditionPoor.Valid())
	assert.False(t, Condition("XX").Valid())
	assert.False(t, Condition("").Valid())
}

func TestCondition_AtLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    Condition
		min  Condition
		want bool
	}{
		{name: "same grade", c: ConditionExcellent, min: ConditionExcellent, want: true},
		{name: "better grade", c: ConditionMint, min: ConditionGood, want: true},
		{name: "worse grade", c: ConditionPlayed, min: ConditionNearMint, want: false},
		{name: "unknown grade", c: Condition("XX"), min: ConditionPoor, want: false},
		{name: "unknown minimum", c: ConditionMint, min: Condition(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.c.AtLeast(tt.min))
		})
	}
}

func TestArticle_TotalPrice(t *testing.T) {
	t.Parallel()

	single := Article{Price: 2.5}
	assert.InDelta(t, 2.5, single.TotalPrice(), 0.001)

	playset := Article{Price: 2.5, Count: 4}
	assert.InDelta(t, 10.0, playset.TotalPrice(), 0.001)
}

func TestArticle_LanguageID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, (&Article{}).LanguageID())
	assert.Equal(t, 3, (&Article{Language: &Language{IDLanguage: 3}}).LanguageID())
}

func TestAccount_DisplayLanguageAcceptsStringOrNumber(t *testing.T) {
	t.Parallel()

	var fromString Account
	require.NoError(t, json.Unmarshal([]byte(`{"idDisplayLanguage":"1"}`), &fromString))
	assert.Equal(t, "1", fromString.IDDisplayLanguage.String())

	var fromNumber Account
	require.NoError(t, json.Unmarshal([]byte(`{"idDisplayLanguage":2}`), &fromNumber))
	assert.Equal(t, "2", fromNumber.IDDisplayLanguage.String())
}
