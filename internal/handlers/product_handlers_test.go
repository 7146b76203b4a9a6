package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexcart/storefront-api/internal/store"
)

func TestParseSubCategoryIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{"bare numbers", `[3,4]`, []int64{3, 4}, false},
		{"numeric strings", `["3","4"]`, []int64{3, 4}, false},
		{"id objects", `[{"id":7},{"id":8}]`, []int64{7, 8}, false},
		{"column-named objects", `[{"idSub_Category":5}]`, []int64{5}, false},
		{"empty list", `[]`, []int64{}, false},
		{"not a list", `{"id":3}`, nil, true},
		{"garbage string element", `["three"]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSubCategoryIDs(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVariations(t *testing.T) {
	raw := `[{"id":5,"colorCode":"#ff0000","size":"M","quantity":10},{"colorCode":"#00ff00","size":"S","quantity":2}]`

	variations, err := parseVariations(raw)
	require.NoError(t, err)
	require.Len(t, variations, 2)
	assert.Equal(t, store.VariationInput{ID: 5, Colour: "#ff0000", Size: "M", Quantity: 10}, variations[0])
	assert.Equal(t, store.VariationInput{Colour: "#00ff00", Size: "S", Quantity: 2}, variations[1])

	_, err = parseVariations(`not json`)
	assert.Error(t, err)
}

func TestParseFAQs(t *testing.T) {
	raw := `[{"id":1,"question":"Q?","answer":"A."},{"question":"New?","answer":"Yes."}]`

	faqs, err := parseFAQs(raw)
	require.NoError(t, err)
	require.Len(t, faqs, 2)
	assert.Equal(t, store.FAQInput{ID: 1, Question: "Q?", Answer: "A."}, faqs[0])
	assert.Equal(t, store.FAQInput{Question: "New?", Answer: "Yes."}, faqs[1])
}

func TestFormBool(t *testing.T) {
	assert.True(t, formBool("1"))
	assert.True(t, formBool("true"))
	assert.True(t, formBool("on"))
	assert.False(t, formBool(""))
	assert.False(t, formBool("0"))
	assert.False(t, formBool("false"))
}
