package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Text", "Txet", 2},
		{"Hello", "hello", 1},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"OrderID":       "orderid",
		"order_id":      "orderid",
		"order-Id":      "orderid",
		"Is Enabled":    "isenabled",
		"":              "",
		"order_item-ID": "orderitemid",
	}

	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("UserName", "user_name"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}

func TestSuggest(t *testing.T) {
	members := []string{"Text", "Title", "Enabled", "Items", "TextColor"}

	assert.Equal(t, []string{"Text"}, Suggest("Txt", members, 3, DefaultThreshold))
	assert.Equal(t, []string{"Items"}, Suggest("Item", members, 2, DefaultThreshold))
	assert.Equal(t, []string{"TextColor", "Text"}, Suggest("TextColr", members, 3, DefaultThreshold))
	assert.Equal(t, []string{"TextColor"}, Suggest("TextColr", members, 1, DefaultThreshold))
	assert.Empty(t, Suggest("Zzz", members, 3, DefaultThreshold))
	assert.Empty(t, Suggest("Text", members, 0, DefaultThreshold))
}

func TestRank_StableTies(t *testing.T) {
	ranked := Rank("ab", []string{"ax", "xb", "ab"})

	assert.Equal(t, "ab", ranked[0].Name)
	assert.Equal(t, "ax", ranked[1].Name)
	assert.Equal(t, "xb", ranked[2].Name)
}
