package nameindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixIgnoresCase(t *testing.T) {
	ix := New()
	ix.Add("Greek", 0)
	ix.Add("Gujarati", 1)
	ix.Add("Gujarati v.2", 2)
	ix.Add("Latin", 3)
	assert.Equal(t, []int{1, 2}, ix.Prefix("guj"))
	assert.Equal(t, []int{0, 1, 2}, ix.Prefix("G"))
	assert.Equal(t, []int{3}, ix.Prefix("LATIN"))
	assert.Empty(t, ix.Prefix("Cyr"))
	assert.Empty(t, ix.Prefix(""))
	assert.Equal(t, 4, ix.Len())
}

func TestEqualNamesDoNotShadow(t *testing.T) {
	ix := New()
	ix.Add("Arabic", 7)
	ix.Add("arabic", 2)
	ix.Add("", 9)
	assert.Equal(t, []int{2, 7}, ix.Prefix("arab"))
	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, []string{"arabic"}, ix.Keys("A"))
}
