package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/scriptlang/ot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otquery")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	assert.NotEmpty(t, f.Fontname)
	assert.NotNil(t, f.Table(ot.T("cmap")), "expected font to have a cmap")
	assert.NotNil(t, f.Table(ot.T("OS/2")), "expected font to have an OS/2 table")
	assert.Nil(t, f.Table(ot.T("zzzz")))
	//
	_, err = ParseOpenTypeFont([]byte("OTTO"))
	assert.Error(t, err)
}

func TestTableDirectoryBounds(t *testing.T) {
	font := make([]byte, 28)
	font[5] = 1               // one table
	copy(font[12:16], "test") // tag
	font[27] = 0xff           // length exceeds font
	_, err := parseTableDirectory(font)
	assert.Error(t, err)
	_, err = parseTableDirectory(font[:20])
	assert.Error(t, err, "expected truncated table records to be rejected")
}

func TestLoadAndLocate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otquery")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	located, err := Locate(path)
	require.NoError(t, err)
	assert.Equal(t, path, located)
	f, err := LoadOpenTypeFont(path)
	require.NoError(t, err)
	assert.NotNil(t, f.SFNT)
	//
	_, err = LoadOpenTypeFont("no-such-font-for-sure.ttf")
	assert.Error(t, err)
}
