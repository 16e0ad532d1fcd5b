package otquery

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/scriptlang/otscript"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type CoverageTestEnviron struct {
	suite.Suite
	font *Font
}

// listen for 'go test' command --> run test methods
func TestCoverageFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otquery")
	defer teardown()
	suite.Run(t, new(CoverageTestEnviron))
}

// run once, before test suite methods
func (env *CoverageTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("otquery").SetTraceLevel(tracing.LevelError)
	f, err := ParseFont(goregular.TTF)
	env.Require().NoError(err, "expected Go Regular to parse")
	env.font = f
	tracing.Select("otquery").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *CoverageTestEnviron) TestFontNames() {
	env.Equal("Go Regular", env.font.Name)
	info := NameInfo(env.font)
	env.Equal("Go", info["family"])
	env.Equal("Regular", info["subfamily"])
	n := 0
	for range Names(env.font) {
		n++
		break
	}
	env.Equal(1, n, "expected name iteration to stop early")
	env.Empty(NameInfo(&Font{}))
}

func (env *CoverageTestEnviron) TestScriptCoverage() {
	cov, err := ScriptCoverage(env.font.SFNT, otscript.Default())
	env.Require().NoError(err)
	byName := make(map[string]Coverage, len(cov))
	for _, c := range cov {
		env.LessOrEqual(c.Covered, c.Total)
		env.Positive(c.Total, "expected scripts without blocks to be skipped")
		byName[c.Script.FullName] = c
	}
	latin, ok := byName["Latin"]
	env.Require().True(ok, "expected Latin to be reported")
	env.Positive(latin.Covered, "expected Go Regular to cover Latin")
	hira, ok := byName["Hiragana"]
	env.Require().True(ok, "expected Hiragana to be reported")
	env.Zero(hira.Covered, "expected Go Regular not to cover Hiragana")
	env.Zero(hira.Ratio())
	_, ok = byName["Default"]
	env.False(ok)
}

func (env *CoverageTestEnviron) TestSupportedScripts() {
	scripts, err := SupportedScripts(env.font.SFNT, otscript.Default(), 0.1)
	env.Require().NoError(err)
	var names []string
	for _, sc := range scripts {
		names = append(names, sc.FullName)
	}
	env.Contains(names, "Greek")
	env.NotContains(names, "Arabic")
	_, err = SupportedScripts(nil, otscript.Default(), 0.5)
	env.Error(err)
}

func (env *CoverageTestEnviron) TestDeclaredRanges() {
	bits, err := UnicodeRangeBits(env.font)
	env.Require().NoError(err)
	env.Contains(bits, 0, "expected Go Regular to declare Basic Latin")
	for i := 1; i < len(bits); i++ {
		env.Less(bits[i-1], bits[i])
	}
	scripts, err := DeclaredScripts(env.font, otscript.Default())
	env.Require().NoError(err)
	env.NotEmpty(scripts)
	env.Equal("Latin", firstLatin(scripts))
	_, err = UnicodeRangeBits(&Font{})
	env.ErrorIs(err, ErrNoOS2Table)
}

func firstLatin(scripts []*otscript.Script) string {
	for _, sc := range scripts {
		if sc.FullName == "Latin" {
			return sc.FullName
		}
	}
	return ""
}

func TestCoverageRatio(t *testing.T) {
	c := Coverage{Covered: 1, Total: 4}
	if c.Ratio() != 0.25 {
		t.Errorf("expected ratio 0.25, have %f", c.Ratio())
	}
	if (Coverage{}).Ratio() != 0 {
		t.Errorf("expected empty coverage to have ratio 0")
	}
}
