package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/scriptlang/otlang"
	"github.com/npillmayer/scriptlang/otscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRune(t *testing.T) {
	tests := []struct {
		in string
		r  rune
	}{
		{"U+0391", 'Α'},
		{"u+03a9", 'Ω'},
		{"0x41", 'A'},
		{"913", 913},
		{"Ж", 'Ж'},
		{"7", '7'},
	}
	for _, tt := range tests {
		r, err := parseRune(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.r, r, "input %q", tt.in)
	}
	_, err := parseRune("U+ZZZZ")
	assert.Error(t, err)
	_, err = parseRune("0x110000")
	assert.Error(t, err)
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	intp := &Intp{}
	cmd, err := intp.parseCommand("script:lao:tag  rune:U+0041 scripts:blocks bogus")
	require.NoError(t, err)
	require.Equal(t, 4, cmd.count)
	assert.Equal(t, SCRIPT, cmd.op[0].code)
	assert.Equal(t, "lao", cmd.op[0].arg)
	assert.Equal(t, "tag", cmd.op[0].format)
	assert.Equal(t, RUNE, cmd.op[1].code)
	assert.Equal(t, "U+0041", cmd.op[1].arg)
	assert.Equal(t, SCRIPTS, cmd.op[2].code)
	assert.Equal(t, "", cmd.op[2].arg)
	assert.Equal(t, "blocks", cmd.op[2].format)
	assert.Equal(t, HELP, cmd.op[3].code, "expected unknown command to show help")
	assert.Equal(t, NOOP, cmd.op[4].code)
}

func TestExecuteLookups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	intp := &Intp{scripts: otscript.Default(), langs: otlang.Default()}
	cmd, err := intp.parseCommand("name:Old_Italic lang:HO")
	require.NoError(t, err)
	err, quit := intp.execute(cmd)
	require.NoError(t, err)
	assert.False(t, quit)
	require.NotNil(t, intp.script)
	assert.Equal(t, "Old Italic", intp.script.FullName)
	require.NotNil(t, intp.lang)
	assert.Equal(t, "Ho", intp.lang.Name)
	//
	cmd, _ = intp.parseCommand("script:zzzz")
	err, _ = intp.execute(cmd)
	assert.Error(t, err)
	cmd, _ = intp.parseCommand("quit")
	_, quit = intp.execute(cmd)
	assert.True(t, quit)
}
