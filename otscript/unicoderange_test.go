package otscript

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRangeContains(t *testing.T) {
	if !BasicLatin.Contains(0) || !BasicLatin.Contains(0x7F) {
		t.Errorf("expected range to include both ends")
	}
	if BasicLatin.Contains(0x80) || BasicLatin.Contains(-1) {
		t.Errorf("expected range to exclude code points outside")
	}
	if BasicLatin.Size() != 128 {
		t.Errorf("expected Basic Latin to have 128 code points, has %d", BasicLatin.Size())
	}
	if s := GreekAndCoptic.String(); s != "7,[U+0370,U+03FF]" {
		t.Errorf("unexpected range string %q", s)
	}
}

func TestRangesForBit(t *testing.T) {
	cyr := RangesForBit(9)
	if len(cyr) != 4 {
		t.Fatalf("expected bit 9 to report 4 Cyrillic blocks, has %d", len(cyr))
	}
	if cyr[0] != Cyrillic {
		t.Errorf("expected first block of bit 9 to be Cyrillic, is %v", cyr[0])
	}
	if RangesForBit(MaxOS2Bit+1) != nil {
		t.Errorf("expected reserved bit to have no blocks")
	}
	if BitForRune('Ж') != 9 {
		t.Errorf("expected 'Ж' to report to bit 9, reports to %d", BitForRune('Ж'))
	}
	if BitForRune(0x0860) != -1 {
		t.Errorf("expected U+0860 not to be covered by the OS/2 table")
	}
}

func TestOS2TableConsistent(t *testing.T) {
	blocks := slices.Collect(OS2Ranges())
	bit := 0
	for _, ur := range blocks {
		if ur.Bit < bit {
			t.Errorf("OS/2 table not ordered by bit at %v", ur)
		}
		bit = ur.Bit
		if ur.End < ur.Start {
			t.Errorf("OS/2 block %v is inverted", ur)
		}
	}
	if bit != MaxOS2Bit {
		t.Errorf("expected last block to report to bit %d, is %d", MaxOS2Bit, bit)
	}
	sorted := slices.Clone(blocks)
	slices.SortFunc(sorted, func(a, b UnicodeRange) int { return int(a.Start - b.Start) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start <= sorted[i-1].End {
			t.Errorf("OS/2 blocks %v and %v overlap", sorted[i-1], sorted[i])
		}
	}
}

func TestRangesForBitBlocks(t *testing.T) {
	want := []UnicodeRange{
		{9, 0x0400, 0x04FF},
		{9, 0x0500, 0x052F},
		{9, 0x2DE0, 0x2DFF},
		{9, 0xA640, 0xA69F},
	}
	if d := cmp.Diff(want, RangesForBit(9)); d != "" {
		t.Errorf("unexpected blocks for bit 9 (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]UnicodeRange{Hiragana}, RangesForBit(Hiragana.Bit)); d != "" {
		t.Errorf("unexpected blocks for Hiragana (-want +got):\n%s", d)
	}
}
