package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// simulate runs the draw loop state machine the generated routine encodes,
// returning every cursor a store hits and the number of scanline wraps.
func simulate(p DrawParams, start int) (stores []int, wraps int) {
	cursor := start
	total := p.TotalWrites
	line := p.LineWrites

	for {
		stores = append(stores, cursor)
		total--
		if total == 0 {
			return stores, wraps
		}
		cursor += 2
		line--
		if line == 0 {
			cursor += p.LineSkip
			cursor -= p.LineBack
			line = p.LineWrites
			wraps++
		}
	}
}

func TestParamsFor(t *testing.T) {
	p := ParamsFor(8, 16)
	assert.Equal(t, DrawParams{TotalWrites: 4, LineWrites: 2, LineSkip: 0xA0, LineBack: 4}, p)

	p = ParamsFor(320, 320*200)
	assert.Equal(t, DrawParams{TotalWrites: 16000, LineWrites: 80, LineSkip: 0xA0, LineBack: 160}, p)
}

func TestDrawStateMachineWrapsOnce(t *testing.T) {
	// Two 8-pixel rows: two stores per line, four in total, exactly one
	// wrap before the routine terminates.
	stores, wraps := simulate(ParamsFor(8, 16), 0)

	assert.Equal(t, 1, wraps)
	assert.Equal(t, []int{0x00, 0x02, 0xA0, 0xA2}, stores)
}

func TestDrawStateMachineFullScreen(t *testing.T) {
	stores, wraps := simulate(ParamsFor(320, 320*200), 0)

	assert.Equal(t, 199, wraps)
	assert.Len(t, stores, 16000)

	// Every scanline starts a stride apart and is covered contiguously.
	for i, cursor := range stores {
		line, col := i/80, i%80
		assert.Equal(t, line*0xA0+col*2, cursor)
	}
}

func TestDrawRoutineText(t *testing.T) {
	got := DrawRoutine("PIC", 8, 16)

	assert.True(t, strings.HasPrefix(got, "DRAWPIC"))
	assert.Contains(t, got, "LDA #$0004")         // total stores
	assert.Contains(t, got, "LDA #$0002")         // stores per line
	assert.Contains(t, got, "LOOPPIC   LDA PIC,Y")
	assert.Contains(t, got, "STA $E12000,X")
	assert.Contains(t, got, "ADC #$00A0")
	assert.Contains(t, got, "SBC #$0004")
	assert.Contains(t, got, "BNE LOOPPIC")
	assert.Contains(t, got, "BEQ DONEPIC")
	assert.True(t, strings.HasSuffix(got, "DONEPIC   RTS\n"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "PIC", Label(""))
	assert.Equal(t, "TITLE", Label("TITLE"))
	assert.Equal(t, "ABCDEFGHIJKLMNOP", Label("ABCDEFGHIJKLMNOP"))
	assert.Equal(t, "ABCDEFGHIJKLMNOP", Label("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
}
