package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexDumpRows(t *testing.T) {
	var buf bytes.Buffer
	hexDump(&buf, make([]byte, 40), 0)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "0000000000000000: "))
	require.True(t, strings.HasPrefix(lines[1], "0000000000000010: "))
	require.True(t, strings.HasPrefix(lines[2], "0000000000000020: "))
}

func TestHexDumpAsciiGutter(t *testing.T) {
	var buf bytes.Buffer
	hexDump(&buf, []byte("ABC\x00"), 0x40)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "0000000000000040: "))
	require.Contains(t, out, "41 42 43 00 ")
	require.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), "|ABC.|"))
}

func TestDumpRegionWindow(t *testing.T) {
	var buf bytes.Buffer
	dumpRegion(&buf, make([]byte, 256), 100, 10)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// 100-16 aligned down is 0x50; one row of context after 110 ends at 126.
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], fmt.Sprintf("%016x: ", 0x50)))
}

func TestDumpRegionClampsToBuffer(t *testing.T) {
	var buf bytes.Buffer
	dumpRegion(&buf, make([]byte, 20), 4, 40)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "0000000000000000: "))
}
