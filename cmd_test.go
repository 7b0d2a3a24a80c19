package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCmdExecUnknown(t *testing.T) {
	p := newLoaded(t, writeInput(t, "lib.so", surround(testOld)))
	require.EqualError(t, p.cmdExec("frobnicate"), "unknown command")
}

func TestCmdOldUpdatesPattern(t *testing.T) {
	p := newLoaded(t, writeInput(t, "lib.so", surround(testOld)))

	longer := strings.Repeat("A", 20)
	require.NoError(t, p.cmdExec("old "+longer))
	require.Equal(t, []byte(longer), p.old)
	require.Empty(t, p.Matches())
}

func TestCmdOldRejectsShorterThanReplacement(t *testing.T) {
	p := newLoaded(t, writeInput(t, "lib.so", surround(testOld)))
	require.Error(t, p.cmdExec("old tiny"))
	require.Equal(t, testOld, p.old)
}

func TestCmdNewUpdatesReplacement(t *testing.T) {
	p := newLoaded(t, writeInput(t, "lib.so", surround(testOld)))

	require.NoError(t, p.cmdExec("new s"))
	require.Equal(t, []byte("s"), p.rep)

	require.Error(t, p.cmdExec("new "+strings.Repeat("B", len(testOld)+1)))
	require.Equal(t, []byte("s"), p.rep)
}

func TestCmdDumpByteBounds(t *testing.T) {
	p := newLoaded(t, writeInput(t, "lib.so", surround(testOld)))
	require.Error(t, p.cmdExec("db 0xffffff"))
	require.NoError(t, p.cmdExec("db 0 16"))
}

func TestCmdDumpByteHugeCount(t *testing.T) {
	p := newLoaded(t, writeInput(t, "lib.so", surround(testOld)))

	// counts that would wrap the offset clamp to the end of the buffer
	require.NoError(t, p.cmdExec("db 16 18446744073709551615"))
	require.NoError(t, p.cmdExec("db 0 0xffffffffffffffff"))
}

func TestCmdShow(t *testing.T) {
	p := newLoaded(t, writeInput(t, "lib.so", surround(testOld, testOld)))
	require.NoError(t, p.cmdExec("show"))
}

func TestCmdScanNonELF(t *testing.T) {
	p := newLoaded(t, writeInput(t, "lib.so", surround(testOld)))
	require.Error(t, p.cmdExec("scan"))
	require.Error(t, p.cmdExec("scan 32"))
}

func TestCmdPatchWrites(t *testing.T) {
	in := surround(testOld)
	p := newLoaded(t, writeInput(t, "lib.so", in))

	require.NoError(t, p.cmdExec("patch"))

	got, err := os.ReadFile(p.OutPath())
	require.NoError(t, err)
	require.Equal(t, len(in), len(got))
	require.Equal(t, p.Apply(), got)
}

func TestCmdPatchNoMatchCopies(t *testing.T) {
	in := []byte("nothing to replace")
	p := newLoaded(t, writeInput(t, "lib.so", in))

	require.NoError(t, p.cmdExec("patch"))

	got, err := os.ReadFile(p.OutPath())
	require.NoError(t, err)
	require.Equal(t, in, got)
}
