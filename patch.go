package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// The symbol name that overflows the loader's name field. Rust's mangling of
// the switchboard lazy-static deref produces it; the short replacement keeps
// the leading ".bss." marker so the string stays recognizable in a dump.
const (
	defaultOldPattern = ".bss._ZN98_$LT$switchboard_solana..program_id..SWITCHBOARD_PROGRAM_ID$u20$as$u20$core..ops..deref..Deref$GT$5deref11__stability4LAZY17ha3b89edb3e526ca9E"
	defaultNewPattern = ".bss._ZN_short"
)

type TypePatcher struct {
	path string
	old  []byte
	rep  []byte
	data []byte
	mode os.FileMode
}

func NewPatcher(path string, old, rep []byte) (*TypePatcher, error) {
	if len(old) == 0 {
		return nil, errors.New("empty search pattern")
	}
	if len(rep) > len(old) {
		return nil, errors.New("replacement longer than search pattern")
	}
	return &TypePatcher{
		path: path,
		old:  old,
		rep:  rep,
		mode: 0644,
	}, nil
}

func (p *TypePatcher) Load() error {
	info, err := os.Stat(p.path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", p.path)
	}
	if perm := info.Mode().Perm(); perm != 0 {
		p.mode = perm
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return err
	}
	p.data = data
	return nil
}

// padded returns rep extended with NUL bytes to exactly len(old), so the
// substitution never shifts a byte offset.
func (p *TypePatcher) padded() []byte {
	out := make([]byte, len(p.old))
	copy(out, p.rep)
	return out
}

func (p *TypePatcher) Matches() []int {
	var offs []int
	for i := 0; i < len(p.data); {
		j := bytes.Index(p.data[i:], p.old)
		if j < 0 {
			break
		}
		offs = append(offs, i+j)
		i += j + len(p.old)
	}
	return offs
}

func (p *TypePatcher) Apply() []byte {
	return bytes.ReplaceAll(p.data, p.old, p.padded())
}

// OutPath substitutes the first ".so" in the input path. libfoo.so.1 becomes
// libfoo_fixed.so.1; a path without ".so" comes back unchanged.
func (p *TypePatcher) OutPath() string {
	return strings.Replace(p.path, ".so", "_fixed.so", 1)
}

func (p *TypePatcher) Write(out []byte) error {
	outPath := p.OutPath()
	if err := unix.Access(filepath.Dir(outPath), unix.W_OK); err != nil {
		return fmt.Errorf("cannot write %s: %w", outPath, err)
	}
	return os.WriteFile(outPath, out, p.mode)
}
