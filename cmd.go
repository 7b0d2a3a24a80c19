package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
)

type cmdHandler struct {
	regex *regexp.Regexp
	fn    func(*TypePatcher, interface{}) error
}

var compiledCmds = []cmdHandler{
	{regexp.MustCompile(`^\s*(scan|SCAN)(?:\s+([1-9][0-9]*))?\s*$`), (*TypePatcher).cmdScan},
	{regexp.MustCompile(`^\s*(old|OLD)\s+(\S+)\s*$`), (*TypePatcher).cmdOld},
	{regexp.MustCompile(`^\s*(new|NEW)\s+(\S+)\s*$`), (*TypePatcher).cmdNew},
	{regexp.MustCompile(`^\s*(show|SHOW)\s*$`), (*TypePatcher).cmdShow},
	{regexp.MustCompile(`^\s*(db|xxd)\s+(0[xX][0-9a-fA-F]+|0[0-7]+|[1-9][0-9]*|0)(?:\s+(0[xX][0-9a-fA-F]+|0[0-7]+|[1-9][0-9]*|0))?\s*$`), (*TypePatcher).cmdDumpByte},
	{regexp.MustCompile(`^\s*(patch|PATCH|w|write)\s*$`), (*TypePatcher).cmdPatch},
	{regexp.MustCompile(`^\s*(help|h|\?)\s*$`), (*TypePatcher).cmdHelp},
}

func (p *TypePatcher) cmdExec(req string) error {
	for _, handler := range compiledCmds {
		if m := handler.regex.FindStringSubmatch(req); m != nil {
			return handler.fn(p, m)
		}
	}
	return errors.New("unknown command")
}

func (p *TypePatcher) cmdScan(a interface{}) error {
	args, ok := a.([]string)
	if !ok {
		return errors.New("invalid arguments")
	}

	limit := defaultLimit
	if len(args) > 2 && args[2] != "" {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		limit = n
	}

	return scanLong(p.path, limit)
}

func (p *TypePatcher) cmdOld(a interface{}) error {
	args, ok := a.([]string)
	if !ok || len(args) < 3 {
		return errors.New("invalid arguments")
	}

	pattern := []byte(args[2])
	if len(p.rep) > len(pattern) {
		return errors.New("replacement longer than search pattern")
	}
	p.old = pattern
	Printf("search pattern set, %d bytes, %d match(es)\n", len(p.old), len(p.Matches()))
	return nil
}

func (p *TypePatcher) cmdNew(a interface{}) error {
	args, ok := a.([]string)
	if !ok || len(args) < 3 {
		return errors.New("invalid arguments")
	}

	rep := []byte(args[2])
	if len(rep) > len(p.old) {
		return errors.New("replacement longer than search pattern")
	}
	p.rep = rep
	Printf("replacement set, %d bytes, padded to %d\n", len(p.rep), len(p.old))
	return nil
}

func (p *TypePatcher) cmdShow(a interface{}) error {
	Printf("file: %s (%d bytes)\n", p.path, len(p.data))
	Printf("old:  %s (%d bytes)\n", string(p.old), len(p.old))
	Printf("new:  %s (%d bytes, padded to %d)\n", string(p.rep), len(p.rep), len(p.old))

	offs := p.Matches()
	secs := offsetSections(p.path, offs)
	Printf("%d match(es)\n", len(offs))
	for i, off := range offs {
		if secs[i] != "" {
			Printf("  0x%x %s\n", off, secs[i])
		} else {
			Printf("  0x%x\n", off)
		}
	}
	return nil
}

func (p *TypePatcher) cmdDumpByte(a interface{}) error {
	args, ok := a.([]string)
	if !ok || len(args) < 3 {
		return errors.New("invalid arguments")
	}

	off, err := strconv.ParseUint(args[2], 0, 64)
	if err != nil {
		return err
	}
	var n uint64 = 64
	if len(args) > 3 && args[3] != "" {
		n, err = strconv.ParseUint(args[3], 0, 64)
		if err != nil {
			return err
		}
	}

	if off >= uint64(len(p.data)) {
		return fmt.Errorf("offset 0x%x beyond end of file (0x%x)", off, len(p.data))
	}
	if remain := uint64(len(p.data)) - off; n > remain {
		n = remain
	}

	hexDump(os.Stdout, p.data[off:off+n], off)
	return nil
}

func (p *TypePatcher) cmdPatch(a interface{}) error {
	offs := p.Matches()
	if len(offs) == 0 {
		Printf("pattern not found, writing unmodified copy\n")
	}

	outPath := p.OutPath()
	if _, err := os.Stat(outPath); err == nil {
		if !confirmOverwrite(outPath) {
			return errors.New("aborted")
		}
	}

	if err := p.Write(p.Apply()); err != nil {
		return err
	}
	fmt.Printf("Fixed file written to: %s\n", outPath)
	fmt.Printf("Successfully shortened symbol names in %s\n", outPath)
	return nil
}

func (p *TypePatcher) cmdHelp(a interface{}) error {
	fmt.Printf("scan [limit]   list names longer than limit bytes (default %d)\n", defaultLimit)
	fmt.Printf("old <bytes>    set the search pattern\n")
	fmt.Printf("new <bytes>    set the replacement (null-padded on write)\n")
	fmt.Printf("show           current patterns and match offsets\n")
	fmt.Printf("db <off> [n]   hexdump n bytes at file offset\n")
	fmt.Printf("patch          write the patched copy\n")
	fmt.Printf("q              quit\n")
	return nil
}
