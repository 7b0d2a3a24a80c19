package main

import (
	"flag"
	"fmt"
	"os"
)

func run(args []string) int {
	fs := flag.NewFlagSet("symfix", flag.ContinueOnError)
	oldPat := fs.String("old", defaultOldPattern, "symbol name to search for")
	newPat := fs.String("new", defaultNewPattern, "replacement name, null-padded to the search length")
	dryRun := fs.Bool("n", false, "report matches without writing")
	scan := fs.Bool("scan", false, "list overlong names and exit without writing")
	limit := fs.Int("limit", defaultLimit, "name length threshold for -scan")
	verbose := fs.Bool("v", false, "hexdump each match region")
	interactive := fs.Bool("i", false, "interactive shell")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [OPTIONS] <path_to_so_file>\n", os.Args[0])
		fmt.Fprintf(fs.Output(), "\nThe output path replaces the first \".so\" in the input path with \"_fixed.so\".\n")
		fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Invalid arguments\n")
		fs.Usage()
		return 1
	}

	path := fs.Arg(0)
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: File %s not found\n", path)
		return 1
	}

	patcher, err := NewPatcher(path, []byte(*oldPat), []byte(*newPat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid arguments: %s\n", err)
		fs.Usage()
		return 1
	}

	if *scan {
		if err := scanLong(path, *limit); err != nil {
			LogError(err.Error())
			return 1
		}
		return 0
	}

	if err := patcher.Load(); err != nil {
		LogError(err.Error())
		return 1
	}

	if *interactive {
		patcher.Interactive()
		return 0
	}

	offs := patcher.Matches()
	if *dryRun || *verbose {
		secs := offsetSections(path, offs)
		for i, off := range offs {
			label := fmt.Sprintf("match @ 0x%x", off)
			if secs[i] != "" {
				label = fmt.Sprintf("match @ 0x%x (%s)", off, secs[i])
			}
			hLine(label)
			dumpRegion(os.Stdout, patcher.data, off, len(patcher.old))
		}
	}

	if *dryRun {
		Printf("%d match(es), dry run, nothing written\n", len(offs))
		return 0
	}

	out := patcher.Apply()
	if err := patcher.Write(out); err != nil {
		LogError(err.Error())
		return 1
	}
	fmt.Printf("Fixed file written to: %s\n", patcher.OutPath())

	if *verbose {
		for _, off := range offs {
			hLine(fmt.Sprintf("patched @ 0x%x", off))
			dumpRegion(os.Stdout, out, off, len(patcher.old))
		}
	}

	fmt.Printf("Successfully shortened symbol names in %s\n", patcher.OutPath())
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
