package main

import (
	"debug/elf"
	"fmt"
	"sort"
)

const defaultLimit = 64

type LongName struct {
	Name  string
	Table string
}

// String tables worth walking. The section-name table matters most here:
// the ".bss.<mangled>" strings this tool shortens live in .shstrtab and
// never show up through the symbol views.
var strTables = []string{".shstrtab", ".strtab", ".dynstr"}

func namesFromTable(strs []byte) []string {
	var names []string
	start := 0
	for i, b := range strs {
		if b != 0 {
			continue
		}
		if i > start {
			names = append(names, string(strs[start:i]))
		}
		start = i + 1
	}
	if start < len(strs) {
		names = append(names, string(strs[start:]))
	}
	return names
}

func longNames(path string, limit int) ([]LongName, error) {
	file, err := elf.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	seen := make(map[string]bool)
	var found []LongName
	for _, tab := range strTables {
		section := file.Section(tab)
		if section == nil {
			continue
		}
		data, err := section.Data()
		if err != nil {
			continue
		}
		for _, name := range namesFromTable(data) {
			if len(name) <= limit || seen[name] {
				continue
			}
			seen[name] = true
			found = append(found, LongName{Name: name, Table: tab})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if len(found[i].Name) != len(found[j].Name) {
			return len(found[i].Name) > len(found[j].Name)
		}
		return found[i].Name < found[j].Name
	})
	return found, nil
}

func sectionForOffset(file *elf.File, off uint64) string {
	for _, s := range file.Sections {
		if s.Type == elf.SHT_NOBITS || s.FileSize == 0 {
			continue
		}
		if off >= s.Offset && off < s.Offset+s.FileSize {
			return s.Name
		}
	}
	return ""
}

// offsetSections maps file offsets to the section each lands in. Best
// effort: a non-ELF input warns and yields no annotations, the patcher
// itself never needs section headers.
func offsetSections(path string, offs []int) []string {
	secs := make([]string, len(offs))
	file, err := elf.Open(path)
	if err != nil {
		LogWarn("cannot annotate offsets: %s", err)
		return secs
	}
	defer file.Close()

	for i, off := range offs {
		secs[i] = sectionForOffset(file, uint64(off))
	}
	return secs
}

func scanLong(path string, limit int) error {
	found, err := longNames(path, limit)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		Printf("no names longer than %d bytes in %s\n", limit, path)
		return nil
	}

	hLine(fmt.Sprintf("names > %d bytes", limit))
	for _, n := range found {
		fmt.Printf("%s%4d%s %-9s %s\n", ColorCyan, len(n.Name), ColorReset, n.Table, n.Name)
	}
	return nil
}
