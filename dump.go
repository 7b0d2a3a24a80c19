package main

import (
	"fmt"
	"io"
)

func hexDump(w io.Writer, data []byte, base uint64) {
	for i := 0; i < len(data); i += 16 {
		fmt.Fprintf(w, "%016x: ", base+uint64(i))

		for j := 0; j < 16; j++ {
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(w, "   ")
			}
		}

		fmt.Fprintf(w, " |")

		for j := 0; j < 16 && i+j < len(data); j++ {
			b := data[i+j]
			if b >= 32 && b <= 126 {
				fmt.Fprintf(w, "%c", b)
			} else {
				fmt.Fprintf(w, ".")
			}
		}

		fmt.Fprintf(w, "|\n")
	}
}

// dumpRegion shows the rows covering [off, off+n) plus one row of context on
// each side, aligned to 16 bytes so offsets line up between runs.
func dumpRegion(w io.Writer, data []byte, off, n int) {
	start := off - 16
	if start < 0 {
		start = 0
	}
	start &^= 0xf

	end := off + n + 16
	if end > len(data) {
		end = len(data)
	}

	hexDump(w, data[start:end], uint64(start))
}
