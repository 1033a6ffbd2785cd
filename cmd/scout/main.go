package main

import (
	"fmt"
	"os"

	"scout/internal/scan"
)

func main() {
	args := os.Args[1:]

	dirs, err := scan.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: scout <dir> [dir...]")
		os.Exit(1)
	}

	for _, dir := range dirs {
		snapshot := scan.Take(dir)
		for _, entry := range snapshot.Entries {
			fmt.Println(entry.Rel)
		}
		fmt.Printf("%s: %d files, %d bytes\n",
			dir.AsAbsoluteString(), snapshot.FileCount(), snapshot.TotalSize)
	}
}
