package main

import (
	"log"
	"os"

	"github.com/TFMV/pathmap/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// A panicking rule callback should not produce a bare stack trace.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pathmap aborted: %v", r)
			os.Exit(1)
		}
	}()

	if err := cmd.Execute(); err != nil {
		log.Fatalf("pathmap: %v", err)
	}
}
