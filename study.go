package main

import (
	"log"

	"tableflip.dev/study/pkg/commands"
)

func main() {
	log.SetFlags(0)
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
