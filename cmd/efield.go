package main

import (
	"os"

	efield "github.com/kpfaulkner/efield-go"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := efield.RunExamples(os.Stdout, nil); err != nil {
		log.Errorf("Error writing examples: %v\n", err)
	}
}
