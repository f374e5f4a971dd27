package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kpfaulkner/efield-go/field"
	"github.com/kpfaulkner/efield-go/options"
	"github.com/kpfaulkner/efield-go/scenario"
	log "github.com/sirupsen/logrus"
)

func main() {
	infile := flag.String("f", "", "scenario yaml file")
	builtin := flag.Bool("builtin", false, "run the built in examples instead of a file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file found, using environment")
	}

	level, err := log.ParseLevel(getEnv("EFIELD_LOG_LEVEL", "info"))
	if err != nil {
		log.Fatalf("invalid EFIELD_LOG_LEVEL: %v", err)
	}
	log.SetLevel(level)

	convention, err := options.ParseConvention(os.Getenv("EFIELD_CONVENTION"))
	if err != nil {
		log.Fatalf("invalid EFIELD_CONVENTION: %v", err)
	}

	var scenarios []scenario.Scenario
	switch {
	case *builtin:
		scenarios = scenario.Builtin()
	case *infile != "":
		scenarios, err = scenario.LoadFile(*infile)
		if err != nil {
			log.Fatalf("Error loading scenarios: %v", err)
		}
	default:
		fmt.Printf("either -f or -builtin must be specified\n")
		os.Exit(1)
	}

	opts := options.NewFieldOptions(&options.FieldOptions{
		Convention: convention,
		Debug:      level >= log.DebugLevel,
	})
	log.Debugf("running %d scenarios with %s convention", len(scenarios), opts.Convention)

	runner := scenario.NewRunner(os.Stdout, field.NewEvaluator(field.WithOptions(opts)))
	if err := runner.RunAll(scenarios); err != nil {
		log.Fatalf("Error running scenarios: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
