package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"markethealth-api/internal/cli"
	"markethealth-api/internal/config"
	"markethealth-api/pkg/dataset"
)

var (
	configFile = flag.String("f", "etc/markethealth.yaml", "the config file")
	startDate  = flag.String("start", "", "range start (YYYY-MM-DD)")
	endDate    = flag.String("end", "", "range end (YYYY-MM-DD)")
	outPath    = flag.String("o", "-", "output path, '-' for stdout")
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("[export] load config: %v", err)
	}
	for _, line := range cli.ConfigSummaryLines(cfg) {
		log.Printf("  - %s", line)
	}

	loader := dataset.NewLoader(cfg.DataFilePath())
	frame, err := loader.Load()
	if err != nil {
		log.Fatalf("[export] %v", err)
	}

	// Unlike the dashboard's two-tuple guard, the CLI treats a lone bound
	// as a usage mistake rather than silently exporting everything.
	switch {
	case *startDate != "" && *endDate != "":
		rng, ok := dataset.ParseRange(*startDate, *endDate)
		if !ok {
			log.Fatalf("[export] -start/-end must be YYYY-MM-DD dates")
		}
		frame = frame.Slice(rng)
	case *startDate != "" || *endDate != "":
		log.Fatalf("[export] provide both -start and -end, or neither")
	}

	data, err := frame.CSV()
	if err != nil {
		log.Fatalf("[export] serialize: %v", err)
	}

	if *outPath == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("[export] write stdout: %v", err)
		}
		return
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatalf("[export] write %s: %v", *outPath, err)
	}
	fmt.Printf("Exported %d rows to %s\n", frame.Len(), *outPath)
}
