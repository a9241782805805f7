package main

import (
	"flag"
	"log"

	"github.com/danmuck/extctl/internal/config"
)

func main() {
	output := flag.String("output", "extension.toml", "output path for manifest template")
	validate := flag.Bool("validate", false, "validate an existing manifest")
	input := flag.String("input", "", "manifest path for validation (defaults to -output)")
	force := flag.Bool("force", false, "overwrite existing manifest")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = *output
		}
		if _, err := config.LoadManifest(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated manifest at %s", path)
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote manifest template to %s", *output)
}
