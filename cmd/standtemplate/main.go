package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/milk9111/standmaker/data"
	"github.com/milk9111/standmaker/svgexport"
)

func main() {
	out := flag.String("out", "data/base.svg", "Where to write the generated template")
	check := flag.Bool("check", false, "Only report whether -out matches the generated template")
	flag.Parse()

	var buf bytes.Buffer
	if err := data.GenerateBase(&buf); err != nil {
		log.Fatalf("Failed to generate template: %v", err)
	}

	if *check {
		current, err := os.ReadFile(*out)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *out, err)
		}
		if !bytes.Equal(current, buf.Bytes()) {
			log.Fatalf("%s is out of date; run standtemplate to regenerate it", *out)
		}
		log.Printf("%s is up to date", *out)
		return
	}

	if err := svgexport.WriteFile(*out, buf.Bytes()); err != nil {
		log.Fatalf("Failed to write template: %v", err)
	}
	log.Printf("Wrote %s", *out)
}
