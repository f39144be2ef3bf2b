package main

import (
	"os"

	"github.com/jfcharron/sqdc-strain-scraper/cmd/strain-scraper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
