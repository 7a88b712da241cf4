package main

import (
	"log"

	"github.com/hosseinfallah-h/iSelect-applicant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
