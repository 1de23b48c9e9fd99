package main

import (
	"github.com/joho/godotenv"

	"github.com/helixml/helix-preview/api/cmd/drmpreview"
)

func main() {
	_ = godotenv.Load()
	drmpreview.Execute()
}
