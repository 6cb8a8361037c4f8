package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mikeydub/go-nostrss/cli"
)

func main() {
	godotenv.Load()
	os.Exit(cli.Execute())
}
