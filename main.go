package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/pavanpadamata/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
