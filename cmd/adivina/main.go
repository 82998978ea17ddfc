package main

import (
	"github.com/javiertc/adivina-go/internal/cli"
)

func main() {
	cli.Execute()
}
