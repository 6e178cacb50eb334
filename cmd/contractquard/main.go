package main

import (
	"os"

	"github.com/Quant-link/QLK-Contract-Quard/internal/app"
)

func main() {
	if err := app.BuildRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
