package main

import (
	"os"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
