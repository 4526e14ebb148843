package main

import (
	"github.com/NVIDIA/version-buddy/pkg/cli"
)

func main() {
	cli.Execute()
}
