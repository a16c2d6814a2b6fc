// SPDX-License-Identifier: MIT

// Command motion runs occlusion-aware array computations over fixture files.
package main

import (
	"os"

	"github.com/katalvlaran/motion/cmd/motion/commands"
	"github.com/katalvlaran/motion/internal/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
