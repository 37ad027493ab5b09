//go:build cli
// +build cli

package main

import (
	_ "mft.GO/cron/jobs"

	"mft.GO/cmd"
	"mft.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
