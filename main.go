package main

import (
	"os"

	"github.com/MyelinBots/heartbeat-go/cmd"
	"github.com/apex/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error("heartbeat failed")
		os.Exit(1)
	}
}
