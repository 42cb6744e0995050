package main

import (
	"github.com/jarijaas/go-igapi/cmd/igcli/cmd"
	log "github.com/sirupsen/logrus"
)

func main() {

	log.SetFormatter(&log.TextFormatter{ForceColors: true})

	cmd.Execute()
}
