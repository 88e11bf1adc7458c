package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/schoolos/schoolos/core"
	"github.com/schoolos/schoolos/core/school"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)

	// start CLI
	cli := commandLine{
		conf:      conf,
		schoolSvc: school.NewService(),
		client:    &http.Client{Timeout: 5 * time.Second},
		out:       os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
