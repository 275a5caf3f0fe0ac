package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gitlab.com/aoterocom/AODepthView/app"
)

func main() {
	if err := app.NewApp().Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}
