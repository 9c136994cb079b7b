package main

import (
	"go-doctor-appointment/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to start doctor appointment service")
	}

	app.Run()
}
