package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/tirecheck/cmd/tirecheck/commands"
)

func main() {
	if err := commands.Execute(viewCmd); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
