package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/elevator/internal/elevator/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := elevator(); err != nil {
		logrus.Fatal(err)
	}
}

func elevator() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
