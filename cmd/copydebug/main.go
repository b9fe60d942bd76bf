package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/anyproto/any-copydebug/app/logger"
)

var log = logger.NewNamed("main")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
