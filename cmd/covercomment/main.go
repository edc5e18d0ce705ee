package main

import (
	"os"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/covercomment/internal/cli"
	"github.com/ericfisherdev/covercomment/internal/logging"
)

func main() {
	logging.Setup(os.Getenv("COVERCOMMENT_LOG_LEVEL"))
	os.Exit(cli.Run())
}
