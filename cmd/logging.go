package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-scene-raytracer/pkg/log"
)

var logger = log.New("raytracer")

// setupLogging applies the configured level; -v and -vv take precedence
func setupLogging(ctx *cli.Context, level string) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(parsed)

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}
