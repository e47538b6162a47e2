// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

// Package process sets up process-wide concerns of ModelBox commands:
// flag and environment binding, logging and lifetime contexts.
package process

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Execute runs a *cobra.Command with ModelBox-wide process configuration:
// go flags merged into pflag and environment overrides under the MODELBOX
// prefix (MODELBOX_LOG_LEVEL and friends).
func Execute(cmd *cobra.Command) {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	cobra.OnInitialize(func() {
		_ = viper.BindPFlags(cmd.Flags())
		viper.SetEnvPrefix("modelbox")
		viper.AutomaticEnv()
	})

	Must(cmd.Execute())
}

// Ctx returns a context that is cancelled when the process receives an
// interrupt or termination signal.
func Ctx() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	return ctx, cancel
}

// Must exits the process on error.
func Must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
