// Copyright (C) 2025 Tensorland, Inc.
// See LICENSE for copying information.

// ModelBox server binary.
//
// Usage:
//
//	modelbox <config_path> server start
//	modelbox <config_path> server init-config
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tensorland/modelbox/pkg/config"
	"github.com/tensorland/modelbox/pkg/modelstore"
	"github.com/tensorland/modelbox/pkg/process"
)

var configPath string

var (
	rootCmd = &cobra.Command{
		Use:   "modelbox <config_path>",
		Short: "ModelBox is a metadata and artifact store for ML models",
	}

	serverCmd = &cobra.Command{
		Use:   "server",
		Short: "Manage the ModelBox server",
	}

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the ModelBox server",
		RunE:  cmdStart,
	}

	initConfigCmd = &cobra.Command{
		Use:   "init-config",
		Short: "Write a default server configuration",
		RunE:  cmdInitConfig,
	}
)

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.AddCommand(startCmd, initConfigCmd)
}

func cmdStart(cmd *cobra.Command, args []string) (err error) {
	log, err := process.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := process.Ctx()
	defer cancel()

	return modelstore.NewAgent(log.Named("modelbox"), conf).Run(ctx)
}

func cmdInitConfig(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return process.Error.New("no config path provided")
	}
	if err := config.Default().Write(configPath); err != nil {
		return err
	}
	log, err := process.NewLogger()
	if err != nil {
		return err
	}
	log.Info("wrote default config", zap.String("path", configPath))
	return log.Sync()
}

func main() {
	// The config path precedes the subcommand, so pop it before cobra
	// resolves the command tree.
	if len(os.Args) > 1 && !strings.HasPrefix(os.Args[1], "-") && os.Args[1] != "help" {
		configPath = os.Args[1]
		os.Args = append(os.Args[:1], os.Args[2:]...)
	}
	process.Execute(rootCmd)
}
