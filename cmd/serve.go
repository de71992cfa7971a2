package cmd

import (
	"github.com/bz888/agentchat/internal/api/server"
	"github.com/bz888/agentchat/internal/config"
	"github.com/bz888/agentchat/internal/logger"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the backend only, for the browser widget",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		logger.InitLogger(config.Dev, config.LogPath, nil)
		server.Init()

		return server.Run(cfg)
	},
}
