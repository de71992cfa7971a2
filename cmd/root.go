package cmd

import (
	"log"

	"github.com/bz888/agentchat/internal/api/server"
	"github.com/bz888/agentchat/internal/config"
	"github.com/bz888/agentchat/internal/logger"
	"github.com/bz888/agentchat/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agentchat",
	Short: "Multi-agent chat demo: terminal widget plus supervisor backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		ui.Init()
		debugConsole, err := ui.GetDebugConsole()
		if err != nil {
			return err
		}

		logger.InitLogger(config.Dev, config.LogPath, debugConsole)
		server.Init()

		go func() {
			if err := server.Run(cfg); err != nil {
				log.Fatal("Error starting server: ", err)
			}
		}()

		return ui.Run(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&config.Dev, "dev", false, "Development mode")
	rootCmd.PersistentFlags().StringVar(&config.LogPath, "log-path", "", "Path to save the log file")
	rootCmd.AddCommand(serveCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
