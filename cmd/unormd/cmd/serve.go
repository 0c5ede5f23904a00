package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TryMightyAI/unorm/pkg/cache"
	"github.com/TryMightyAI/unorm/pkg/config"
	"github.com/TryMightyAI/unorm/pkg/server"
)

var configPath string

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "unorm.yaml", "path to the YAML config file")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the normalization HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		var results cache.Cache = cache.Noop{}
		if cfg.Redis.Addr != "" {
			redisCache, err := cache.NewRedis(cmd.Context(), cfg.Redis.Addr,
				cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL.Std())
			if err != nil {
				return fmt.Errorf("connect result cache: %w", err)
			}
			defer redisCache.Close()
			results = redisCache
			fmt.Printf("[INFO] result cache enabled at %s\n", cfg.Redis.Addr)
		}

		srv := server.New(cfg, results)
		go func() {
			<-cmd.Context().Done()
			_ = srv.Shutdown()
		}()
		return srv.Listen()
	},
}
