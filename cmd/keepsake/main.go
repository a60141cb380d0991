package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/server"
	"github.com/lyrebird-labs/keepsake/server/version"
	"github.com/lyrebird-labs/keepsake/store"
	"github.com/lyrebird-labs/keepsake/store/db"
)

const greetingBanner = `keepsake - a little scrapbook for two`

var rootCmd = &cobra.Command{
	Use:   "keepsake",
	Short: "A self-hosted relationship keepsake service",
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:             viper.GetString("mode"),
			Addr:             viper.GetString("addr"),
			Port:             viper.GetInt("port"),
			Data:             viper.GetString("data"),
			Driver:           viper.GetString("driver"),
			DSN:              viper.GetString("dsn"),
			RemoteBaseURL:    viper.GetString("remote-base-url"),
			GateSecretHash:   viper.GetString("gate-secret-hash"),
			GateUnlockWindow: viper.GetDuration("gate-unlock-window"),
			Version:          version.GetCurrentVersion(viper.GetString("mode")),
		}
		if err := instanceProfile.Validate(); err != nil {
			slog.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
		if instanceProfile.IsDev() {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		driver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			cancel()
			slog.Error("failed to create db driver", "error", err)
			os.Exit(1)
		}

		storeInstance := store.New(driver, instanceProfile)

		s, err := server.NewServer(ctx, instanceProfile, storeInstance)
		if err != nil {
			cancel()
			slog.Error("failed to create server", "error", err)
			os.Exit(1)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			sig := <-sigCh
			slog.Info("received signal, shutting down", "signal", sig.String())
			s.Shutdown(ctx)
			cancel()
		}()

		printGreetings(instanceProfile)

		if err := s.Start(ctx); err != nil {
			slog.Error("failed to start server", "error", err)
			cancel()
		}

		// Wait for signal handling to finish the shutdown.
		<-ctx.Done()
	},
}

func printGreetings(p *profile.Profile) {
	fmt.Println(greetingBanner)
	fmt.Printf("version %s, mode %s, driver %s\n", p.Version, p.Mode, p.Driver)
	fmt.Printf("listening on %s:%d\n", p.Addr, p.Port)
}

func init() {
	viper.SetDefault("mode", "demo")
	viper.SetDefault("addr", "")
	viper.SetDefault("port", 8081)
	viper.SetDefault("driver", "localfs")
	viper.SetDefault("gate-unlock-window", 5*time.Minute)

	rootCmd.PersistentFlags().String("mode", "demo", `mode of the server, can be "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of the server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "localfs", `storage backend, one of "localfs", "sqlite", "postgres", "remote"`)
	rootCmd.PersistentFlags().String("dsn", "", "database source name")
	rootCmd.PersistentFlags().String("remote-base-url", "", "base URL of the upstream keepsake API")
	rootCmd.PersistentFlags().String("gate-secret-hash", "", "bcrypt hash of the access gate password")
	rootCmd.PersistentFlags().Duration("gate-unlock-window", 5*time.Minute, "how long an unlock lasts")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("keepsake")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("failed to run command", "error", err)
		os.Exit(1)
	}
}
