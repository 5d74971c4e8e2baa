package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencampus/librarymap/internal/profile"
	"github.com/opencampus/librarymap/server"
	apiv1 "github.com/opencampus/librarymap/server/router/api/v1"
	"github.com/opencampus/librarymap/store"
	"github.com/opencampus/librarymap/store/db"
)

const (
	greetingBanner = `
 _ _ _
| (_) |__  _ __ __ _ _ __ _   _ _ __ ___   __ _ _ __
| | | '_ \| '__/ _` + "`" + ` | '__| | | | '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \
| | | |_) | | | (_| | |  | |_| | | | | | | (_| | |_) |
|_|_|_.__/|_|  \__,_|_|   \__, |_| |_| |_|\__,_| .__/
                          |___/                |_|
`
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "librarymap",
	Short: "A campus library map service with live open hours",
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:    viper.GetString("mode"),
			Addr:    viper.GetString("addr"),
			Port:    viper.GetInt("port"),
			Data:    viper.GetString("data"),
			Driver:  viper.GetString("driver"),
			DSN:     viper.GetString("dsn"),
			Secret:  viper.GetString("secret"),
			Version: version,
		}
		if err := instanceProfile.Validate(); err != nil {
			slog.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
		instanceProfile.FromEnv()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		dbDriver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			slog.Error("failed to create db driver", "error", err)
			os.Exit(1)
		}

		storeInstance := store.New(dbDriver, instanceProfile)
		if err := storeInstance.Migrate(ctx); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}

		s, err := server.NewServer(ctx, instanceProfile, storeInstance)
		if err != nil {
			slog.Error("failed to create server", "error", err)
			os.Exit(1)
		}

		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		go func() {
			sig := <-signals
			slog.Info("received signal, shutting down", "signal", sig.String())
			s.Shutdown(context.Background())
			cancel()
		}()

		fmt.Print(greetingBanner)
		fmt.Printf("Version %s has been started on port %d\n", version, instanceProfile.Port)

		if err := s.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			cancel()
		}

		<-ctx.Done()
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin token for the mutating API endpoints",
	RunE: func(cmd *cobra.Command, _ []string) error {
		secret := viper.GetString("secret")
		if secret == "" {
			return errors.New("a secret is required; pass --secret or set LIBRARYMAP_SECRET")
		}
		expiration, err := cmd.Flags().GetDuration("expiration")
		if err != nil {
			return err
		}
		token, err := apiv1.GenerateAdminToken(secret, expiration)
		if err != nil {
			return err
		}
		cmd.Println(token)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("mode", "demo", `mode of the server, can be "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of the server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", `database driver, can be "sqlite" or "postgres"`)
	rootCmd.PersistentFlags().String("dsn", "", "database source name (aka. DSN)")
	rootCmd.PersistentFlags().String("secret", "", "secret that signs admin tokens")

	for _, flag := range []string{"mode", "addr", "port", "data", "driver", "dsn", "secret"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	viper.SetDefault("mode", "demo")
	viper.SetDefault("driver", "sqlite")
	viper.SetDefault("port", 8081)
	viper.SetEnvPrefix("librarymap")
	viper.AutomaticEnv()

	tokenCmd.Flags().Duration("expiration", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
