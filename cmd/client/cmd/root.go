// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"gomarket/cmd/client/cmd/types"
	"gomarket/internal/app/client"
	"gomarket/internal/app/client/config"
	"gomarket/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "gomarket",
	Short: "Gomarket - консольный клиент маркетплейса",
	Long: `Gomarket — клиент маркетплейса: лента товаров, корзина,
избранное, адреса доставки и оформление заказа.

Сессия и корзина сохраняются локально и переживают перезапуск.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	// Подкоманды достают приложение из контекста
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL сервера Gomarket")
}
