// cmd/client/cmd/favorites/toggle.go
package favorites

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gomarket/internal/app/client"
	"gomarket/internal/domain/product"
)

var ToggleCmd = &cobra.Command{
	Use:   "toggle <product-id>",
	Short: "Добавить или убрать товар из избранного",
	Long: `Переключение выполняется оптимистично: локальное состояние
меняется сразу, при ошибке сервера откатывается.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		// актуализируем список, чтобы переключение шло от серверного состояния
		if err := app.Favorites.Load(ctx); err != nil {
			return fmt.Errorf("ошибка загрузки избранного: %w", err)
		}

		p, err := client.RequestJSON[product.Product](ctx, app.Client, "/api/v1/products/"+args[0], client.RequestOptions{})
		if err != nil {
			return fmt.Errorf("товар не найден: %w", err)
		}

		app.Favorites.Toggle(ctx, p.Summary())

		if msg := app.Favorites.Err(); msg != "" {
			return fmt.Errorf("%s", msg)
		}

		if app.Favorites.Contains(p.ID) {
			fmt.Printf("★ %s в избранном\n", p.Title)
		} else {
			fmt.Printf("☆ %s убран из избранного\n", p.Title)
		}
		return nil
	},
}
