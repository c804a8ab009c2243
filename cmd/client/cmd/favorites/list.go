// cmd/client/cmd/favorites/list.go
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listJSON bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать избранное",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Favorites.Load(ctx); err != nil {
			return fmt.Errorf("ошибка загрузки избранного: %w", err)
		}

		items := app.Favorites.Items()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(items)
		}

		if len(items) == 0 {
			fmt.Println("Избранное пусто")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Println("Избранное")
		for _, p := range items {
			fmt.Printf("  %s  %s  %d ₽\n", p.ID, p.Title, p.Price)
		}
		return nil
	},
}

func init() {
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "вывод в формате JSON")
}
