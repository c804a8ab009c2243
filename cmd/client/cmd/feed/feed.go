// cmd/client/cmd/feed/feed.go
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gomarket/cmd/client/cmd/types"
	"gomarket/internal/app/client"
)

var (
	feedPages int
	feedJSON  bool
)

// FeedCmd печатает ленту товаров, подгружая страницы курсором.
var FeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Лента товаров",
	Long: `Подгружает ленту постранично, как бесконечный скролл.
Количество страниц задает флаг --pages.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		for page := 0; page < feedPages; page++ {
			app.Feed.LoadMore(ctx)
			if app.Feed.Stopped() {
				break
			}
			// выжидаем окно дебаунса перед следующей страницей
			time.Sleep(350 * time.Millisecond)
		}

		if msg := app.Feed.Err(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}

		items := app.Feed.Items()

		if feedJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(items)
		}

		if len(items) == 0 {
			fmt.Println("Лента пуста")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Println("Товары")
		for _, p := range items {
			fmt.Printf("  %s  %s  %d ₽\n", p.ID, p.Title, p.Price)
		}
		if app.Feed.Stopped() {
			fmt.Println()
			fmt.Println("Конец ленты")
		}
		return nil
	},
}

func init() {
	FeedCmd.Flags().IntVar(&feedPages, "pages", 1, "сколько страниц подгрузить")
	FeedCmd.Flags().BoolVar(&feedJSON, "json", false, "вывод в формате JSON")
}
