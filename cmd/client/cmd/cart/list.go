// cmd/client/cmd/cart/list.go
package cart

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listJSON bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать содержимое корзины",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		items := app.Cart.Items()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(items)
		}

		if len(items) == 0 {
			fmt.Println("Корзина пуста")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Println("Корзина")
		for _, item := range items {
			fmt.Printf("  %s  %s × %d = %d ₽\n",
				item.Product.ID, item.Product.Title, item.Quantity,
				item.Product.Price*item.Quantity)
		}
		fmt.Println()
		bold.Printf("Итого: %d ₽\n", app.Cart.Total())
		return nil
	},
}

func init() {
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "вывод в формате JSON")
}
