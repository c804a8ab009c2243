// cmd/client/cmd/cart/add.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gomarket/internal/app/client"
	"gomarket/internal/domain/product"
)

var addQuantity int

var AddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Добавить товар в корзину",
	Long: `Добавление товара по его ID. Повторное добавление того же
товара увеличивает количество существующей позиции.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		// Берем снапшот товара с витрины: цена фиксируется в позиции
		p, err := client.RequestJSON[product.Product](ctx, app.Client, "/api/v1/products/"+args[0], client.RequestOptions{})
		if err != nil {
			return fmt.Errorf("товар не найден: %w", err)
		}

		app.Cart.AddItem(p, addQuantity)

		fmt.Printf("✓ %s × %d добавлен в корзину\n", p.Title, addQuantity)
		fmt.Printf("Итого в корзине: %d ₽\n", app.Cart.Total())
		return nil
	},
}

func init() {
	AddCmd.Flags().IntVarP(&addQuantity, "quantity", "q", 1, "количество")
}
