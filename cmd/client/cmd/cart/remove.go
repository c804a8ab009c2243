// cmd/client/cmd/cart/remove.go
package cart

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeQuantity int

var RemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Убрать товар из корзины",
	Long: `Без флагов удаляет позицию целиком. Флаг --quantity задает
новое количество; значение меньше единицы тоже удаляет позицию.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("quantity") {
			app.Cart.UpdateQuantity(args[0], removeQuantity)
		} else {
			app.Cart.RemoveItem(args[0])
		}

		fmt.Printf("Итого в корзине: %d ₽\n", app.Cart.Total())
		return nil
	},
}

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Очистить корзину",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		app.Cart.Clear()
		fmt.Println("Корзина очищена")
		return nil
	},
}

func init() {
	RemoveCmd.Flags().IntVarP(&removeQuantity, "quantity", "q", 0, "новое количество")
}
