// cmd/client/cmd/checkout/orders.go
package checkout

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

var ordersJSON bool

var OrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "История заказов",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		orders, err := app.Orders.History(ctx)
		if err != nil {
			return fmt.Errorf("ошибка загрузки заказов: %w", err)
		}

		if ordersJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(orders)
		}

		if len(orders) == 0 {
			fmt.Println("Заказов пока нет")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Println("Заказы")
		for _, o := range orders {
			fmt.Printf("  %s  %s  %d ₽  позиций: %d\n",
				o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Total, len(o.Items))
		}
		return nil
	},
}

func init() {
	OrdersCmd.Flags().BoolVar(&ordersJSON, "json", false, "вывод в формате JSON")
}
