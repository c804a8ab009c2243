package cart

import (
	"fmt"

	"github.com/spf13/cobra"

	"gomarket/cmd/client/cmd/types"
	"gomarket/internal/app/client"
)

// CartCmd - родительская команда для операций с корзиной
var CartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Управление корзиной",
	Long:  `Корзина хранится локально и переживает перезапуск клиента.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
