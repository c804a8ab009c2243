package address

import (
	"fmt"

	"github.com/spf13/cobra"

	"gomarket/cmd/client/cmd/types"
	"gomarket/internal/app/client"
)

// AddressCmd - родительская команда для адресов доставки
var AddressCmd = &cobra.Command{
	Use:   "address",
	Short: "Адреса доставки",
	Long: `Список адресов хранится на сервере, выбранный адрес
подставляется при оформлении заказа.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

func requireUser(app *client.App) (string, error) {
	current := app.Session.Current()
	if !current.Authenticated() {
		return "", fmt.Errorf("требуется вход: gomarket auth login")
	}
	return current.User.ID, nil
}
