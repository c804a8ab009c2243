package favorites

import (
	"fmt"

	"github.com/spf13/cobra"

	"gomarket/cmd/client/cmd/types"
	"gomarket/internal/app/client"
)

// FavoritesCmd - родительская команда для избранного
var FavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Избранные товары",
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
