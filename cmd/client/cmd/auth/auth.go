package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"gomarket/cmd/client/cmd/types"
	"gomarket/internal/app/client"
)

// AuthCmd - родительская команда для всех операций с учетной записью
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление учетной записью",
	Long:  `Регистрация, вход, выход и профиль пользователя.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
