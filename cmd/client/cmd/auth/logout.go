// cmd/client/cmd/auth/logout.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из Gomarket",
	Long: `Завершение сессии. Локальная сессия очищается всегда,
даже если сервер недоступен.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		app.Session.Logout(ctx)

		fmt.Println("Сессия завершена")
		return nil
	},
}
