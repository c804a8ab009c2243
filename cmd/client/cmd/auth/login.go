// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в Gomarket",
	Long: `Аутентификация на сервере Gomarket.

После входа сессия сохраняется локально: access-токен переживает
перезапуск, refresh-токен ездит в HTTP-only cookie.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Session.Login(ctx, email, string(password)); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		current := app.Session.Current()
		fmt.Println()
		fmt.Printf("✅ Добро пожаловать, %s!\n", current.User.Email)
		return nil
	},
}
