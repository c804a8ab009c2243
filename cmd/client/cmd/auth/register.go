// cmd/client/cmd/auth/register.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	registerName  string
	registerPhone string
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрироваться на сервере Gomarket",
	Long: `Регистрация новой учетной записи.

После успешной регистрации вход выполняется автоматически.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Регистрация ===")
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

		fmt.Print("Повторите пароль: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("пароли не совпадают")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Session.Register(ctx, email, string(password), registerName, registerPhone); err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Регистрация выполнена, вы вошли в систему")
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVar(&registerName, "name", "", "имя пользователя")
	RegisterCmd.Flags().StringVar(&registerPhone, "phone", "", "номер телефона")
}
