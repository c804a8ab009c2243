// cmd/client/cmd/address/select.go
package address

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var SelectCmd = &cobra.Command{
	Use:   "select <address-id>",
	Short: "Выбрать адрес по умолчанию",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}
		userID, err := requireUser(app)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Addresses.SelectAddress(ctx, userID, args[0]); err != nil {
			return fmt.Errorf("ошибка выбора адреса: %w", err)
		}

		fmt.Println("✓ Адрес по умолчанию обновлен")
		return nil
	},
}

var RemoveCmd = &cobra.Command{
	Use:   "remove <address-id>",
	Short: "Удалить адрес",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}
		if _, err := requireUser(app); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Addresses.RemoveAddress(ctx, args[0]); err != nil {
			return fmt.Errorf("ошибка удаления адреса: %w", err)
		}

		fmt.Println("✓ Адрес удален")
		if app.Addresses.Selected() == "" {
			fmt.Println("Адрес по умолчанию сброшен, выберите новый: gomarket address select <id>")
		}
		return nil
	},
}
