// cmd/client/cmd/auth/profile.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gomarket/internal/domain/user"
)

var (
	profileName    string
	profilePhone   string
	profileAddress string
	profileJSON    bool
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Показать или изменить профиль",
	Long: `Без флагов выводит текущий профиль. Флаги --name, --phone
и --address меняют только переданные поля.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		current := app.Session.Current()
		if !current.Authenticated() {
			return fmt.Errorf("требуется вход: gomarket auth login")
		}

		patch := user.ProfilePatch{}
		changed := false
		if cmd.Flags().Changed("name") {
			patch.Name = &profileName
			changed = true
		}
		if cmd.Flags().Changed("phone") {
			patch.Phone = &profilePhone
			changed = true
		}
		if cmd.Flags().Changed("address") {
			patch.LegacyAddress = &profileAddress
			changed = true
		}

		if changed {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if err := app.Session.UpdateProfile(ctx, patch); err != nil {
				return fmt.Errorf("ошибка обновления профиля: %w", err)
			}
			fmt.Println("✓ Профиль обновлен")
			fmt.Println()
		}

		u := app.Session.Current().User

		if profileJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(u)
		}

		bold := color.New(color.Bold)
		bold.Println("Профиль")
		fmt.Printf("  Email:   %s\n", u.Email)
		fmt.Printf("  Имя:     %s\n", orDash(u.Name))
		fmt.Printf("  Телефон: %s\n", orDash(u.Phone))
		if u.LegacyAddress != "" {
			fmt.Printf("  Адрес:   %s\n", u.LegacyAddress)
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func init() {
	ProfileCmd.Flags().StringVar(&profileName, "name", "", "новое имя")
	ProfileCmd.Flags().StringVar(&profilePhone, "phone", "", "новый телефон")
	ProfileCmd.Flags().StringVar(&profileAddress, "address", "", "адрес свободным текстом")
	ProfileCmd.Flags().BoolVar(&profileJSON, "json", false, "вывод в формате JSON")
}
