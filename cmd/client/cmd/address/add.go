// cmd/client/cmd/address/add.go
package address

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gomarket/internal/domain/address"
)

var (
	addApartment string
	addFloor     string
	addLabel     string
	addComment   string
	addSelect    bool
)

var AddCmd = &cobra.Command{
	Use:   "add <текст адреса>",
	Short: "Добавить адрес доставки",
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

		created, err := app.Addresses.AddAddress(ctx, address.Address{
			AddressText:    args[0],
			Apartment:      addApartment,
			Floor:          addFloor,
			Label:          addLabel,
			CourierComment: addComment,
		})
		if err != nil {
			return fmt.Errorf("ошибка добавления адреса: %w", err)
		}

		if addSelect {
			if err := app.Addresses.SelectAddress(ctx, userID, created.ID); err != nil {
				return fmt.Errorf("адрес создан, но не выбран: %w", err)
			}
		}

		fmt.Printf("✓ Адрес добавлен: %s\n", created.ID)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVar(&addApartment, "apartment", "", "квартира")
	AddCmd.Flags().StringVar(&addFloor, "floor", "", "этаж")
	AddCmd.Flags().StringVar(&addLabel, "label", "", "метка, например Дом или Работа")
	AddCmd.Flags().StringVar(&addComment, "comment", "", "комментарий курьеру")
	AddCmd.Flags().BoolVar(&addSelect, "select", false, "сразу сделать адресом по умолчанию")
}
