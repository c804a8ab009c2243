// cmd/client/cmd/checkout/checkout.go
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gomarket/cmd/client/cmd/types"
	"gomarket/internal/app/client"
	"gomarket/internal/domain/order"
)

var (
	checkoutName  string
	checkoutPhone string
	checkoutEmail string
)

// CheckoutCmd оформляет заказ из текущей корзины: предзаполнение,
// контакт, адрес, отправка, очистка корзины.
var CheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Оформить заказ",
	Long: `Оформление заказа из корзины. Контакт и адрес доставки
подтягиваются из сохраненных данных; телефон и имя можно
переопределить флагами.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		current := app.Session.Current()
		if !current.Authenticated() {
			return fmt.Errorf("требуется вход: gomarket auth login")
		}
		u := current.User

		items := app.Cart.Items()
		if len(items) == 0 {
			return fmt.Errorf("корзина пуста")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		app.Prefill.Load(ctx, u, app.Client.Token())
		if msg := app.Prefill.Err(); msg != "" {
			return fmt.Errorf("%s", msg)
		}

		addressID := app.Addresses.Selected()
		if addressID == "" {
			return fmt.Errorf("не выбран адрес доставки: gomarket address add / select")
		}

		name := firstNonEmpty(checkoutName, u.Name)
		phone := firstNonEmpty(checkoutPhone, u.Phone)
		email := firstNonEmpty(checkoutEmail, u.Email)
		if phone == "" {
			return fmt.Errorf("не указан телефон: --phone или gomarket auth profile --phone")
		}

		contact, err := app.Prefill.EnsureContact(ctx, name, phone, email)
		if err != nil {
			return fmt.Errorf("ошибка сохранения контакта: %w", err)
		}

		lines := make([]order.Line, 0, len(items))
		for _, item := range items {
			lines = append(lines, order.Line{
				ProductID: item.Product.ID,
				Quantity:  item.Quantity,
			})
		}

		created, err := app.Orders.Submit(ctx, lines, addressID, contact.ID)
		if err != nil {
			return fmt.Errorf("ошибка оформления заказа: %w", err)
		}

		app.Cart.Clear()
		// свежий заказ должен быть виден следующему чекауту сразу
		app.Prefill.Invalidate(u.ID)

		bold := color.New(color.Bold)
		fmt.Println()
		bold.Printf("✅ Заказ %s оформлен\n", created.ID)
		fmt.Printf("Сумма: %d ₽\n", created.Total)
		return nil
	},
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	CheckoutCmd.Flags().StringVar(&checkoutName, "name", "", "имя получателя")
	CheckoutCmd.Flags().StringVar(&checkoutPhone, "phone", "", "телефон получателя")
	CheckoutCmd.Flags().StringVar(&checkoutEmail, "email", "", "email получателя")
}
