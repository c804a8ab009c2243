// cmd/client/cmd/init.go
package cmd

import (
	"gomarket/cmd/client/cmd/address"
	"gomarket/cmd/client/cmd/auth"
	"gomarket/cmd/client/cmd/cart"
	"gomarket/cmd/client/cmd/checkout"
	"gomarket/cmd/client/cmd/favorites"
	"gomarket/cmd/client/cmd/feed"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.ProfileCmd)

	rootCmd.AddCommand(feed.FeedCmd)

	rootCmd.AddCommand(cart.CartCmd)
	cart.CartCmd.AddCommand(cart.AddCmd)
	cart.CartCmd.AddCommand(cart.ListCmd)
	cart.CartCmd.AddCommand(cart.RemoveCmd)
	cart.CartCmd.AddCommand(cart.ClearCmd)

	rootCmd.AddCommand(favorites.FavoritesCmd)
	favorites.FavoritesCmd.AddCommand(favorites.ListCmd)
	favorites.FavoritesCmd.AddCommand(favorites.ToggleCmd)

	rootCmd.AddCommand(address.AddressCmd)
	address.AddressCmd.AddCommand(address.ListCmd)
	address.AddressCmd.AddCommand(address.AddCmd)
	address.AddressCmd.AddCommand(address.SelectCmd)
	address.AddressCmd.AddCommand(address.RemoveCmd)

	rootCmd.AddCommand(checkout.CheckoutCmd)
	rootCmd.AddCommand(checkout.OrdersCmd)
}
