// cmd/client/cmd/address/list.go
package address

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listJSON bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать адреса доставки",
	RunE: func(cmd *cobra.Command, _ []string) error {
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

		app.Addresses.LoadAddresses(ctx, userID)
		addresses := app.Addresses.Addresses()
		selected := app.Addresses.Selected()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(addresses)
		}

		if len(addresses) == 0 {
			fmt.Println("Адресов пока нет: gomarket address add \"...\"")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Println("Адреса доставки")
		for _, a := range addresses {
			marker := " "
			if a.ID == selected {
				marker = "*"
			}
			label := ""
			if a.Label != "" {
				label = " [" + a.Label + "]"
			}
			fmt.Printf(" %s %s  %s%s\n", marker, a.ID, a.AddressText, label)
		}
		return nil
	},
}

func init() {
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "вывод в формате JSON")
}
