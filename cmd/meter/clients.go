package main

import (
	"fmt"
	"strconv"

	"github.com/meterhq/meter/internal/models"
	"github.com/spf13/cobra"
)

var clientFields models.Client

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage invoice recipients",
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		clients, err := db.ListClients(ctx)
		if err != nil {
			return err
		}
		if len(clients) == 0 {
			fmt.Println("No clients.")
			return nil
		}
		for _, c := range clients {
			fmt.Printf("%-4d %-28s %s\n", c.ID, truncate(c.Name, 28), c.Email)
		}
		return nil
	},
}

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := db.AddClient(ctx, clientFields)
		if err != nil {
			return err
		}
		fmt.Printf("Added client %q (#%d)\n", clientFields.Name, id)
		return nil
	},
}

var clientRemoveCmd = &cobra.Command{
	Use:   "remove <client-id>",
	Short: "Remove a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid client ID %q", args[0])
		}
		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.DeleteClient(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Removed client #%d\n", id)
		return nil
	},
}

func init() {
	f := clientAddCmd.Flags()
	f.StringVar(&clientFields.Name, "name", "", "client name")
	f.StringVar(&clientFields.ContactPerson, "contact", "", "contact person")
	f.StringVar(&clientFields.Email, "email", "", "billing email")
	f.StringVar(&clientFields.AddressStreet, "street", "", "street address")
	f.StringVar(&clientFields.AddressCity, "city", "", "city")
	f.StringVar(&clientFields.AddressState, "state", "", "state or region")
	f.StringVar(&clientFields.AddressPostal, "postal", "", "postal code")
	f.StringVar(&clientFields.AddressCountry, "country", "", "country")
	_ = clientAddCmd.MarkFlagRequired("name")

	clientCmd.AddCommand(clientListCmd, clientAddCmd, clientRemoveCmd)
	rootCmd.AddCommand(clientCmd)
}
