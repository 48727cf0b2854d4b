package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var businessCmd = &cobra.Command{
	Use:   "business",
	Short: "Show or set the business identity printed on invoices",
	RunE:  runBusiness,
}

func init() {
	f := businessCmd.Flags()
	f.String("name", "", "business name")
	f.String("street", "", "street address")
	f.String("city", "", "city")
	f.String("state", "", "state or region")
	f.String("postal", "", "postal code")
	f.String("country", "", "country")
	f.String("email", "", "contact email")
	f.String("phone", "", "contact phone")
	f.String("tax-id", "", "tax ID")
	f.String("terms", "", `default payment terms (e.g. "Net 30")`)
	f.Float64("tax-rate", 0, "tax rate percentage")
	f.String("instructions", "", "payment instructions")
	rootCmd.AddCommand(businessCmd)
}

func runBusiness(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	s := db.GetInvoiceSettings(ctx)
	changed := false
	for flag, dst := range map[string]*string{
		"name":         &s.BusinessName,
		"street":       &s.AddressStreet,
		"city":         &s.AddressCity,
		"state":        &s.AddressState,
		"postal":       &s.AddressPostal,
		"country":      &s.AddressCountry,
		"email":        &s.Email,
		"phone":        &s.Phone,
		"tax-id":       &s.TaxID,
		"terms":        &s.DefaultPaymentTerms,
		"instructions": &s.PaymentInstructions,
	} {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetString(flag)
			changed = true
		}
	}
	if cmd.Flags().Changed("tax-rate") {
		s.DefaultTaxRate, _ = cmd.Flags().GetFloat64("tax-rate")
		changed = true
	}

	if changed {
		if err := db.SetInvoiceSettings(ctx, s); err != nil {
			return err
		}
	}

	name := s.BusinessName
	if name == "" {
		name = "(unset)"
	}
	fmt.Printf("Business: %s\n", name)
	if addr := s.FormattedAddress(); addr != "" {
		fmt.Println(addr)
	}
	if s.Email != "" {
		fmt.Println(s.Email)
	}
	if s.Phone != "" {
		fmt.Println(s.Phone)
	}
	if s.TaxID != "" {
		fmt.Printf("Tax ID: %s\n", s.TaxID)
	}
	fmt.Printf("Terms: %s, tax rate %.2f%%\n", s.DefaultPaymentTerms, s.DefaultTaxRate)
	return nil
}
