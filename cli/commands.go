package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/qr-tracker/internal/client"
	"github.com/rogerio-castellano/qr-tracker/internal/models"
	"github.com/rogerio-castellano/qr-tracker/internal/money"
)

const defaultServer = "http://localhost:8080"

func newRootCmd() *cobra.Command {
	var server string

	root := &cobra.Command{
		Use:           "qrtrack",
		Short:         "Command line client for the QR tracker API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	envServer := os.Getenv("QRTRACK_SERVER")
	if envServer == "" {
		envServer = defaultServer
	}
	root.PersistentFlags().StringVar(&server, "server", envServer, "API base URL (env QRTRACK_SERVER)")

	api := func() *client.Client { return client.New(server) }

	root.AddCommand(
		newProductsCmd(api),
		newScanCmd(api),
		newScansCmd(api),
		newSeedCmd(api),
		newMetricsCmd(api),
	)
	return root
}

func newProductsCmd(api func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Browse and add catalog products"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := api().ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			return printProducts(cmd.OutOrStdout(), products)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <productId>",
		Short: "Show one product as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := api().GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	})

	var (
		id, name, category, price, imageURL, specs string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a product; price is given in dollars, e.g. 99.99",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cents, err := money.DollarsToCents(price)
			if err != nil {
				return err
			}

			parsed := models.Specs{}
			if strings.TrimSpace(specs) != "" {
				if parsed, err = models.ParseSpecs(json.RawMessage(specs)); err != nil {
					return fmt.Errorf("invalid --specs: %w", err)
				}
			}

			if id == "" {
				id = "PRODUCT-" + strings.ToUpper(uuid.NewString()[:8])
			}

			p, err := api().CreateProduct(cmd.Context(), client.NewProduct{
				ProductID: id,
				Name:      name,
				Category:  category,
				Price:     cents,
				ImageURL:  imageURL,
				Specs:     parsed,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (id %d, %s)\n", p.ProductID, p.ID, money.CentsToDollars(p.Price))
			return nil
		},
	}
	add.Flags().StringVar(&id, "id", "", "productId encoded in the QR code (generated when empty)")
	add.Flags().StringVar(&name, "name", "", "product name")
	add.Flags().StringVar(&category, "category", "", "product category")
	add.Flags().StringVar(&price, "price", "", "price in dollars")
	add.Flags().StringVar(&imageURL, "image-url", "", "product image URL")
	add.Flags().StringVar(&specs, "specs", "{}", "specifications as a JSON object")
	for _, f := range []string{"name", "category", "price", "image-url"} {
		_ = add.MarkFlagRequired(f)
	}
	cmd.AddCommand(add)

	return cmd
}

func newScanCmd(api func() *client.Client) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "scan <qrId>",
		Short: "Record a scan of a decoded QR payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var when time.Time
			if at != "" {
				t, err := dateparse.ParseIn(at, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
				when = t
			}

			view, err := api().RecordScan(cmd.Context(), args[0], when)
			if errors.Is(err, client.ErrNotFound) {
				return fmt.Errorf("no product is registered for %q", args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), view)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "scan time (defaults to the server clock)")
	return cmd
}

func newScansCmd(api func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{Use: "scans", Short: "Browse recorded scans"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every scan with its product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := api().ListScans(cmd.Context())
			if err != nil {
				return err
			}
			return printScans(cmd.OutOrStdout(), views)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <qrId>",
		Short: "Show the first scan of a QR code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := api().GetScan(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), view)
		},
	})

	return cmd
}

func newSeedCmd(api func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the sample products that are not in the catalog yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := api()
			samples, err := c.Samples(cmd.Context())
			if err != nil {
				return err
			}

			created := 0
			for _, s := range samples {
				_, err := c.CreateProduct(cmd.Context(), client.NewProduct{
					ProductID: s.ProductID,
					Name:      s.Name,
					Category:  s.Category,
					Price:     s.Price,
					ImageURL:  s.ImageURL,
					Specs:     s.Specs,
				})
				if errors.Is(err, client.ErrConflict) {
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to seed %s: %w", s.ProductID, err)
				}
				created++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d of %d sample products\n", created, len(samples))
			return nil
		},
	}
}

func newMetricsCmd(api func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show catalog and scan totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := api().Metrics(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "products:  %d\n", m.TotalProducts)
			fmt.Fprintf(out, "scans:     %d\n", m.TotalScans)
			fmt.Fprintf(out, "unmatched: %d\n", m.UnmatchedScans)
			if top := m.MostScannedProduct; top != nil {
				fmt.Fprintf(out, "top:       %s (%s, %d scans)\n", top.ProductID, top.Name, top.ScanCount)
			}
			return nil
		},
	}
}

func printProducts(out io.Writer, products []models.Product) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT ID\tNAME\tCATEGORY\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.ProductID, p.Name, p.Category, money.CentsToDollars(p.Price))
	}
	return tw.Flush()
}

func printScans(out io.Writer, views []models.ScannedDataWithProduct) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tQR ID\tSCANNED AT\tPRODUCT\tPRICE")
	for _, v := range views {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", v.ID, v.QrID, v.ScannedAt.Format(time.RFC3339), v.Product.Name, money.CentsToDollars(v.Product.Price))
	}
	return tw.Flush()
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
