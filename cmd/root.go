package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lumos-Labs-HQ/shopgen/internal/config"
	"github.com/Lumos-Labs-HQ/shopgen/internal/export"
	"github.com/Lumos-Labs-HQ/shopgen/internal/generator"
)

var (
	cfgFile string
	Version = "1.0.2"
)

var rootCmd = &cobra.Command{
	Use:   "shopgen [users] [products] [orders]",
	Short: "Generate a synthetic e-commerce dataset",
	Long: `
shopgen generates fake relational data for a small e-commerce schema:
users, products, orders and order line items. Foreign keys always
reference existing rows, and order totals always match their items.

Counts default to 100 users, 100 products and 20 orders.

Examples:
  shopgen
  shopgen 500
  shopgen 500 200 50`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("shopgen version %s\n", Version)
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		counts := generator.Counts{
			Users:    cfg.Counts.Users,
			Products: cfg.Counts.Products,
			Orders:   cfg.Counts.Orders,
		}
		targets := []*int{&counts.Users, &counts.Products, &counts.Orders}
		for i, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", arg, err)
			}
			*targets[i] = n
		}

		return runGenerate(counts, cfg)
	},
}

func runGenerate(counts generator.Counts, cfg *config.Config) error {
	color.Cyan("🌱 Generating %d users, %d products, %d orders...",
		counts.Users, counts.Products, counts.Orders)

	ds, err := generator.New().Generate(counts)
	if err != nil {
		return err
	}

	paths, err := export.Write(ds, cfg.OutDir, cfg.Format)
	if err != nil {
		return err
	}

	color.Green("✅ Data generated successfully!")
	fmt.Println()
	color.Cyan("📊 Summary:")
	fmt.Printf("  - %d users\n", len(ds.Users))
	fmt.Printf("  - %d products\n", len(ds.Products))
	fmt.Printf("  - %d orders with %d line items\n", len(ds.Orders), len(ds.OrderItems))
	fmt.Println()
	color.Cyan("🔗 Relationships maintained:")
	fmt.Println("  - All user_ids in orders exist in users")
	fmt.Println("  - All product_ids in order_items exist in products")
	fmt.Println("  - All order_ids in order_items exist in orders")
	fmt.Println()
	for _, p := range paths {
		fmt.Printf("  📄 %s\n", p)
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./shopgen.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("shopgen.config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		// config file is optional
	}
}
