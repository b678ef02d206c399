package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "headerhawk [urls...]",
	Short: "Inspect HTTP security response headers for a batch of URLs",
	Long: `HeaderHawk fetches each URL and reports the presence and value of four
security response headers (Content-Security-Policy, X-Frame-Options,
Strict-Transport-Security, Referrer-Policy) as a console table, with an
optional CSV export.

URLs without a scheme default to https://. Sites with broken or
self-signed certificates are retried once with verification disabled
and flagged with a warning.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".headerhawk")
			viper.SetConfigType("yaml")
		}
		_ = viper.ReadInConfig()

		// init logger
		l, _ := zap.NewProduction()
		logger = l.Sugar()

		return nil
	},
	RunE: runScan,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.headerhawk.yaml)")

	rootCmd.Flags().BoolVar(&saveCSV, "save", false, "save results to a timestamped CSV file")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "CSV output path (implies --save)")
	rootCmd.Flags().Int("timeout", 0, "per-request timeout in seconds")
	rootCmd.Flags().Int("delay", 0, "delay between requests in seconds")
	bindScanFlags(rootCmd.Flags())

	rootCmd.AddCommand(versionCmd)
}
