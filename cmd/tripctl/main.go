package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tripplanner/cmd/tripctl/commands"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tripctl",
	Short: "Trip planner CLI - offline tools for itinerary prompts and replies",
	Long: `tripctl builds recommendation prompts, parses model replies into day plans
and runs the full planning pipeline against the configured completion provider.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.PromptCmd)
	rootCmd.AddCommand(commands.PlanCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tripctl.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format: json or yaml")
	rootCmd.PersistentFlags().String("assets", "assets", "directory holding plan images")

	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("assets", rootCmd.PersistentFlags().Lookup("assets"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".tripctl")
	}

	viper.SetEnvPrefix("TRIPCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Warning: could not read config file %s: %v\n", cfgFile, err)
	}
}
