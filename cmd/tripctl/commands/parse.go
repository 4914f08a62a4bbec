package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tripplanner/internal/services"
)

var ParseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a saved model reply into day plans",
	Long: `Reads an itinerary reply from a file (or stdin when the argument is "-" or
missing) and prints the recognised days, plan sections and restaurants.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		return WriteOutput(cmd.OutOrStdout(), viper.GetString("output"), services.ParseItinerary(text))
	},
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
