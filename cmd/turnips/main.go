package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "turnips",
		Short: "🥬 Weekly turnip price predictions",
		Long: `turnips narrows the four weekly turnip price patterns down to the ones
that agree with the prices you have seen so far, and prints the price range
each remaining pattern allows for every half-day of the week.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.AddCommand(predictCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "turnips %s\n", version)
		},
	}
}
