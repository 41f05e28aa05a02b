package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sambabib/dumphals/pkg/logger"
	"github.com/spf13/cobra"
)

// Version is set during build using ldflags
var Version = "dev"

// NewRootCmd builds the dumphals command.
func NewRootCmd() *cobra.Command {
	opts := &dumpOptions{}
	rootCmd := &cobra.Command{
		Use:   "dumphals --hidl-gen PATH --analyze-matrix PATH --compatibility-matrix FILE...",
		Short: "Dump new HIDL interfaces introduced in each FCM version",
		Long: `dumphals reads framework compatibility matrices with analyze_matrix, expands
the interfaces they list with hidl-gen, and prints, for each FCM level, the
interfaces that first appear at that level as JSON.

Examples:
  dumphals --hidl-gen out/host/linux-x86/bin/hidl-gen \
    --analyze-matrix out/host/linux-x86/bin/analyze_matrix \
    --package-root android.hardware:hardware/interfaces \
    --compatibility-matrix hardware/interfaces/compatibility_matrices/*.xml`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, opts)
		},
	}
	opts.bindFlags(rootCmd)
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := executeArgs(ctx, NewRootCmd(), os.Args[1:]); err != nil {
		logger.Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}

// executeArgs runs cmd with args after expanding multi-value flags.
func executeArgs(ctx context.Context, cmd *cobra.Command, args []string) error {
	args, err := splitMultiValueFlags(args)
	if err != nil {
		return err
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
