package cmd

import (
	"fmt"
	"os"

	"gitcat/pkg/combine"
	"gitcat/pkg/logging"
	"gitcat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFlag  string
	allFlag     bool
	depthFlag   int
	workersFlag int
	debugFlag   bool
)

var rootLogger *zap.Logger

// rootCmd is the base command. Errors are printed by the combine package with
// their fixed messages, so cobra's own error reporting stays silent and the
// returned error only decides the exit status.
var rootCmd = &cobra.Command{
	Use:   "gitcat [directory]",
	Short: "gitcat concatenates git-tracked files into one annotated stream",
	Long: `gitcat lists the git-tracked items under a directory, lets you pick a
subset interactively (or takes everything with --path), and concatenates the
chosen files into a single output wrapped in BEGIN/END FILE markers.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := rootLogger
		if debugFlag {
			if l, err := logging.New(true, "gitcat", version.Get().Version); err == nil {
				logger = l
			}
		}

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		cfg, outputOverride, err := combine.LoadConfigFile(dir, combine.DefaultConfig())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		if cmd.Flags().Changed("depth") {
			cfg.MaxDepth = depthFlag
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workersFlag
		}

		output := outputFlag
		if output == "" {
			output = outputOverride
		}

		return combine.Execute(combine.Arguments{
			Directory: dir,
			Output:    output,
			All:       allFlag,
		}, cfg, logger)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the combined output to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&allFlag, "path", "p", false, "Process every tracked item under the directory without prompting")
	rootCmd.Flags().IntVar(&depthFlag, "depth", 0, "Maximum path-segment depth kept when expanding a directory")
	rootCmd.Flags().IntVar(&workersFlag, "workers", 0, "Number of concurrent file readers (0 = number of CPUs)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable development logging")
}

// Execute runs the root command with the given logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return rootCmd.Execute()
}
