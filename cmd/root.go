package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	pathmap "github.com/TFMV/pathmap/internal/pathmap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pathmap [options] <path>...",
	Short: "Match paths in a directory tree using composable rules",
	Long: `pathmap recursively walks one or more directory trees and prints the
paths selected by a configurable set of rules: a match pattern that decides
what is printed, ignore patterns that exclude individual paths, and prune
patterns that block descent into whole subtrees, combined with depth bounds
and an optional sort order.

Rule patterns are regular expressions searched anywhere in the path.

Examples:
  pathmap --match='\.go$' .
  pathmap --prune='node_modules' --ignore='\.min\.js$' ./src ./vendor
  pathmap --min-depth=2 --max-depth=2 --sort /data`,
	Version: version,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPathMap(args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pathmap.yaml)")

	// Flags
	rootCmd.Flags().StringP("match", "m", "", "Only print paths matching this pattern")
	rootCmd.Flags().StringSliceP("ignore", "i", nil, "Exclude paths matching these patterns (repeatable)")
	rootCmd.Flags().StringSliceP("prune", "p", nil, "Do not descend into directories matching these patterns (repeatable)")
	rootCmd.Flags().Int("min-depth", 0, "Minimum depth below each root to match")
	rootCmd.Flags().Int("max-depth", pathmap.UnboundedDepth, "Maximum depth below each root to match (-1 for unbounded)")
	rootCmd.Flags().Int("depth", pathmap.UnboundedDepth, "Match only at exactly this depth (shorthand for equal min/max)")
	rootCmd.Flags().BoolP("sort", "s", false, "Emit entries within each directory in name order")
	rootCmd.Flags().Bool("follow-symlinks", false, "Descend into symbolic links to directories (no cycle detection)")
	rootCmd.Flags().String("on-error", "fail", "Listing-error handling (fail|warn)")
	rootCmd.Flags().String("format", "text", "Output format (text|json)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Bind flags to viper
	viper.BindPFlag("match", rootCmd.Flags().Lookup("match"))
	viper.BindPFlag("ignore", rootCmd.Flags().Lookup("ignore"))
	viper.BindPFlag("prune", rootCmd.Flags().Lookup("prune"))
	viper.BindPFlag("min-depth", rootCmd.Flags().Lookup("min-depth"))
	viper.BindPFlag("max-depth", rootCmd.Flags().Lookup("max-depth"))
	viper.BindPFlag("depth", rootCmd.Flags().Lookup("depth"))
	viper.BindPFlag("sort", rootCmd.Flags().Lookup("sort"))
	viper.BindPFlag("follow-symlinks", rootCmd.Flags().Lookup("follow-symlinks"))
	viper.BindPFlag("on-error", rootCmd.Flags().Lookup("on-error"))
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".pathmap" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pathmap")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runPathMap(roots []string) error {
	opts := pathmap.NewOptions()

	if match := viper.GetString("match"); match != "" {
		spec := pathmap.PatternOf(match)
		opts.Match = &spec
	}
	for _, pattern := range viper.GetStringSlice("ignore") {
		opts.Ignore = append(opts.Ignore, pathmap.PatternOf(pattern))
	}
	for _, pattern := range viper.GetStringSlice("prune") {
		opts.Prune = append(opts.Prune, pathmap.PatternOf(pattern))
	}

	opts.MinDepth = viper.GetInt("min-depth")
	opts.MaxDepth = viper.GetInt("max-depth")
	if depth := viper.GetInt("depth"); depth >= 0 {
		opts.MinDepth, opts.MaxDepth = pathmap.ExactDepth(depth)
	}

	opts.Sort = viper.GetBool("sort")
	opts.FollowSymlinks = viper.GetBool("follow-symlinks")
	if viper.GetBool("verbose") {
		opts.LogLevel = pathmap.LogLevelDebug
	}
	opts.Logger = pathmap.NewLogger(opts.LogLevel)

	switch mode := viper.GetString("on-error"); mode {
	case "fail":
	case "warn":
		opts.OnError = pathmap.WarnHandler(opts.Logger)
	default:
		return fmt.Errorf("invalid on-error mode: %s", mode)
	}

	pm, err := pathmap.New(opts)
	if err != nil {
		return err
	}

	jsonOut := viper.GetString("format") == "json"
	enc := json.NewEncoder(os.Stdout)

	it := pm.Matches(roots...)
	for it.Next() {
		res := it.Result()
		if jsonOut {
			record := map[string]interface{}{
				"path":   res.Path,
				"is_dir": res.Entry.IsDir(),
			}
			if res.Info != nil {
				record["info"] = res.Info
			}
			if err := enc.Encode(record); err != nil {
				return err
			}
		} else {
			fmt.Println(res.Path)
		}
	}
	return it.Err()
}
