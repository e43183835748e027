package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pathwalk/pathwalk/internal/config"
	"github.com/pathwalk/pathwalk/pkg/path"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	opts := &options{}

	root := &cobra.Command{
		Use:          "pathwalk",
		Short:        "Path algebra for Windows and Unix style path strings",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.styleName, "style", "",
		"Path style: unix|windows|auto (defaults to the config file, then unix)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Path to a YAML configuration file")

	root.AddCommand(
		newNormalizeCmd(opts),
		newJoinCmd(opts),
		newAbsoluteCmd(opts),
		newRelativeCmd(opts),
		newIntersectCmd(opts),
		newRootCmd(opts),
		newBasenameCmd(opts),
		newDirnameCmd(opts),
		newExtensionCmd(opts),
		newSegmentsCmd(opts),
		newGuessCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Problems {
				fmt.Fprintln(os.Stderr, msg)
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

type options struct {
	styleName  string
	configPath string
}

// resolveStyle picks the style for an invocation: the --style flag
// wins, then the config file, then unix. The "auto" style guesses per
// input path, so the path the command operates on is passed in.
func (o *options) resolveStyle(p string) (path.Style, error) {
	name := o.styleName
	if name == "" && o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return path.Style{}, err
		}
		name = cfg.Style
	}
	switch name {
	case "", "unix":
		return path.Unix, nil
	case "windows":
		return path.Windows, nil
	case "auto":
		return path.GuessStyle(p), nil
	}
	return path.Style{}, fmt.Errorf("unknown style %q (want unix, windows or auto)", name)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "pathwalk %s (%s)\n", version, commit)
			return nil
		},
	}
}
