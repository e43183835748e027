package main

import (
	"fmt"
	"io"

	"github.com/pathwalk/pathwalk/pkg/path"
	"github.com/pathwalk/pathwalk/pkg/util"
	"github.com/spf13/cobra"
)

func newRootCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "root PATH",
		Short: "Print the root prefix of a path and whether it is absolute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := opts.resolveStyle(args[0])
			if err != nil {
				return err
			}
			scope := "relative"
			if style.IsAbsolute(args[0]) {
				scope = "absolute"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q %s\n", args[0][:style.GetRoot(args[0])], scope)
			return nil
		},
	}
}

func newIntersectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "intersect BASE PATH",
		Short: "Print the common prefix of two paths, in whole segments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := opts.resolveStyle(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), args[0][:style.GetIntersection(args[0], args[1])])
			return nil
		},
	}
}

func newBasenameCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "basename PATH",
		Short: "Print the last segment of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := opts.resolveStyle(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.GetBasename(args[0]))
			return nil
		},
	}
}

func newDirnameCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dirname PATH",
		Short: "Print a path up to the beginning of its last segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := opts.resolveStyle(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.GetDirname(args[0]))
			return nil
		},
	}
}

func newExtensionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "extension PATH",
		Short: "Print the extension of the last segment of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := opts.resolveStyle(args[0])
			if err != nil {
				return err
			}
			extension, ok := style.GetExtension(args[0])
			if !ok {
				return fmt.Errorf("%q has no extension", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), extension)
			return nil
		},
	}
}

func newSegmentsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "segments PATH",
		Short: "List the root and every segment of a path with its type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := opts.resolveStyle(args[0])
			if err != nil {
				return err
			}
			if err := style.Walk(args[0], &segmentLister{out: cmd.OutOrStdout()}); err != nil {
				return util.StatusWrapf(err, "Failed to walk %q", args[0])
			}
			return nil
		},
	}
}

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess PATH",
		Short: "Guess whether a path uses the Unix or the Windows style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), path.GuessStyle(args[0]))
			return nil
		},
	}
}

// segmentLister prints one line per walker event. It serves as both
// the ScopeWalker and the SegmentWalker of a Walk.
type segmentLister struct {
	out io.Writer
}

func (l *segmentLister) OnScope(root string, absolute bool) (path.SegmentWalker, error) {
	scope := "relative"
	if absolute {
		scope = "absolute"
	}
	fmt.Fprintf(l.out, "root\t%q\t%s\n", root, scope)
	return l, nil
}

func (l *segmentLister) OnNormal(name string) (path.SegmentWalker, error) {
	fmt.Fprintf(l.out, "normal\t%s\n", name)
	return l, nil
}

func (l *segmentLister) OnCurrent() (path.SegmentWalker, error) {
	fmt.Fprintln(l.out, "current\t.")
	return l, nil
}

func (l *segmentLister) OnUp() (path.SegmentWalker, error) {
	fmt.Fprintln(l.out, "back\t..")
	return l, nil
}
