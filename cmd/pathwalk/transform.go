package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNormalizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize PATH",
		Short: "Resolve \".\" and \"..\" segments and collapse separators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := opts.resolveStyle(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.NormalizeString(args[0]))
			return nil
		},
	}
}

func newJoinCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "join PATH...",
		Short: "Join path fragments and normalize the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := opts.resolveStyle(args[0])
			if err != nil {
				return err
			}
			n := style.JoinMultiple(args, nil)
			buffer := make([]byte, n+1)
			style.JoinMultiple(args, buffer)
			fmt.Fprintln(cmd.OutOrStdout(), string(buffer[:n]))
			return nil
		},
	}
}

func newAbsoluteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "absolute BASE PATH",
		Short: "Resolve PATH against the absolute directory BASE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := opts.resolveStyle(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.GetAbsoluteString(args[0], args[1]))
			return nil
		},
	}
}

func newRelativeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "relative BASE PATH",
		Short: "Compute the path that leads from BASE to PATH",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := opts.resolveStyle(args[1])
			if err != nil {
				return err
			}
			result := style.GetRelativeString(args[0], args[1])
			if result == "" {
				return fmt.Errorf("no relative path from %q to %q: roots differ", args[0], args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
