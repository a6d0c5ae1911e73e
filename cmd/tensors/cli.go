package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/tensors/tensor"
)

// newRootCmd builds the command tree. Output goes to cmd.OutOrStdout so tests can capture it.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tensors",
		Short:         "Inspect and exercise dense N-dimensional tensors",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newInspectCmd(),
		newReduceCmd(),
		newBroadcastCmd(),
		newReshapeCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tensors %s\n", version)
		},
	}
}

func newBroadcastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "broadcast SHAPE SHAPE",
		Short: "Print the broadcast shape of two shapes",
		Example: `  tensors broadcast 3,1 4
  tensors broadcast 2,3 2,1`,
		Args: cobra.ExactArgs(2),
		RunE: BroadcastHandler,
	}
}

// BroadcastHandler prints the shape two operands broadcast to.
func BroadcastHandler(cmd *cobra.Command, args []string) error {
	a, err := parseShape(args[0])
	if err != nil {
		return err
	}
	b, err := parseShape(args[1])
	if err != nil {
		return err
	}
	out, broadcast, err := tensor.BroadcastShapes(a, b)
	if err != nil {
		return err
	}
	if !broadcast {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (no broadcasting needed)\n", out)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func newReshapeCmd() *cobra.Command {
	reshapeCmd := &cobra.Command{
		Use:     "reshape",
		Short:   "Resolve a reshape target against a shape",
		Example: "  tensors reshape --shape 2,3,4 --to 4,-1",
		Args:    cobra.NoArgs,
		RunE:    ReshapeHandler,
	}
	reshapeCmd.Flags().String("shape", "", "Source shape, e.g. 2,3,4")
	reshapeCmd.Flags().String("to", "", "Target extents; one negative extent is inferred")
	_ = reshapeCmd.MarkFlagRequired("shape")
	_ = reshapeCmd.MarkFlagRequired("to")
	return reshapeCmd
}

// ReshapeHandler prints the shape a reshape target resolves to.
func ReshapeHandler(cmd *cobra.Command, _ []string) error {
	shapeFlag, _ := cmd.Flags().GetString("shape")
	toFlag, _ := cmd.Flags().GetString("to")

	shape, err := parseShape(shapeFlag)
	if err != nil {
		return err
	}
	target, err := parseExtents(toFlag)
	if err != nil {
		return err
	}
	t, err := tensor.New[uint8](shape, tensor.InitNone, nil)
	if err != nil {
		return err
	}
	if err := t.Reshape(target...); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", shape, t.Shape())
	return nil
}

// parseExtents reads a comma separated list of integers. The empty string and "()" are
// the scalar shape.
func parseExtents(s string) ([]int, error) {
	s = strings.Trim(strings.TrimSpace(s), "()")
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	extents := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid extent %q in %q", p, s)
		}
		extents[i] = n
	}
	return extents, nil
}

func parseShape(s string) (tensor.Shape, error) {
	extents, err := parseExtents(s)
	if err != nil {
		return tensor.Shape{}, err
	}
	return tensor.NewShape(extents...)
}
