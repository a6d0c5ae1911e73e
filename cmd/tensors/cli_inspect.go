package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/tensors/tensor"
)

// tensorOptions is what the --shape, --fill, --seed and --dtype flags describe.
type tensorOptions struct {
	shape tensor.Shape
	init  tensor.Initializer
	cfg   *tensor.Config
	dtype string
	limit int
}

func addTensorFlags(cmd *cobra.Command) {
	cmd.Flags().String("shape", "", "Tensor shape, e.g. 2,3")
	cmd.Flags().String("fill", "sequence", "Fill strategy: zeros, ones, sequence, rand, randn")
	cmd.Flags().Int64("seed", 0, "Seed for the rand and randn fills")
	cmd.Flags().String("dtype", "float64", "Element type: float64, float32, int64, int32, int")
	cmd.Flags().Int("limit", 20, "Maximum number of table rows to print; 0 prints all")
	_ = cmd.MarkFlagRequired("shape")
}

func optionsFromFlags(cmd *cobra.Command) (tensorOptions, error) {
	var opts tensorOptions
	shapeFlag, _ := cmd.Flags().GetString("shape")
	fillFlag, _ := cmd.Flags().GetString("fill")
	opts.dtype, _ = cmd.Flags().GetString("dtype")
	opts.limit, _ = cmd.Flags().GetInt("limit")

	var err error
	if opts.shape, err = parseShape(shapeFlag); err != nil {
		return opts, err
	}
	if opts.init, err = tensor.ParseInitializer(fillFlag); err != nil {
		return opts, err
	}
	var cfgOpts []tensor.ConfigOption
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		cfgOpts = append(cfgOpts, tensor.WithSeed(seed))
	}
	opts.cfg = tensor.NewConfig(cfgOpts...)
	return opts, nil
}

func newInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Build a tensor and print its layout and contents",
		Example: `  tensors inspect --shape 2,3
  tensors inspect --shape 4,4 --fill randn --seed 7 --dtype float32`,
		Args: cobra.NoArgs,
		RunE: InspectHandler,
	}
	addTensorFlags(inspectCmd)
	return inspectCmd
}

// InspectHandler prints the shape summary and the rows of a freshly built tensor.
func InspectHandler(cmd *cobra.Command, _ []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	switch opts.dtype {
	case "float64":
		return inspect[float64](w, opts)
	case "float32":
		return inspect[float32](w, opts)
	case "int64":
		return inspect[int64](w, opts)
	case "int32":
		return inspect[int32](w, opts)
	case "int":
		return inspect[int](w, opts)
	default:
		return errors.Errorf("unsupported dtype %q", opts.dtype)
	}
}

func inspect[T tensor.Numeric](w io.Writer, opts tensorOptions) error {
	t, err := tensor.New[T](opts.shape, opts.init, opts.cfg)
	if err != nil {
		return err
	}
	dt := t.DataType()
	fmt.Fprintf(w, "shape:    %s\n", t.Shape())
	fmt.Fprintf(w, "rank:     %d\n", t.Rank())
	fmt.Fprintf(w, "elements: %d\n", t.NumElements())
	fmt.Fprintf(w, "dtype:    %s\n", dt)
	fmt.Fprintf(w, "memory:   %s\n", humanize.Bytes(uint64(t.NumElements()*dt.Size())))

	labels, rows, err := tensorRows(t)
	if err != nil {
		return err
	}
	header := []string{"INDEX"}
	for i := range len(rows[0]) {
		header = append(header, strconv.Itoa(i))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, row := range rows {
		if opts.limit > 0 && i == opts.limit {
			break
		}
		table.Append(append([]string{labels[i]}, row...))
	}
	table.Render()
	if opts.limit > 0 && len(rows) > opts.limit {
		fmt.Fprintf(w, "... %d more rows\n", len(rows)-opts.limit)
	}
	return nil
}

// tensorRows splits t into the lanes of its last axis, labelled by the indices of the
// leading axes.
func tensorRows[T tensor.Scalar](t *tensor.Tensor[T]) ([]string, [][]string, error) {
	if t.Rank() == 0 {
		v, err := t.At()
		if err != nil {
			return nil, nil, err
		}
		return []string{"()"}, [][]string{{formatValue(v)}}, nil
	}
	lanes, err := t.AxisWise(t.Rank() - 1)
	if err != nil {
		return nil, nil, err
	}
	leading := t.Shape().Extents()[:t.Rank()-1]
	labels := make([]string, len(lanes))
	rows := make([][]string, len(lanes))
	for i, lane := range lanes {
		labels[i] = laneLabel(i, leading)
		rows[i] = formatValues(lane)
	}
	return labels, rows, nil
}

// laneLabel renders the row-major position lane over the leading extents as "(i, j, :)".
func laneLabel(lane int, leading []int) string {
	parts := make([]string, len(leading)+1)
	for axis := len(leading) - 1; axis >= 0; axis-- {
		parts[axis] = strconv.Itoa(lane % leading[axis])
		lane /= leading[axis]
	}
	parts[len(leading)] = ":"
	return "(" + strings.Join(parts, ", ") + ")"
}

func newReduceCmd() *cobra.Command {
	reduceCmd := &cobra.Command{
		Use:   "reduce",
		Short: "Build a tensor and print its reductions",
		Example: `  tensors reduce --shape 2,3
  tensors reduce --shape 2,3 --axis 1 --dtype int64`,
		Args: cobra.NoArgs,
		RunE: ReduceHandler,
	}
	addTensorFlags(reduceCmd)
	reduceCmd.Flags().Int("axis", 0, "Reduce along this axis instead of the whole tensor")
	return reduceCmd
}

// ReduceHandler prints every reduction of a freshly built tensor, either over the whole
// buffer or, with --axis, along one axis.
func ReduceHandler(cmd *cobra.Command, _ []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	axis := -1
	if cmd.Flags().Changed("axis") {
		axis, _ = cmd.Flags().GetInt("axis")
		if axis < 0 {
			return errors.Errorf("axis must be non-negative, got %d", axis)
		}
	}
	w := cmd.OutOrStdout()
	switch opts.dtype {
	case "float64":
		return reduce[float64](w, opts, axis)
	case "float32":
		return reduce[float32](w, opts, axis)
	case "int64":
		return reduce[int64](w, opts, axis)
	case "int32":
		return reduce[int32](w, opts, axis)
	case "int":
		return reduce[int](w, opts, axis)
	default:
		return errors.Errorf("unsupported dtype %q", opts.dtype)
	}
}

// reduce prints the reductions of the tensor described by opts; axis < 0 reduces the
// whole buffer.
func reduce[T tensor.Numeric](w io.Writer, opts tensorOptions, axis int) error {
	t, err := tensor.New[T](opts.shape, opts.init, opts.cfg)
	if err != nil {
		return err
	}
	var rows [][]string
	if axis < 0 {
		rows, err = wholeReductions(t)
	} else {
		rows, err = axisReductions(t, axis)
	}
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"REDUCTION", "VALUE"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

// wholeReductions fails only when t holds no data; after the first reduction succeeds
// the rest cannot fail.
func wholeReductions[T tensor.Numeric](t *tensor.Tensor[T]) ([][]string, error) {
	sum, err := tensor.Sum(t)
	if err != nil {
		return nil, err
	}
	return [][]string{
		{"sum", formatValue(sum)},
		{"mean", formatValue(must.M1(tensor.Mean(t)))},
		{"variance", formatValue(must.M1(tensor.Variance(t)))},
		{"min", formatValue(must.M1(tensor.Min(t)))},
		{"max", formatValue(must.M1(tensor.Max(t)))},
		{"argmin", strconv.Itoa(must.M1(tensor.ArgMin(t)))},
		{"argmax", strconv.Itoa(must.M1(tensor.ArgMax(t)))},
		{"ptp", formatValue(must.M1(tensor.PeakToPeak(t)))},
	}, nil
}

// axisReductions validates axis with the first reduction; the rest then cannot fail.
func axisReductions[T tensor.Numeric](t *tensor.Tensor[T], axis int) ([][]string, error) {
	sum, err := tensor.SumAxis(t, axis)
	if err != nil {
		return nil, err
	}
	return [][]string{
		{"sum", joinValues(sum)},
		{"mean", joinValues(must.M1(tensor.MeanAxis(t, axis)))},
		{"variance", joinValues(must.M1(tensor.VarianceAxis(t, axis)))},
		{"min", joinValues(must.M1(tensor.MinAxis(t, axis)))},
		{"max", joinValues(must.M1(tensor.MaxAxis(t, axis)))},
		{"argmin", joinValues(must.M1(tensor.ArgMinAxis(t, axis)))},
		{"argmax", joinValues(must.M1(tensor.ArgMaxAxis(t, axis)))},
		{"ptp", joinValues(must.M1(tensor.PeakToPeakAxis(t, axis)))},
	}, nil
}

func formatValue[T tensor.Scalar](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', 6, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', 6, 64)
	default:
		return fmt.Sprint(v)
	}
}

func formatValues[T tensor.Scalar](values []T) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = formatValue(v)
	}
	return res
}

// joinValues renders the elements of t in row-major order as "[a b c]".
func joinValues[T tensor.Scalar](t *tensor.Tensor[T]) string {
	return "[" + strings.Join(formatValues(t.Data()), " ") + "]"
}
