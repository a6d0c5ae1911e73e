package tensor

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Initializer selects the fill strategy used when constructing a tensor.
type Initializer int

// Fill strategies.
const (
	// InitZeros fills with the zero value.
	InitZeros Initializer = iota
	// InitOnes fills with one (true for bool).
	InitOnes
	// InitRandn fills with standard normal samples (mean 0, variance 1).
	InitRandn
	// InitRand fills with uniform samples in [0, 1).
	InitRand
	// InitSequence fills with the flat index 0, 1, 2, ...
	InitSequence
	// InitNone leaves the freshly allocated buffer as is.
	InitNone
	// initCustom marks tensors filled by a caller supplied FillFunc.
	initCustom
)

// String returns the strategy name.
func (i Initializer) String() string {
	switch i {
	case InitZeros:
		return "zeros"
	case InitOnes:
		return "ones"
	case InitRandn:
		return "randn"
	case InitRand:
		return "rand"
	case InitSequence:
		return "sequence"
	case InitNone:
		return "none"
	case initCustom:
		return "custom"
	default:
		return fmt.Sprintf("Initializer(%d)", int(i))
	}
}

// ParseInitializer maps a strategy name back to its Initializer.
func ParseInitializer(name string) (Initializer, error) {
	for i := InitZeros; i <= InitNone; i++ {
		if i.String() == name {
			return i, nil
		}
	}
	return 0, errors.Errorf("unknown initializer %q", name)
}

// FillFunc computes the value of the element at a flat index. It is the pluggable fill
// strategy: returning an error, or panicking, aborts construction with an InitializerError.
type FillFunc[T Scalar] func(index int) (T, error)

// fill runs the selected strategy once per element of data.
func fill[T Scalar](data []T, init Initializer, cfg *Config) error {
	var gen func(i int) float64
	switch init {
	case InitZeros, InitNone:
		// Buffers are allocated zeroed.
		return nil
	case InitOnes:
		gen = func(int) float64 { return 1 }
	case InitSequence:
		gen = func(i int) float64 { return float64(i) }
	case InitRand:
		rng := newRand(cfg)
		gen = func(int) float64 { return rng.Float64() }
	case InitRandn:
		gen = boxMuller(newRand(cfg))
	default:
		return &InitializerError{Initializer: init, DataType: DataTypeOf[T](), Index: 0,
			cause: errors.Errorf("unknown initializer %d", int(init))}
	}
	for i := range data {
		v, err := fromFloat64[T](gen(i))
		if err != nil {
			return &InitializerError{Initializer: init, DataType: DataTypeOf[T](), Index: i, cause: err}
		}
		data[i] = v
	}
	return nil
}

// fillWith runs a caller supplied strategy, converting its errors and panics.
func fillWith[T Scalar](data []T, fn FillFunc[T]) error {
	index := 0
	var err error
	exception := exceptions.Try(func() {
		for index = range data {
			var v T
			v, err = fn(index)
			if err != nil {
				return
			}
			data[index] = v
		}
	})
	if exception != nil {
		if e, ok := exception.(error); ok {
			err = errors.Wrap(e, "fill function panicked")
		} else {
			err = errors.Errorf("fill function panicked: %v", exception)
		}
	}
	if err != nil {
		return &InitializerError{Initializer: initCustom, DataType: DataTypeOf[T](), Index: index, cause: err}
	}
	return nil
}

func newRand(cfg *Config) *rand.Rand {
	if seed, ok := cfg.Seed(); ok {
		return rand.New(rand.NewSource(seed)) //nolint:gosec // G404: statistical fill, not crypto
	}
	return rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // G404: statistical fill, not crypto
}

// boxMuller returns a generator of standard normal samples, producing them in pairs.
func boxMuller(rng *rand.Rand) func(int) float64 {
	var spare float64
	hasSpare := false
	return func(int) float64 {
		if hasSpare {
			hasSpare = false
			return spare
		}
		u1 := 1 - rng.Float64() // (0, 1], keeps Log finite
		u2 := rng.Float64()
		r := math.Sqrt(-2.0 * math.Log(u1))
		spare = r * math.Sin(2.0*math.Pi*u2)
		hasSpare = true
		return r * math.Cos(2.0*math.Pi*u2)
	}
}

// fromFloat64 converts a strategy value to the element type. Integer types truncate;
// values an element type cannot hold (negative unsigned, non 0/1 bool) are errors.
func fromFloat64[T Scalar](v float64) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(v))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v < 0 {
			return out, errors.Errorf("value %g cannot be represented as %s", v, rv.Type())
		}
		rv.SetUint(uint64(v))
	case reflect.Bool:
		if v != 0 && v != 1 {
			return out, errors.Errorf("value %g cannot be represented as %s", v, rv.Type())
		}
		rv.SetBool(v == 1)
	default:
		return out, errors.Errorf("unsupported element type %s", rv.Type())
	}
	return out, nil
}
