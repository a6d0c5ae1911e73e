package tensor

import "github.com/x448/float16"

// ToFloat16 converts the elements of a float tensor to IEEE 754 half precision,
// in row-major order. Values outside the half range become ±Inf.
func ToFloat16[T ~float32 | ~float64](t *Tensor[T]) ([]float16.Float16, error) {
	if err := t.checkReadable("ToFloat16"); err != nil {
		return nil, err
	}
	res := make([]float16.Float16, t.NumElements())
	for i, v := range t.buf.data {
		res[i] = float16.Fromfloat32(float32(v))
	}
	return res, nil
}

// FromFloat16 creates a float32 tensor from half precision values.
func FromFloat16(data []float16.Float16, shape Shape, cfg *Config) (*Tensor[float32], error) {
	values := make([]float32, len(data))
	for i, h := range data {
		values[i] = h.Float32()
	}
	return FromSlice(values, shape, cfg)
}
