package filter

import (
	"testing"

	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/pixel"
)

func TestLuma(t *testing.T) {
	tests := []struct {
		r, g, b float64
		want    float64
	}{
		{255, 255, 255, 255},
		{0, 0, 0, 0},
		{255, 0, 0, 76.245},
		{0, 255, 0, 149.685},
		{0, 0, 255, 29.07},
		{100, 150, 200, 140.75},
	}

	for _, tt := range tests {
		got := Luma(tt.r, tt.g, tt.b)
		if d := got - tt.want; d > 1e-9 || d < -1e-9 {
			t.Errorf("Luma(%v,%v,%v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestGrayscaleKnownValues(t *testing.T) {
	tests := []struct {
		in   pixel.RGBA8
		want uint8
	}{
		{pixel.RGBA8{R: 255, A: 255}, 76},
		{pixel.RGBA8{G: 255, A: 255}, 149},
		{pixel.RGBA8{B: 255, A: 255}, 29},
		{pixel.RGBA8{R: 100, G: 150, B: 200, A: 3}, 140},
	}

	for _, tt := range tests {
		img := newUniform(1, 1, tt.in)
		Grayscale(img, nil)

		got := *img.At(0, 0)
		want := pixel.RGBA8{R: tt.want, G: tt.want, B: tt.want, A: tt.in.A}
		if got != want {
			t.Errorf("Grayscale(%+v) = %+v, want %+v", tt.in, got, want)
		}
	}
}

func TestGrayscaleAchromaticFixedPoint(t *testing.T) {
	img := pixel.NewView(make([]pixel.RGBA8, 256), 256, 1)
	for v := range 256 {
		*img.At(v, 0) = pixel.RGBA8{R: uint8(v), G: uint8(v), B: uint8(v), A: 255}
	}

	Grayscale(img, nil)

	for v := range 256 {
		if got := *img.At(v, 0); got.R != uint8(v) || got.G != uint8(v) || got.B != uint8(v) {
			t.Errorf("gray %d became %+v", v, got)
		}
	}
}

func TestGrayscaleIdempotent(t *testing.T) {
	once := newPattern(33, 21)
	Grayscale(once, nil)

	twice := cloneView(once)
	Grayscale(twice, nil)

	for i := range once.Pix() {
		if once.Pix()[i] != twice.Pix()[i] {
			t.Fatalf("pix[%d]: once %+v != twice %+v", i, once.Pix()[i], twice.Pix()[i])
		}
	}
}

func TestGrayscaleFloatIdempotent(t *testing.T) {
	buf := []pixel.RGBA32F{
		{R: 0.1, G: 0.7, B: 0.3, A: 1},
		{R: 0.37, G: 0.37, B: 0.37, A: 0.5},
		{R: 12.5, G: 250, B: 3.25, A: 255},
	}
	img := pixel.NewView(buf, 3, 1)

	Grayscale(img, nil)
	first := append([]pixel.RGBA32F(nil), buf...)
	Grayscale(img, nil)

	for i := range buf {
		if buf[i] != first[i] {
			t.Errorf("pix[%d]: %+v != %+v after second pass", i, buf[i], first[i])
		}
	}
	if buf[1].R != 0.37 {
		t.Errorf("achromatic float 0.37 became %v", buf[1].R)
	}
}

func TestGrayscaleWideKind(t *testing.T) {
	img := pixel.NewView([]pixel.RGBA16{{R: 65535, G: 65535, B: 65535, A: 1}}, 1, 1)
	Grayscale(img, nil)

	if got := *img.At(0, 0); got != (pixel.RGBA16{R: 65535, G: 65535, B: 65535, A: 1}) {
		t.Errorf("uint16 white = %+v", got)
	}
}

func TestGrayscaleParallelMatchesSequential(t *testing.T) {
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	seq := newPattern(64, 48)
	par := cloneView(seq)

	Grayscale(seq, nil)
	Grayscale(par, pool)

	for i := range seq.Pix() {
		if seq.Pix()[i] != par.Pix()[i] {
			t.Fatalf("pix[%d]: sequential %+v != parallel %+v", i, seq.Pix()[i], par.Pix()[i])
		}
	}
}

func BenchmarkGrayscale(b *testing.B) {
	pool := parallel.NewWorkerPool(0)
	defer pool.Close()

	img := newPattern(1920, 1080)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Grayscale(img, pool)
	}
}
