package resample

import (
	"testing"

	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/pixel"
)

func TestBilinearSameSizeIsIdentity(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {4, 4}, {17, 9}, {3, 40}}

	for _, s := range sizes {
		src := newPattern(s.w, s.h)
		dst := newBlank(s.w, s.h)

		Bilinear(src, dst, nil)

		for i, want := range src.Pix() {
			if got := dst.Pix()[i]; got != want {
				t.Fatalf("%dx%d: pix[%d] = %+v, want %+v", s.w, s.h, i, got, want)
			}
		}
	}
}

func TestBilinearDownsampleCorners(t *testing.T) {
	dst := newBlank(2, 2)
	Bilinear(newRamp(), dst, nil)

	// ratio (4-1)/(2-1) = 3 maps the output corners onto the input corners
	tests := []struct {
		x, y int
		want pixel.RGBA8
	}{
		{0, 0, gray(0)},
		{1, 0, gray(12)},
		{0, 1, gray(48)},
		{1, 1, gray(60)},
	}

	for _, tt := range tests {
		if got := *dst.At(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBilinearSingleOutputSamplesOrigin(t *testing.T) {
	dst := newBlank(1, 1)
	Bilinear(newRamp(), dst, nil)

	if got := *dst.At(0, 0); got != gray(0) {
		t.Errorf("1x1 output = %+v, want %+v", got, gray(0))
	}
}

func TestBilinearUpsample(t *testing.T) {
	src := pixel.NewView([]pixel.RGBA8{
		{R: 0, G: 200, B: 10, A: 0},
		{R: 100, G: 0, B: 30, A: 255},
	}, 2, 1)
	dst := newBlank(3, 1)

	Bilinear(src, dst, nil)

	want := []pixel.RGBA8{
		{R: 0, G: 200, B: 10, A: 0},
		{R: 50, G: 100, B: 20, A: 127}, // alpha is interpolated too: 127.5 truncated
		{R: 100, G: 0, B: 30, A: 255},
	}
	for i, w := range want {
		if got := dst.Pix()[i]; got != w {
			t.Errorf("pix[%d] = %+v, want %+v", i, got, w)
		}
	}
}

func TestBilinearFloatKind(t *testing.T) {
	src := pixel.NewView([]pixel.RGBA32F{{R: 0, A: 1}, {R: 1, A: 1}}, 2, 1)
	dst := pixel.NewView(make([]pixel.RGBA32F, 5), 5, 1)

	Bilinear(src, dst, nil)

	want := []float32{0, 0.25, 0.5, 0.75, 1}
	for i, w := range want {
		if got := dst.Pix()[i].R; got != w {
			t.Errorf("R[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestBilinearEmpty(t *testing.T) {
	src := newRamp()
	// Should not panic
	Bilinear(src, pixel.View[uint8]{}, nil)
	Bilinear(pixel.View[uint8]{}, newBlank(2, 2), nil)
}

func TestResampleParallelMatchesSequential(t *testing.T) {
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	src := newPattern(53, 41)

	for _, m := range []Method{MethodNearest, MethodBilinear, MethodArea} {
		for _, size := range []struct{ w, h int }{{20, 13}, {80, 90}} {
			seq := newBlank(size.w, size.h)
			par := newBlank(size.w, size.h)

			Resample(m, src, seq, nil)
			Resample(m, src, par, pool)

			for i := range seq.Pix() {
				if seq.Pix()[i] != par.Pix()[i] {
					t.Fatalf("%s %dx%d: pix[%d] sequential %+v != parallel %+v",
						m, size.w, size.h, i, seq.Pix()[i], par.Pix()[i])
				}
			}
		}
	}
}

func BenchmarkBilinear(b *testing.B) {
	pool := parallel.NewWorkerPool(0)
	defer pool.Close()

	src := newPattern(1920, 1080)
	dst := newBlank(640, 360)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Bilinear(src, dst, pool)
	}
}
