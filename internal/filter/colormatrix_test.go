package filter

import (
	"testing"

	"github.com/gogpu/pixproc/internal/parallel"
	"github.com/gogpu/pixproc/pixel"
)

func TestIdentityMatrix(t *testing.T) {
	m := IdentityMatrix()

	expected := ColorMatrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
	if m != expected {
		t.Errorf("IdentityMatrix = %v, want %v", m, expected)
	}

	src := newPattern(7, 5)
	img := cloneView(src)
	ApplyColorMatrix(img, m, nil)

	for i, want := range src.Pix() {
		if got := img.Pix()[i]; got != want {
			t.Fatalf("pix[%d] = %+v, want %+v (unchanged)", i, got, want)
		}
	}
}

func TestSepia(t *testing.T) {
	tests := []struct {
		name string
		in   pixel.RGBA8
		want pixel.RGBA8
	}{
		{
			// blue row sums to 0.937: white maps to B=238, only R and G saturate
			name: "white",
			in:   pixel.RGBA8{R: 255, G: 255, B: 255, A: 255},
			want: pixel.RGBA8{R: 255, G: 255, B: 238, A: 255},
		},
		{
			name: "black stays black",
			in:   pixel.RGBA8{A: 255},
			want: pixel.RGBA8{A: 255},
		},
		{
			// r' = 39.3+38.45+3.78, g' = 34.9+34.3+3.36, b' = 27.2+26.7+2.62
			name: "mid tone truncates",
			in:   pixel.RGBA8{R: 100, G: 50, B: 20, A: 7},
			want: pixel.RGBA8{R: 81, G: 72, B: 56, A: 7},
		},
		{
			// r' = 234.29, g' = 208.68, b' = 162.51
			name: "bright tone",
			in:   pixel.RGBA8{R: 200, G: 200, B: 10, A: 0},
			want: pixel.RGBA8{R: 234, G: 208, B: 162, A: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newUniform(2, 2, tt.in)
			Sepia(img, nil)
			for i, got := range img.Pix() {
				if got != tt.want {
					t.Errorf("pix[%d] = %+v, want %+v", i, got, tt.want)
				}
			}
		})
	}
}

func TestInvertMatrix(t *testing.T) {
	img := newUniform(3, 3, pixel.RGBA8{R: 0, G: 100, B: 255, A: 42})
	ApplyColorMatrix(img, InvertMatrix(), nil)

	want := pixel.RGBA8{R: 255, G: 155, B: 0, A: 42}
	if got := *img.At(1, 1); got != want {
		t.Errorf("inverted = %+v, want %+v", got, want)
	}
}

func TestBrightnessAndContrast(t *testing.T) {
	tests := []struct {
		name string
		m    ColorMatrix
		in   pixel.RGBA8
		want pixel.RGBA8
	}{
		{"brightness double", BrightnessMatrix(2), pixel.RGBA8{R: 10, G: 100, B: 200, A: 255}, pixel.RGBA8{R: 20, G: 200, B: 255, A: 255}},
		{"brightness zero", BrightnessMatrix(0), pixel.RGBA8{R: 10, G: 100, B: 200, A: 255}, pixel.RGBA8{A: 255}},
		{"contrast one", ContrastMatrix(1), pixel.RGBA8{R: 10, G: 100, B: 200, A: 9}, pixel.RGBA8{R: 10, G: 100, B: 200, A: 9}},
		{"contrast zero", ContrastMatrix(0), pixel.RGBA8{R: 10, G: 100, B: 200, A: 9}, pixel.RGBA8{R: 128, G: 128, B: 128, A: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newUniform(1, 1, tt.in)
			ApplyColorMatrix(img, tt.m, nil)
			if got := *img.At(0, 0); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSaturationZeroIsLuma(t *testing.T) {
	img := newUniform(1, 1, pixel.RGBA8{R: 255, A: 255})
	ApplyColorMatrix(img, SaturationMatrix(0), nil)

	got := *img.At(0, 0)
	// 0.299 * 255 = 76.245
	for _, c := range []uint8{got.R, got.G, got.B} {
		if absDiff(c, 76) > 1 {
			t.Errorf("desaturated red = %+v, want ~76 gray", got)
			break
		}
	}
}

func TestColorMatrixMultiply(t *testing.T) {
	if got := IdentityMatrix().Multiply(SepiaMatrix()); got != SepiaMatrix() {
		t.Errorf("Identity*Sepia = %v, want Sepia", got)
	}
	if got := SepiaMatrix().Multiply(IdentityMatrix()); got != SepiaMatrix() {
		t.Errorf("Sepia*Identity = %v, want Sepia", got)
	}
	if got := BrightnessMatrix(2).Multiply(BrightnessMatrix(0.5)); got != IdentityMatrix() {
		t.Errorf("Brightness(2) then Brightness(0.5) = %v, want identity", got)
	}

	// Invert twice: 255 - (255 - c) = c
	twice := InvertMatrix().Multiply(InvertMatrix())
	if twice != IdentityMatrix() {
		t.Errorf("Invert*Invert = %v, want identity", twice)
	}
}

func TestColorMatrixFloatKind(t *testing.T) {
	img := pixel.NewView(make([]pixel.RGBA32F, 1), 1, 1)
	*img.At(0, 0) = pixel.RGBA32F{R: 255, G: 255, B: 255, A: 0.5}

	Sepia(img, nil)

	got := *img.At(0, 0)
	if got.R != 255 || got.G != 255 || got.A != 0.5 {
		t.Errorf("sepia white (float) = %+v, want R=G=255 A=0.5", got)
	}
	// 0.937 * 255, kept fractional
	if got.B < 238.9 || got.B > 238.97 {
		t.Errorf("sepia white B = %v, want ~238.935", got.B)
	}
}

func TestColorMatrixClampsWideChannels(t *testing.T) {
	img := pixel.NewView(make([]pixel.RGBA16, 1), 1, 1)
	*img.At(0, 0) = pixel.RGBA16{R: 1000, G: 100, B: 40000, A: 60000}

	ApplyColorMatrix(img, IdentityMatrix(), nil)

	want := pixel.RGBA16{R: 255, G: 100, B: 255, A: 60000}
	if got := *img.At(0, 0); got != want {
		t.Errorf("identity on uint16 = %+v, want %+v", got, want)
	}
}

func TestColorMatrixParallelMatchesSequential(t *testing.T) {
	pool := parallel.NewWorkerPool(3)
	defer pool.Close()

	seq := newPattern(31, 17)
	par := cloneView(seq)

	Sepia(seq, nil)
	Sepia(par, pool)

	for i := range seq.Pix() {
		if seq.Pix()[i] != par.Pix()[i] {
			t.Fatalf("pix[%d]: sequential %+v != parallel %+v", i, seq.Pix()[i], par.Pix()[i])
		}
	}
}

func BenchmarkSepia(b *testing.B) {
	pool := parallel.NewWorkerPool(0)
	defer pool.Close()

	img := newPattern(1920, 1080)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sepia(img, pool)
	}
}
