// Command pixbench times pixproc filters on a synthetic image and compares
// them with other Go imaging libraries.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/gogpu/pixproc"
	"github.com/gogpu/pixproc/pixel"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "filters":
		filtersCmd(os.Args[2:])
	case "resample":
		resampleCmd(os.Args[2:])
	case "cpu":
		printCPU(os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  pixbench filters [-w W] [-h H] [-iters N] [-workers N] [-sigma S] [-box K] [-baseline] [-v]")
	fmt.Fprintln(os.Stderr, "  pixbench resample [-w W] [-h H] [-ow W] [-oh H] [-method nearest|bilinear|area|all] [-iters N] [-workers N] [-baseline] [-v]")
	fmt.Fprintln(os.Stderr, "  pixbench cpu")
}

// commonFlags are shared by every benchmarking subcommand.
type commonFlags struct {
	width    int
	height   int
	iters    int
	workers  int
	baseline bool
	verbose  bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&c.width, "w", 1920, "source width")
	fs.IntVar(&c.height, "h", 1080, "source height")
	fs.IntVar(&c.iters, "iters", 20, "iterations per operation")
	fs.IntVar(&c.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS, 1 = sequential)")
	fs.BoolVar(&c.baseline, "baseline", false, "also time imaging, bild and x/image")
	fs.BoolVar(&c.verbose, "v", false, "log every pixproc operation")
}

// validate exits with status 2 on the first invalid flag value.
func (c *commonFlags) validate() {
	if c.width <= 0 || c.height <= 0 {
		fmt.Fprintln(os.Stderr, "-w and -h must be > 0")
		os.Exit(2)
	}
	if c.iters <= 0 {
		fmt.Fprintln(os.Stderr, "iters must be > 0")
		os.Exit(2)
	}
}

// setup configures logging and returns the engine for the run.
func (c *commonFlags) setup() (*pixproc.Engine, *slog.Logger) {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixproc.SetLogger(logger)

	e := pixproc.NewEngine(pixproc.WithWorkers(c.workers))
	logger.Info("pixbench",
		slog.Int("width", c.width),
		slog.Int("height", c.height),
		slog.Int("iters", c.iters),
		slog.Int("workers", e.Workers()),
		slog.String("go", runtime.Version()),
		slog.String("cpu", cpuSummary()))
	return e, logger
}

func filtersCmd(args []string) {
	fs := flag.NewFlagSet("filters", flag.ExitOnError)
	var (
		common commonFlags
		sigma  float64
		box    int
	)
	common.register(fs)
	fs.Float64Var(&sigma, "sigma", 3, "gaussian standard deviation")
	fs.IntVar(&box, "box", 5, "box blur size (odd)")
	_ = fs.Parse(args)

	common.validate()
	if box < 1 || box%2 == 0 {
		fmt.Fprintln(os.Stderr, "box must be odd and >= 1")
		os.Exit(2)
	}

	e, logger := common.setup()
	defer e.Close()

	src := syntheticImage(common.width, common.height)
	dst := pixproc.NewRGBA8(common.width, common.height)
	work := pixproc.NewRGBA8(common.width, common.height)

	var results []result
	add := func(op, impl string, fn func()) {
		r := measure(op, impl, common.iters, fn)
		logger.Debug("measured", slog.String("op", op), slog.String("impl", impl), slog.Duration("per_iter", r.perIter))
		results = append(results, r)
	}

	add("grayscale", "pixproc", func() {
		copy(work.Pix(), src.Pix())
		e.Grayscale(work)
	})
	add("sepia", "pixproc", func() {
		copy(work.Pix(), src.Pix())
		e.Sepia(work)
	})
	add(fmt.Sprintf("boxblur k=%d", box), "pixproc", func() { e.BoxBlur(src, dst, box) })
	add("gaussianblur5", "pixproc", func() { e.GaussianBlur5(src, dst) })
	add(fmt.Sprintf("gaussianblur s=%g", sigma), "pixproc", func() { e.GaussianBlur(src, dst, float32(sigma)) })

	if common.baseline {
		img := pixproc.ToImage(src)
		for _, b := range filterBaselines(img, box, sigma) {
			add(b.op, b.impl, b.run)
		}
	}

	printResults(os.Stdout, common.width, common.height, results)
}

func resampleCmd(args []string) {
	fs := flag.NewFlagSet("resample", flag.ExitOnError)
	var (
		common commonFlags
		outW   int
		outH   int
		method string
	)
	common.register(fs)
	fs.IntVar(&outW, "ow", 480, "output width")
	fs.IntVar(&outH, "oh", 270, "output height")
	fs.StringVar(&method, "method", "all", "method: nearest|bilinear|area|all")
	_ = fs.Parse(args)

	common.validate()
	if outW <= 0 || outH <= 0 {
		fmt.Fprintln(os.Stderr, "-ow and -oh must be > 0")
		os.Exit(2)
	}

	methods := []pixproc.ResampleMethod{pixproc.Nearest, pixproc.Bilinear, pixproc.Area}
	if !strings.EqualFold(method, "all") {
		m, err := pixproc.ParseResampleMethod(method)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		methods = []pixproc.ResampleMethod{m}
	}

	e, logger := common.setup()
	defer e.Close()

	src := syntheticImage(common.width, common.height)
	dst := pixproc.NewRGBA8(outW, outH)

	var results []result
	for _, m := range methods {
		r := measure(m.String(), "pixproc", common.iters, func() { e.Resample(src, dst, m) })
		logger.Debug("measured", slog.String("op", r.op), slog.Duration("per_iter", r.perIter))
		results = append(results, r)
	}

	r := measure("mipmaps", "pixproc", common.iters, func() { e.Mipmaps(src).Release() })
	results = append(results, r)

	if common.baseline {
		img := pixproc.ToImage(src)
		for _, b := range resampleBaselines(img, outW, outH) {
			results = append(results, measure(b.op, b.impl, common.iters, b.run))
		}
	}

	printResults(os.Stdout, common.width, common.height, results)
}

// syntheticImage builds a deterministic RGBA8 test card with gradients,
// hard edges and varying alpha.
func syntheticImage(w, h int) pixel.View[uint8] {
	img := pixproc.NewRGBA8(w, h)
	for y := 0; y < h; y++ {
		row := img.Row(y)
		for x := range row {
			check := uint8(0)
			if (x/32+y/32)%2 == 0 {
				check = 64
			}
			row[x] = pixel.RGBA8{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: check + uint8((x^y)&63),
				A: 255 - uint8((x+y)&15),
			}
		}
	}
	return img
}

// result is one timed operation.
type result struct {
	op      string
	impl    string
	iters   int
	total   time.Duration
	perIter time.Duration
}

// measure runs fn once to warm up, then iters times.
func measure(op, impl string, iters int, fn func()) result {
	fn()

	start := time.Now()
	for range iters {
		fn()
	}
	total := time.Since(start)

	return result{
		op:      op,
		impl:    impl,
		iters:   iters,
		total:   total,
		perIter: total / time.Duration(iters),
	}
}

func printResults(w io.Writer, width, height int, results []result) {
	mpix := float64(width*height) / 1e6
	fmt.Fprintf(w, "%-22s %-10s %12s %10s\n", "op", "impl", "per iter", "MPix/s")
	for _, r := range results {
		rate := mpix / r.perIter.Seconds()
		fmt.Fprintf(w, "%-22s %-10s %12s %10.1f\n", r.op, r.impl, r.perIter.Round(time.Microsecond), rate)
	}
}

// baseline is an equivalent operation from another library.
type baseline struct {
	op   string
	impl string
	run  func()
}
