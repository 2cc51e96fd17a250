// Package main provides geomcrop, a tool that crops regular-grid geometry
// descriptions at a given offset and resolution.
//
// Without file arguments it filters stdin to stdout. With file arguments it
// rewrites each file in place, writing a temporary sibling and renaming it
// over the original only after the crop succeeded. Options come from flags
// or from a YAML job file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/geomtools/geomgrid"
	"github.com/geomtools/geomgrid/format"
	"github.com/geomtools/geomgrid/geom"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	job, files, err := parseArgs(os.Args[1:])
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(2)
	}

	if len(files) == 0 {
		if err := cropStream(os.Stdin, os.Stdout, job); err != nil {
			slog.Error("crop failed", "error", err)
			os.Exit(1)
		}

		return
	}

	failed := false
	for _, name := range files {
		if err := cropFile(name, job); err != nil {
			slog.Error("crop failed", "file", name, "error", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// parseArgs resolves flags, an optional YAML job file, and the positional
// file list. Flags given on the command line win over the job file.
func parseArgs(args []string) (Job, []string, error) {
	fs := flag.NewFlagSet("geomcrop", flag.ContinueOnError)

	var (
		resolution triple
		offset     triple
		twoD       bool
		jobPath    string
	)
	fs.Var(&resolution, "r", "a,b,c resolution of cropped box (0 keeps the source value)")
	fs.Var(&resolution, "resolution", "a,b,c resolution of cropped box (0 keeps the source value)")
	fs.Var(&offset, "o", "a,b,c offset of cropped box")
	fs.Var(&offset, "offset", "a,b,c offset of cropped box")
	fs.BoolVar(&twoD, "2", false, "output geometry with two-dimensional data arrangement")
	fs.StringVar(&jobPath, "job", "", "YAML job file with resolution, offset, layout and files")

	if err := fs.Parse(args); err != nil {
		return Job{}, nil, err
	}

	job := Job{}
	files := fs.Args()
	if jobPath != "" {
		loaded, err := LoadJob(jobPath)
		if err != nil {
			return Job{}, nil, err
		}
		job = loaded
		if len(files) == 0 {
			files = job.Files
		}
	}

	if resolution.set {
		job.Resolution = resolution.v
	}
	if offset.set {
		job.Offset = offset.v
	}
	if twoD {
		job.TwoDimensional = true
	}

	return job, files, nil
}

func (j Job) spec() geom.CropSpec {
	return geom.CropSpec{Resolution: j.Resolution, Offset: j.Offset}
}

func (j Job) writerOptions() []geom.WriterOption {
	if j.TwoDimensional {
		return []geom.WriterOption{geom.WithLayout(format.Layout2D)}
	}

	return nil
}

func cropStream(in *os.File, out *os.File, job Job) error {
	g, err := geomgrid.Read(in)
	if err != nil {
		return err
	}

	cropped, err := geom.Crop(g, job.spec())
	if err != nil {
		return err
	}

	return geomgrid.Write(out, cropped, job.writerOptions()...)
}

func cropFile(name string, job Job) error {
	g, err := geomgrid.ReadFile(name)
	if err != nil {
		return err
	}

	cropped, err := geom.Crop(g, job.spec())
	if err != nil {
		return err
	}

	srcGrid, dstGrid := g.Grid(), cropped.Grid()
	srcSize, dstSize := g.Size(), cropped.Size()
	slog.Info("cropped",
		"file", name,
		"grid", fmt.Sprintf("%d x %d x %d -> %d x %d x %d",
			srcGrid[0], srcGrid[1], srcGrid[2], dstGrid[0], dstGrid[1], dstGrid[2]),
		"size", fmt.Sprintf("%g x %g x %g -> %g x %g x %g",
			srcSize[0], srcSize[1], srcSize[2], dstSize[0], dstSize[1], dstSize[2]),
	)

	// WriteFile stages the output in a temporary sibling and renames it over
	// the original only on success.
	return geomgrid.WriteFile(name, cropped, job.writerOptions()...)
}
