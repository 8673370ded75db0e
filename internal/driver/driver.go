package driver

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mj1618/rx2uitest/internal/convert"
	"github.com/mj1618/rx2uitest/internal/logging"
)

var (
	// ErrMissingInput is reported for input paths that do not exist.
	ErrMissingInput = errors.New("file not found")
	// ErrEmptyInput is reported for zero-length input files.
	ErrEmptyInput = errors.New("empty file")
)

// Options configure a Driver.
type Options struct {
	OutputDir string
	Convert   convert.Options
	Scaffold  convert.ScaffoldOptions
	// NoScaffold disables writing the base fixture and project file.
	NoScaffold bool
}

// Driver converts files on disk and writes the generated tests into the
// output directory.
type Driver struct {
	opts  Options
	log   *slog.Logger
	steps *stepCache
}

// New creates a Driver. A nil logger discards all records.
func New(opts Options, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Driver{opts: opts, log: logger, steps: newStepCache()}
}

// run carries the per-invocation state of one conversion run.
type run struct {
	scaffolded bool
}

// Convert converts path, which may be a single file or a directory tree.
func (d *Driver) Convert(path string) (Summary, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return d.ConvertDirectory(path)
	}
	r := &run{}
	summary := Summary{}.With(d.convertFile(r, path))
	d.logSummary(summary)
	return summary, nil
}

// ConvertFile converts a single file. Validation problems (missing, empty,
// unsupported) skip the file; parse and write problems fail it.
func (d *Driver) ConvertFile(path string) FileResult {
	return d.convertFile(&run{}, path)
}

// ConvertDirectory walks dir recursively and converts every file with a
// supported extension. A failing file never stops the walk. The output
// directory is skipped when it lives inside dir.
func (d *Driver) ConvertDirectory(dir string) (Summary, error) {
	d.log.Info("starting directory processing", "dir", dir)

	info, err := os.Stat(dir)
	if err != nil {
		return Summary{}, fmt.Errorf("open input directory: %w", err)
	}
	if !info.IsDir() {
		return Summary{}, fmt.Errorf("%s is not a directory", dir)
	}
	outAbs, _ := filepath.Abs(d.opts.OutputDir)

	r := &run{}
	summary := Summary{}
	err = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if abs, _ := filepath.Abs(path); path != dir && abs == outAbs {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := convert.Classify(path); !ok {
			return nil
		}
		summary = summary.With(d.convertFile(r, path))
		return nil
	})
	if err != nil {
		d.log.Error("fatal error processing directory", "dir", dir, "error", err)
		return summary, fmt.Errorf("walk %s: %w", dir, err)
	}
	d.logSummary(summary)
	return summary, nil
}

func (d *Driver) convertFile(r *run, path string) FileResult {
	res := d.doConvert(r, path)
	switch res.Status {
	case StatusConverted:
		d.log.Info("converted", "path", path, "kind", res.Kind, "outputs", len(res.Outputs))
	case StatusSkipped:
		d.log.Warn("skipped", "path", path, "reason", res.Reason)
	case StatusFailed:
		d.log.Error("conversion failed", "path", path, "kind", res.Kind, "error", res.Reason)
	}
	return res
}

func (d *Driver) doConvert(r *run, path string) FileResult {
	res := FileResult{Path: path}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return skipped(res, ErrMissingInput)
	case err != nil:
		return failed(res, err)
	case info.IsDir():
		return skipped(res, fmt.Errorf("%w: directory", convert.ErrUnsupportedFileKind))
	case info.Size() == 0:
		return skipped(res, ErrEmptyInput)
	}

	kind, ok := convert.Classify(path)
	if !ok {
		return skipped(res, fmt.Errorf("%w: %s", convert.ErrUnsupportedFileKind, strings.ToLower(filepath.Ext(path))))
	}
	res.Kind = kind
	d.log.Debug("processing file", "path", path, "kind", kind)

	data, err := os.ReadFile(path)
	if err != nil {
		return failed(res, fmt.Errorf("read input: %w", err))
	}

	var files []convert.GeneratedFile
	switch kind {
	case convert.KindSuite:
		files, err = convert.ConvertSuite(path, data, d.stepLoader(filepath.Dir(path)), d.opts.Convert)
	case convert.KindRecording:
		var f convert.GeneratedFile
		f, err = convert.ConvertRecording(convert.BaseName(path), data, d.opts.Convert)
		files = []convert.GeneratedFile{f}
	case convert.KindSource:
		files = []convert.GeneratedFile{convert.ConvertSource(path, data)}
	}
	if err != nil {
		return failed(res, err)
	}

	if kind != convert.KindSource {
		if err := d.scaffold(r); err != nil {
			return failed(res, err)
		}
	}
	for _, f := range files {
		out, err := d.write(f)
		if err != nil {
			return failed(res, err)
		}
		res.Outputs = append(res.Outputs, out)
	}
	res.Status = StatusConverted
	return res
}

// stepLoader resolves test case paths against the suite's directory.
func (d *Driver) stepLoader(base string) convert.StepLoader {
	return func(path string) ([]byte, error) {
		if !filepath.IsAbs(path) {
			path = filepath.Join(base, filepath.FromSlash(strings.ReplaceAll(path, `\`, "/")))
		}
		return d.steps.read(path)
	}
}

// scaffold writes the shared project files once per run.
func (d *Driver) scaffold(r *run) error {
	if d.opts.NoScaffold || r.scaffolded {
		return nil
	}
	if _, err := WriteScaffold(d.opts.OutputDir, d.opts.Scaffold); err != nil {
		return err
	}
	r.scaffolded = true
	d.log.Debug("wrote project scaffold", "dir", d.opts.OutputDir)
	return nil
}

// WriteScaffold creates the output directory layout, base fixture and
// project file under dir and returns the written file paths.
func WriteScaffold(dir string, opts convert.ScaffoldOptions) ([]string, error) {
	for _, sub := range append([]string{""}, convert.ScaffoldDirs...) {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	var written []string
	for _, f := range convert.ScaffoldFiles(opts) {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", f.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func (d *Driver) write(f convert.GeneratedFile) (string, error) {
	if err := os.MkdirAll(d.opts.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(d.opts.OutputDir, f.Name)
	if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return path, nil
}

func (d *Driver) logSummary(s Summary) {
	d.log.Info("conversion summary",
		"converted", s.Converted,
		"skipped", s.Skipped,
		"errors", s.Failed,
		"total", s.Total(),
	)
}

func skipped(res FileResult, err error) FileResult {
	res.Status = StatusSkipped
	res.Reason = err.Error()
	res.Err = err
	return res
}

func failed(res FileResult, err error) FileResult {
	res.Status = StatusFailed
	res.Reason = err.Error()
	res.Err = err
	return res
}
