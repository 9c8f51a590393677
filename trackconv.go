package trackconv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tracktools/trackconv/convert"
	"github.com/tracktools/trackconv/gpx"
	"github.com/tracktools/trackconv/table"
)

// Converter performs file-to-file conversions for one input file. It is
// constructed per file and holds no state beyond the resolved path, so
// independent conversions can run concurrently, one Converter each.
type Converter struct {
	inputPath string
	inputExt  string
}

// New resolves the input file and fails fast when it does not exist.
func New(inputPath string) (*Converter, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("input file path is required")
	}
	abs, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", inputPath, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("the file %s does not exist", inputPath)
	}
	return &Converter{
		inputPath: abs,
		inputExt:  strings.ToLower(filepath.Ext(abs)),
	}, nil
}

// InputPath returns the resolved absolute input path.
func (c *Converter) InputPath() string { return c.inputPath }

// GPXToTable parses the input GPX file, flattens it, and prunes columns
// that carry no data.
func (c *Converter) GPXToTable(opts convert.TableOptions) (*table.Table, error) {
	if err := c.requireInput(".gpx", "GPX"); err != nil {
		return nil, err
	}
	doc, err := gpx.ParseFile(c.inputPath)
	if err != nil {
		return nil, err
	}
	t, err := convert.Flatten(doc, opts)
	if err != nil {
		return nil, err
	}
	convert.PruneEmptyColumns(t)
	return t, nil
}

// GPXToCSV converts the input GPX file to a CSV file.
func (c *Converter) GPXToCSV(outputPath string, opts convert.TableOptions) error {
	if err := requireOutput(outputPath, ".csv", "CSV"); err != nil {
		return err
	}
	t, err := c.GPXToTable(opts)
	if err != nil {
		return err
	}
	return table.WriteCSVFile(outputPath, t)
}

// GPXToExcel converts the input GPX file to a spreadsheet. Timestamps are
// written zone-less, which is what spreadsheet tools expect.
func (c *Converter) GPXToExcel(outputPath string, opts convert.TableOptions) error {
	if err := requireOutput(outputPath, ".xlsx", "Excel (xlsx)"); err != nil {
		return err
	}
	t, err := c.GPXToTable(opts)
	if err != nil {
		return err
	}
	return table.WriteXLSXFile(outputPath, t)
}

// GPXToJSON converts the input GPX file to row-oriented JSON with ISO-8601
// timestamps.
func (c *Converter) GPXToJSON(outputPath string, opts convert.TableOptions) error {
	if err := requireOutput(outputPath, ".json", "JSON"); err != nil {
		return err
	}
	t, err := c.GPXToTable(opts)
	if err != nil {
		return err
	}
	return table.WriteJSONFile(outputPath, t)
}

// CSVToGPX converts the input CSV file to a GPX file.
func (c *Converter) CSVToGPX(outputPath string, opts convert.TrackOptions) error {
	if err := c.requireInput(".csv", "CSV"); err != nil {
		return err
	}
	t, err := table.ReadCSVFile(c.inputPath)
	if err != nil {
		return err
	}
	return writeTrack(outputPath, t, opts)
}

// ExcelToGPX converts the first sheet of the input spreadsheet to a GPX
// file.
func (c *Converter) ExcelToGPX(outputPath string, opts convert.TrackOptions) error {
	if err := c.requireInput(".xlsx", "Excel (xlsx)"); err != nil {
		return err
	}
	t, err := table.ReadXLSXFile(c.inputPath)
	if err != nil {
		return err
	}
	return writeTrack(outputPath, t, opts)
}

// JSONToGPX converts the input row-oriented JSON file to a GPX file.
func (c *Converter) JSONToGPX(outputPath string, opts convert.TrackOptions) error {
	if err := c.requireInput(".json", "JSON"); err != nil {
		return err
	}
	t, err := table.ReadJSONFile(c.inputPath)
	if err != nil {
		return err
	}
	return writeTrack(outputPath, t, opts)
}

func writeTrack(outputPath string, t *table.Table, opts convert.TrackOptions) error {
	if err := requireOutput(outputPath, ".gpx", "GPX"); err != nil {
		return err
	}
	doc, err := convert.BuildTrack(t, opts)
	if err != nil {
		return err
	}
	return gpx.WriteFile(outputPath, doc)
}

// ConvertDirCSVToGPX converts every *.csv file in a directory to a sibling
// .gpx file with the same stem. Files are independent; the first failure
// stops the batch.
func ConvertDirCSVToGPX(dir string, opts convert.TrackOptions) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	for _, path := range matches {
		conv, err := New(path)
		if err != nil {
			return err
		}
		out := strings.TrimSuffix(path, filepath.Ext(path)) + ".gpx"
		if err := conv.CSVToGPX(out, opts); err != nil {
			return fmt.Errorf("convert %s: %w", path, err)
		}
	}
	return nil
}

// DefaultOutputPath derives the conventional output name for an input file:
// the same directory and stem with a "-converted.gpx" suffix.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "-converted.gpx"
}
