package main

import (
	"flag"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tracktools/trackconv"
	"github.com/tracktools/trackconv/config"
	"github.com/tracktools/trackconv/convert"
	"github.com/tracktools/trackconv/gpx"
)

func main() {
	input := flag.String("input", "", "input file (.gpx, .csv, .xlsx, .json)")
	output := flag.String("output", "", "output file; default derives from the input name")
	dir := flag.String("dir", "", "convert every *.csv in this directory to .gpx (batch mode)")
	profilePath := flag.String("profile", "", "YAML conversion profile")
	wunderlinq := flag.Bool("wunderlinq", false, "use the built-in WunderLINQ TripLog profile")
	timeFormat := flag.String("time-format", "", "Go layout for input timestamps (overrides profile)")
	timeUTC := flag.Bool("utc", false, "emit UTC timestamps")
	timezone := flag.String("tz", "", "IANA timezone for zone-less input timestamps, e.g. Asia/Nicosia")
	noExtensions := flag.Bool("no-extensions", false, "skip extension columns when flattening GPX")
	smooth := flag.Int("smooth", 0, "resample each track segment to this many points before writing GPX")
	degree := flag.Int("degree", 3, "B-spline degree for -smooth")
	closed := flag.Bool("closed", false, "treat smoothed tracks as closed curves")
	trackName := flag.String("track-name", "", "name for the generated track")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := trackconv.InitLogging(level)

	profile := loadProfile(log, *profilePath, *wunderlinq)
	if *timeFormat != "" {
		profile.Time.Layout = *timeFormat
	}
	if *timeUTC {
		profile.Time.UTC = true
	}
	if *timezone != "" {
		profile.Time.Location = *timezone
	}
	if *trackName != "" {
		profile.TrackName = *trackName
	}
	samples, splineDegree, closedCurve := smoothSettings(profile.Smooth, *smooth, *degree, *closed, setFlags)

	trackOpts, err := profile.TrackOptions()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid time configuration")
	}
	tableOpts := profile.TableOptions()
	tableOpts.ExportExtensions = tableOpts.ExportExtensions && !*noExtensions

	if *dir != "" {
		if err := trackconv.ConvertDirCSVToGPX(*dir, trackOpts); err != nil {
			log.Fatal().Err(err).Str("dir", *dir).Msg("batch conversion failed")
		}
		log.Info().Str("dir", *dir).Msg("batch conversion complete")
		return
	}

	if *input == "" {
		log.Fatal().Msg("either -input or -dir is required")
	}
	conv, err := trackconv.New(*input)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open input")
	}

	inputExt := strings.ToLower(filepath.Ext(*input))
	out := *output
	if out == "" {
		if inputExt == ".gpx" {
			out = strings.TrimSuffix(*input, filepath.Ext(*input)) + ".csv"
		} else {
			out = trackconv.DefaultOutputPath(*input)
		}
	}

	switch inputExt {
	case ".gpx":
		err = fromGPX(conv, out, tableOpts)
	case ".csv":
		err = toGPX(conv.CSVToGPX, out, trackOpts, samples, splineDegree, closedCurve)
	case ".xlsx":
		err = toGPX(conv.ExcelToGPX, out, trackOpts, samples, splineDegree, closedCurve)
	case ".json":
		err = toGPX(conv.JSONToGPX, out, trackOpts, samples, splineDegree, closedCurve)
	default:
		log.Fatal().Str("input", *input).Msg("unsupported input extension")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
	log.Info().Str("input", *input).Str("output", out).Msg("conversion complete")
}

// smoothSettings merges the profile's smooth block with the command-line
// flags. A flag given on the command line wins over the profile; a degree of
// zero in both falls back to the flag's default.
func smoothSettings(cfg config.SmoothConfig, samples, degree int, closed bool, set map[string]bool) (int, int, bool) {
	outSamples, outDegree, outClosed := cfg.Samples, cfg.Degree, cfg.Closed
	if set["smooth"] {
		outSamples = samples
	}
	if set["degree"] || outDegree == 0 {
		outDegree = degree
	}
	if set["closed"] {
		outClosed = closed
	}
	return outSamples, outDegree, outClosed
}

func loadProfile(log zerolog.Logger, path string, wunderlinq bool) config.Profile {
	if path != "" {
		p, err := config.LoadProfile(path)
		if err != nil {
			log.Fatal().Err(err).Str("profile", path).Msg("cannot load profile")
		}
		return p
	}
	if wunderlinq {
		return config.WunderLINQ()
	}
	// Bare defaults: canonical column names in both directions.
	return config.Profile{
		Columns: config.ColumnsConfig{
			Latitude:  "latitude",
			Longitude: "longitude",
			Time:      "time",
			Elevation: "altitude",
		},
	}
}

func fromGPX(conv *trackconv.Converter, out string, opts convert.TableOptions) error {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".xlsx":
		return conv.GPXToExcel(out, opts)
	case ".json":
		return conv.GPXToJSON(out, opts)
	default:
		return conv.GPXToCSV(out, opts)
	}
}

// toGPX runs one table→document conversion and, when requested, smooths the
// written track in place.
func toGPX(fn func(string, convert.TrackOptions) error, out string, opts convert.TrackOptions, smooth, degree int, closed bool) error {
	if err := fn(out, opts); err != nil {
		return err
	}
	if smooth <= 0 {
		return nil
	}
	doc, err := gpx.ParseFile(out)
	if err != nil {
		return err
	}
	if err := trackconv.SmoothTrack(doc, smooth, degree, closed); err != nil {
		return err
	}
	return gpx.WriteFile(out, doc)
}
