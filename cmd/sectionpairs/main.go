// The sectionpairs command reads pairs of section assignments from stdin,
// one "a-b,c-d" pair per line, and reports how many pairs need
// reconsideration and how many overlap at all.
package main

import (
	"io"
	"os"

	"github.com/henderiw/sectionpairs/pkg/assignment"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger := zap.Must(loggerConfig().Build()).Sugar()
	defer logger.Sync()

	if err := run(os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatalw("cannot summarize section assignments", "error", err)
	}
}

// loggerConfig logs to stderr only; stdout carries the report.
func loggerConfig() zap.Config {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding:          "console",
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		EncoderConfig:     encoderCfg,
	}
}

func run(in io.Reader, out io.Writer, logger *zap.SugaredLogger) error {
	report, err := assignment.Summarize(in)
	if err != nil {
		return err
	}
	logger.Debugw("summarized section assignments",
		"needsReconsideration", report.NeedsReconsideration,
		"anyOverlap", report.AnyOverlap)
	_, err = report.WriteTo(out)
	return err
}
