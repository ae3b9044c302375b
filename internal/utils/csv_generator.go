package utils

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"clubmanager/internal/logger"
)

// CSVGeneratorConfig describes one export: the header row and a producer
// that yields data rows until it returns false.
type CSVGeneratorConfig struct {
	Name    string
	Headers []string
	Rows    func(yield func([]string) bool)
	Logger  logger.Logger
}

type CSVGenerator struct {
	config CSVGeneratorConfig
	log    logger.Logger
}

func NewCSVGenerator(config CSVGeneratorConfig) *CSVGenerator {
	return &CSVGenerator{
		config: config,
		log:    config.Logger.File("csv_generator").Function("CSVGenerator"),
	}
}

const csvBufferSize = 64 * 1024

// WriteTo streams the export into w and returns the number of data rows
// written. Cancellation is checked every thousand rows.
func (g *CSVGenerator) WriteTo(ctx context.Context, w io.Writer) (int, error) {
	log := g.log.Function("WriteTo")

	buffered := bufio.NewWriterSize(w, csvBufferSize)
	csvWriter := csv.NewWriter(buffered)

	if err := csvWriter.Write(g.config.Headers); err != nil {
		return 0, log.Err("failed to write headers", err, "export", g.config.Name)
	}

	rows := 0
	var writeErr error
	if g.config.Rows != nil {
		g.config.Rows(func(row []string) bool {
			if rows%1000 == 0 && ctx.Err() != nil {
				writeErr = fmt.Errorf("csv export cancelled: %w", ctx.Err())
				return false
			}
			if err := csvWriter.Write(row); err != nil {
				writeErr = fmt.Errorf("failed to write row %d: %w", rows, err)
				return false
			}
			rows++
			return true
		})
	}
	if writeErr != nil {
		return rows, log.Err("csv export aborted", writeErr, "export", g.config.Name)
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return rows, log.Err("failed to flush csv writer", err, "export", g.config.Name)
	}
	if err := buffered.Flush(); err != nil {
		return rows, log.Err("failed to flush csv buffer", err, "export", g.config.Name)
	}

	log.Debug("csv export completed", "export", g.config.Name, "rows", rows)
	return rows, nil
}
