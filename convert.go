package acrotex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// ConvertRequest configures Convert.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Preview io.Writer
	// PreviewOptions styles the preview when Preview is set.
	PreviewOptions PreviewOptions
	Load           []LoadOption
	Format         []FormatOption
	Logger         *slog.Logger
	// Client fetches http(s) sources in ConvertFile; nil uses
	// http.DefaultClient.
	Client *http.Client
}

// Result summarizes a conversion.
type Result struct {
	Count int
}

// Convert loads entries from Reader, formats them and writes the blocks to
// Writer. When Preview is set every block is printed there before writing.
// Any failure aborts the run.
func Convert(ctx context.Context, req ConvertRequest) (Result, error) {
	if req.Reader == nil {
		return Result{}, errors.New("convert: Reader is nil")
	}
	if req.Writer == nil {
		return Result{}, errors.New("convert: Writer is nil")
	}
	blocks, err := req.blocks(ctx, req.Reader)
	if err != nil {
		return Result{}, fmt.Errorf("convert: %w", err)
	}
	n, err := Write(req.Writer, blocks)
	if err != nil {
		return Result{}, fmt.Errorf("convert: %w", err)
	}
	req.logger().Debug("blocks written", "count", n)
	return Result{Count: n}, nil
}

// ConvertFile converts the input at source into the file at output. Reader
// and Writer in req are ignored. The output file is only created once every
// entry has been formatted.
func ConvertFile(ctx context.Context, source, output string, req ConvertRequest, opts ...WriteOption) (Result, error) {
	in, err := Open(ctx, source, req.Client)
	if err != nil {
		return Result{}, err
	}
	defer in.Close()

	blocks, err := req.blocks(ctx, in)
	if err != nil {
		return Result{}, fmt.Errorf("convert %s: %w", source, err)
	}
	n, err := WriteFile(output, blocks, opts...)
	if err != nil {
		return Result{}, err
	}
	req.logger().Debug("output written", "path", output, "count", n)
	return Result{Count: n}, nil
}

func (req ConvertRequest) blocks(ctx context.Context, r io.Reader) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := req.logger()

	entries, err := Load(r, req.Load...)
	if err != nil {
		return nil, err
	}
	logger.Debug("entries loaded", "count", len(entries))

	blocks, err := FormatAll(entries, req.Format...)
	if err != nil {
		return nil, err
	}
	if req.Preview != nil {
		if err := WritePreview(req.Preview, blocks, req.PreviewOptions); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (req ConvertRequest) logger() *slog.Logger {
	if req.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return req.Logger
}
