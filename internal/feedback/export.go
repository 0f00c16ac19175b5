package feedback

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
)

var ErrExportDisabled = errors.New("history export is not configured")

// Uploader puts an object into a bucket and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Exporter struct {
	uploader Uploader
	prefix   string
}

func NewExporter(uploader Uploader, prefix string) *Exporter {
	return &Exporter{uploader: uploader, prefix: prefix}
}

// Export writes history as CSV with the table's column header.
func (e *Exporter) Export(ctx context.Context, history []Record) (string, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, history); err != nil {
		return "", err
	}

	key := fmt.Sprintf(
		"%s/%s-%s.csv",
		e.prefix,
		time.Now().UTC().Format("20060102T150405Z"),
		uuid.New().String(),
	)

	url, err := e.uploader.Upload(ctx, key, &buf, "text/csv")
	if err != nil {
		return "", err
	}

	log.Printf("[EXPORT] %d feedback rows → %s", len(history), url)
	return url, nil
}

func WriteCSV(w io.Writer, history []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, rec := range history {
		if err := cw.Write(rec.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
