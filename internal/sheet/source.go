package sheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Payload shapes served by the remote source. The mode is chosen by
// configuration; the client never sniffs the response.
const (
	ModeValues  = "values"
	ModeObjects = "objects"
)

var ErrUnknownMode = errors.New("unknown sheet mode")

// Source fetches the current sheet snapshot as ordered rows of cells.
type Source interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

// NewSource builds the adapter for the configured payload mode.
func NewSource(mode, url string, cols ColumnMap, timeout time.Duration, logger *logrus.Logger) (Source, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	client := &http.Client{Timeout: timeout}
	switch mode {
	case ModeValues:
		return &valuesSource{url: url, client: client, logger: logger}, nil
	case ModeObjects:
		return &objectSource{url: url, cols: cols, client: client, logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// valuesSource reads the {values: [][]string} spreadsheet export. Row 0 is
// the header row and is discarded.
type valuesSource struct {
	url    string
	client *http.Client
	logger *logrus.Logger
}

func (s *valuesSource) FetchRows(ctx context.Context) ([][]string, error) {
	body, err := get(ctx, s.client, s.url)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Values [][]string `json:"values"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse sheet payload: %w", err)
	}

	if len(payload.Values) <= 1 {
		return nil, nil
	}
	return payload.Values[1:], nil
}

// objectSource reads a JSON array of pre-shaped objects and projects each
// object into an ordered row through the column map, so the decoder sees
// the same cell layout in both modes.
type objectSource struct {
	url    string
	cols   ColumnMap
	client *http.Client
	logger *logrus.Logger
}

func (s *objectSource) FetchRows(ctx context.Context) ([][]string, error) {
	body, err := get(ctx, s.client, s.url)
	if err != nil {
		return nil, err
	}

	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(body, &objects); err != nil {
		return nil, fmt.Errorf("failed to parse sheet payload: %w", err)
	}

	rows := make([][]string, 0, len(objects))
	for _, obj := range objects {
		rows = append(rows, s.cols.Project(obj))
	}
	return rows, nil
}

func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet request returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
