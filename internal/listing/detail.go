package listing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"nicaris/backoffice/internal/models"
	"nicaris/backoffice/internal/sheet"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when no decoded row matches the requested id.
var ErrNotFound = errors.New("property not found")

// Resolver locates a single record in the remote sheet. The source offers
// no server-side lookup, so resolution is a full fetch plus a linear scan,
// which is sufficient at the sheet's size.
type Resolver struct {
	source  sheet.Source
	decoder *sheet.Decoder
	logger  *logrus.Logger
}

func NewResolver(source sheet.Source, decoder *sheet.Decoder, logger *logrus.Logger) *Resolver {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Resolver{source: source, decoder: decoder, logger: logger}
}

// Resolve fetches the sheet and returns the record whose id equals the
// trimmed target, or ErrNotFound. Row order is not assumed.
func (r *Resolver) Resolve(ctx context.Context, id string) (*models.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	rows, err := r.source.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}

	for _, prop := range r.decoder.DecodeProperties(rows) {
		if strings.TrimSpace(prop.ID) == id {
			return &prop, nil
		}
	}

	r.logger.WithField("id", id).Info("Property not found in sheet snapshot")
	return nil, ErrNotFound
}
