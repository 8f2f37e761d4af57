package listing

import (
	"context"
	"os"
	"sort"
	"strings"
	"sync"

	"nicaris/backoffice/internal/models"
	"nicaris/backoffice/internal/sheet"

	"github.com/sirupsen/logrus"
)

// Sort keys accepted by the listing view.
const (
	SortDateDesc  = "date-desc"
	SortDateAsc   = "date-asc"
	SortPriceDesc = "price-desc"
	SortPriceAsc  = "price-asc"
	SortAreaDesc  = "area-desc"
	SortAreaAsc   = "area-asc"
)

// FilterAll is the sentinel meaning "no filter" for type and status.
const FilterAll = "all"

// View is the per-request view state applied to the shared snapshot. Each
// request builds its own; nothing carries over between requests, so a
// client that changes a filter and sends no page lands on page 1.
type View struct {
	Search string
	Type   string
	Status string
	Sort   string
	Page   int
}

// NewView returns the default view: no filters, newest first, page 1.
func NewView() View {
	return View{
		Type:   FilterAll,
		Status: FilterAll,
		Sort:   SortDateDesc,
		Page:   1,
	}
}

// normalize fills zero values with the defaults and clamps the page.
func (v View) normalize() View {
	if v.Type == "" {
		v.Type = FilterAll
	}
	if v.Status == "" {
		v.Status = FilterAll
	}
	if v.Sort == "" {
		v.Sort = SortDateDesc
	}
	if v.Page < 1 {
		v.Page = 1
	}
	return v
}

// Page is one rendered slice of the filtered and sorted snapshot.
type Page struct {
	Items      []models.Property `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Stale      bool              `json:"stale"`
}

// Pipeline owns one fetched snapshot of the listing sheet. A refresh fully
// replaces the snapshot; applying a view is pure and touches no network.
// The snapshot is the only shared state, view state travels with each
// request.
type Pipeline struct {
	source  sheet.Source
	decoder *sheet.Decoder
	logger  *logrus.Logger

	mu         sync.Mutex
	properties []models.Property
	stale      bool

	// seq orders concurrent refreshes so the last issued request wins
	// even when responses arrive out of order.
	seq     uint64
	applied uint64

	pageSize int
}

func NewPipeline(source sheet.Source, decoder *sheet.Decoder, pageSize int, logger *logrus.Logger) *Pipeline {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if pageSize <= 0 {
		pageSize = 6
	}
	return &Pipeline{
		source:   source,
		decoder:  decoder,
		logger:   logger,
		pageSize: pageSize,
	}
}

// Refresh fetches and decodes the full sheet, replacing the snapshot. On
// failure the previous snapshot is kept and marked stale; the caller
// surfaces a non-fatal notice. A response that was overtaken by a later
// request is dropped.
func (p *Pipeline) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.seq++
	mySeq := p.seq
	src := p.source
	p.mu.Unlock()

	rows, err := src.FetchRows(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if mySeq <= p.applied {
		p.logger.WithField("seq", mySeq).Debug("Dropping stale sheet response")
		return nil
	}
	p.applied = mySeq

	if err != nil {
		p.stale = true
		p.logger.WithError(err).Error("Failed to refresh listing snapshot")
		return err
	}

	p.properties = p.decoder.DecodeProperties(rows)
	p.stale = false
	p.logger.WithFields(logrus.Fields{
		"properties": len(p.properties),
		"skipped":    p.decoder.Skipped(),
	}).Info("Refreshed listing snapshot")
	return nil
}

// Apply runs the pure filter → sort → paginate chain over the current
// snapshot. It is deterministic for a fixed snapshot and view, and never
// mutates the pipeline: concurrent requests with different views cannot
// observe each other.
func (p *Pipeline) Apply(v View) Page {
	p.mu.Lock()
	snapshot := make([]models.Property, len(p.properties))
	copy(snapshot, p.properties)
	stale := p.stale
	p.mu.Unlock()

	v = v.normalize()

	filtered := filterProperties(snapshot, v.Search, v.Type, v.Status)
	sortProperties(filtered, v.Sort)

	total := len(filtered)
	totalPages := (total + p.pageSize - 1) / p.pageSize

	start := (v.Page - 1) * p.pageSize
	if start > total {
		start = total
	}
	end := start + p.pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      filtered[start:end],
		Total:      total,
		Page:       v.Page,
		TotalPages: totalPages,
		Stale:      stale,
	}
}

// Snapshot returns a copy of the decoded records, unfiltered.
func (p *Pipeline) Snapshot() []models.Property {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Property, len(p.properties))
	copy(out, p.properties)
	return out
}

func filterProperties(props []models.Property, term, typeFilter, statusFilter string) []models.Property {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]models.Property, 0, len(props))
	for _, prop := range props {
		if term != "" && !matchesTerm(prop, term) {
			continue
		}
		if typeFilter != FilterAll && prop.PropertyType != typeFilter {
			continue
		}
		if statusFilter != FilterAll && prop.Status != statusFilter {
			continue
		}
		out = append(out, prop)
	}
	return out
}

func matchesTerm(p models.Property, term string) bool {
	location := p.Address + ", " + p.City + ", " + p.State
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(location), term)
}

func sortProperties(props []models.Property, key string) {
	less := func(i, j int) bool { return props[i].CreatedAt.After(props[j].CreatedAt) }

	switch key {
	case SortDateAsc:
		less = func(i, j int) bool { return props[i].CreatedAt.Before(props[j].CreatedAt) }
	case SortPriceDesc:
		less = func(i, j int) bool { return priceOrZero(props[i]) > priceOrZero(props[j]) }
	case SortPriceAsc:
		less = func(i, j int) bool { return priceOrZero(props[i]) < priceOrZero(props[j]) }
	case SortAreaDesc:
		less = func(i, j int) bool { return areaOrZero(props[i]) > areaOrZero(props[j]) }
	case SortAreaAsc:
		less = func(i, j int) bool { return areaOrZero(props[i]) < areaOrZero(props[j]) }
	}

	sort.SliceStable(props, less)
}

// priceOrZero and areaOrZero treat absent values as 0 for ordering
// purposes only; absence is still surfaced as such when rendering.
func priceOrZero(p models.Property) float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

func areaOrZero(p models.Property) int {
	if p.Area == nil {
		return 0
	}
	return *p.Area
}
