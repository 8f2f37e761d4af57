package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"nicaris/backoffice/internal/models"

	"github.com/sirupsen/logrus"
)

// MediaConfig expands bare storage identifiers found in media cells into
// fully qualified URLs. The key is an external credential supplied through
// configuration; the decoder never embeds one.
type MediaConfig struct {
	URLTemplate string
	APIKey      string
}

// ExpandID resolves one media cell entry. Entries that are already full
// URLs pass through untouched.
func (m MediaConfig) ExpandID(id string) string {
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return id
	}
	return fmt.Sprintf(m.URLTemplate, id, m.APIKey)
}

// Decoder turns raw sheet rows into typed records. Every field has a
// defined fallback; a malformed cell degrades that one field, never the
// row, and a malformed row never aborts the rest of the snapshot.
type Decoder struct {
	cols   ColumnMap
	media  MediaConfig
	logger *logrus.Logger

	skipped int
}

func NewDecoder(cols ColumnMap, media MediaConfig, logger *logrus.Logger) *Decoder {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Decoder{cols: cols, media: media, logger: logger}
}

// Skipped reports how many rows the last DecodeProperties call dropped.
func (d *Decoder) Skipped() int {
	return d.skipped
}

// DecodeProperties decodes every row, skipping rows without an id.
func (d *Decoder) DecodeProperties(rows [][]string) []models.Property {
	d.skipped = 0
	out := make([]models.Property, 0, len(rows))
	for i, row := range rows {
		p := d.DecodeProperty(row)
		if p.ID == "" {
			d.skipped++
			d.logger.WithField("row", i).Debug("Skipping row without id")
			continue
		}
		out = append(out, p)
	}
	if d.skipped > 0 {
		d.logger.WithField("skipped", d.skipped).Warn("Dropped rows during sheet decode")
	}
	return out
}

// DecodeProperty decodes a single row. Short rows are tolerated: missing
// cells decode as absent fields.
func (d *Decoder) DecodeProperty(cells []string) models.Property {
	cell := func(name string) string { return strings.TrimSpace(d.cols.Cell(cells, name)) }
	flag := func(name string) bool { return cell(name) == d.cols.Yes }

	p := models.Property{
		ID:           cell("id"),
		Title:        cell("title"),
		Description:  cell("description"),
		Address:      cell("address"),
		City:         cell("city"),
		State:        cell("state"),
		Price:        parseMoney(cell("price")),
		PropertyType: cell("propertyType"),
		Status:       cell("status"),
		Bedrooms:     parseCount(cell("bedrooms")),
		Bathrooms:    parseCount(cell("bathrooms")),
		Area:         parseCount(cell("area")),
		Features:     splitTags(cell("features")),
		Captador:     cell("captador"),
		OwnerPhone:   cell("numberproperty"),
		CreatedAt:    parseDate(cell("fecha")),

		Manzanas:        parseDecimal(cell("manzanas")),
		PricePerManzana: parseMoney(cell("pricePerManzana")),
		TerrainType:     cell("terrainType"),
		Topography:      cell("topography"),
		SoilType:        cell("soilType"),
		LandUse:         cell("landUse"),
		MainCrops:       cell("mainCrops"),
		CitrusTrees:     cell("citrusTrees"),
		FruitTrees:      cell("fruitTrees"),
		IrrigationSystem: cell("irrigationSystem"),
		PastureType:      cell("pastureType"),
		WaterForAnimals:  cell("waterForAnimals"),
		HasCattleInfra:   flag("hasCattleInfrastructure"),

		HasWell:            flag("hasWell"),
		HasFences:          flag("hasFences"),
		HasWater:           flag("hasWater"),
		HasElectricity:     flag("hasElectricity"),
		InternetAvailable:  flag("internetAvailable"),
		HasSepticTank:      flag("hasSepticTank"),
		GatedCommunity:     flag("gatedCommunity"),
		IsInSafeZone:       flag("isInSafeZone"),
		TouristArea:        flag("touristArea"),
		HasDeed:            flag("hasDeed"),
		HasSurvey:          flag("hasSurvey"),
		FinancingAvailable: flag("isBankFinancingAvailable"),
	}

	for _, id := range splitMedia(cell("images")) {
		p.Images = append(p.Images, d.media.ExpandID(id))
	}
	for _, id := range splitMedia(cell("videoUrls")) {
		p.VideoURLs = append(p.VideoURLs, d.media.ExpandID(id))
	}
	if plan := cell("floorPlan"); plan != "" {
		p.FloorPlanURL = d.media.ExpandID(plan)
	}

	return p
}

// DecodeCaptadores decodes the leaderboard sheet.
func (d *Decoder) DecodeCaptadores(rows [][]string) []models.Captador {
	d.skipped = 0
	out := make([]models.Captador, 0, len(rows))
	for _, row := range rows {
		cell := func(name string) string { return strings.TrimSpace(d.cols.Cell(row, name)) }
		c := models.Captador{
			ID:         cell("id"),
			Name:       cell("nombre"),
			LastUpload: parseDate(cell("ultimaFecha")),
			Email:      cell("email"),
			Phone:      cell("telefono"),
			Notes:      cell("notas"),
			AvatarURL:  cell("imagenUrl"),
		}
		if c.ID == "" || c.Name == "" {
			d.skipped++
			continue
		}
		if n := parseCount(cell("propiedades")); n != nil {
			c.Properties = *n
		}
		if n := parseCount(cell("racha")); n != nil {
			c.Streak = *n
		}
		out = append(out, c)
	}
	return out
}

// parseMoney strips currency symbols and thousands separators before
// parsing. Failure yields nil, never NaN and never zero.
func parseMoney(s string) *float64 {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

// parseCount parses a non-negative integer cell; absent or malformed is nil.
func parseCount(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func parseDecimal(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return nil
	}
	return &v
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// parseDate tries the layouts the sheet has been observed to carry.
// An unparseable cell decodes as the zero time.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// splitTags splits a comma-delimited cell, trimming entries and dropping
// empties.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// splitMedia splits a media cell on newlines or runs of whitespace.
func splitMedia(s string) []string {
	return strings.Fields(s)
}
