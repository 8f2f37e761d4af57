package sheet

import (
	"encoding/json"
	"strings"
)

// ColumnMap is the declarative name → index layout of a sheet. Every page
// that reads the sheet decodes through one of these instead of repeating
// positional offsets. The affirmative token for boolean cells rides along
// because it is part of the sheet's dialect, not of any single field.
type ColumnMap struct {
	Yes    string
	Fields map[string]int
}

// PropertyColumns is the canonical listing sheet layout. Earlier sheet
// iterations shifted some boolean offsets; those are treated as migration
// debt and are not merged here.
var PropertyColumns = ColumnMap{
	Yes: "Sí",
	Fields: map[string]int{
		"id":                       0,
		"title":                    1,
		"description":              2,
		"address":                  3,
		"city":                     4,
		"state":                    5,
		"price":                    6,
		"propertyType":             7,
		"status":                   8,
		"bedrooms":                 9,
		"bathrooms":                10,
		"area":                     11,
		"features":                 12,
		"manzanas":                 13,
		"hasWell":                  14,
		"hasFences":                15,
		"captador":                 16,
		"images":                   17,
		"videoUrls":                18,
		"floorPlan":                19,
		"numberproperty":           20,
		"fecha":                    21,
		"hasWater":                 22,
		"hasElectricity":           23,
		"internetAvailable":        24,
		"hasSepticTank":            25,
		"gatedCommunity":           26,
		"isInSafeZone":             27,
		"touristArea":              28,
		"hasDeed":                  29,
		"hasSurvey":                30,
		"isBankFinancingAvailable": 31,
		"pricePerManzana":          32,
		"terrainType":              33,
		"topography":               34,
		"soilType":                 35,
		"landUse":                  36,
		"mainCrops":                37,
		"citrusTrees":              38,
		"fruitTrees":               39,
		"irrigationSystem":         40,
		"hasCattleInfrastructure":  41,
		"pastureType":              42,
		"waterForAnimals":          43,
	},
}

// CaptadorColumns is the agent leaderboard sheet layout.
var CaptadorColumns = ColumnMap{
	Yes: "Sí",
	Fields: map[string]int{
		"id":          0,
		"nombre":      1,
		"propiedades": 2,
		"racha":       3,
		"ultimaFecha": 4,
		"email":       5,
		"telefono":    6,
		"notas":       7,
		"imagenUrl":   8,
	},
}

// Cell returns the named cell of a row, or "" when the column is absent or
// the row is shorter than the mapped index. Short rows are data, not errors.
func (m ColumnMap) Cell(cells []string, name string) string {
	idx, ok := m.Fields[name]
	if !ok || idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

// Width is the number of cells a fully populated row carries.
func (m ColumnMap) Width() int {
	max := 0
	for _, idx := range m.Fields {
		if idx+1 > max {
			max = idx + 1
		}
	}
	return max
}

// Project flattens a pre-shaped object into the ordered cell layout, so
// object-mode payloads decode through the same path as tabular ones.
func (m ColumnMap) Project(obj map[string]json.RawMessage) []string {
	cells := make([]string, m.Width())
	for name, idx := range m.Fields {
		raw, ok := obj[name]
		if !ok {
			continue
		}
		cells[idx] = rawToString(name, raw)
	}
	return cells
}

func rawToString(name string, raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	// Lists arrive as JSON arrays in object mode; rejoin them with the
	// delimiter the tabular export uses for that column, so the cell
	// splitters apply uniformly in both modes.
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if name == "features" {
			return strings.Join(list, ",")
		}
		return strings.Join(list, "\n")
	}

	// Numbers and booleans keep their literal form.
	return strings.Trim(string(raw), `"`)
}
