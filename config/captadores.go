package config

// CaptadorOption is one selectable agent in the property form roster.
type CaptadorOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Captadores is the roster offered by the submission form. The sheet keys
// submissions by this exact name, so values must match the ranking sheet.
var Captadores = []CaptadorOption{
	{Value: "Marlon Castillo", Label: "Marlon Castillo"},
	{Value: "Gabriel Cajina", Label: "Gabriel Cajina"},
	{Value: "Kener Hernandez", Label: "Kener Hernandez"},
	{Value: "Maikel Martinez", Label: "Maikel Martinez"},
	{Value: "Samuel Issac", Label: "Samuel Issac"},
	{Value: "Michael", Label: "Michael"},
}

// GetCaptadorNames returns the roster values in declaration order.
func GetCaptadorNames() []string {
	names := make([]string, len(Captadores))
	for i, c := range Captadores {
		names[i] = c.Value
	}
	return names
}

// IsKnownCaptador reports whether name is part of the roster.
func IsKnownCaptador(name string) bool {
	for _, c := range Captadores {
		if c.Value == name {
			return true
		}
	}
	return false
}
