package config

import (
	"encoding/json"
	"fmt"
	"nicaris/backoffice/internal/models"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	faqEntries []models.FAQ
	faqLock    sync.RWMutex
	faqPath    = "config/faq.json"
)

// Built-in help entries, used when no config/faq.json override exists.
var defaultFAQs = []models.FAQ{
	{
		ID:       "1",
		Question: "¿Cómo subir una nueva propiedad al sistema?",
		Answer:   "Dirígete a la sección \"Propiedades\" y haz clic en \"Nueva propiedad\". Completa el formulario, agrega imágenes y envía. La propiedad será revisada por un administrador antes de publicarse.",
		Category: "properties",
	},
	{
		ID:       "2",
		Question: "¿Cómo se asignan los roles de usuario?",
		Answer:   "Los roles (Administrador, Gerente, Captador) son asignados por los administradores del sistema. Cada rol tiene diferentes niveles de acceso dentro de la plataforma.",
		Category: "users",
	},
	{
		ID:       "3",
		Question: "¿Puedo editar una propiedad después de enviarla?",
		Answer:   "Sí, pero con limitaciones. Si la propiedad aún está en revisión puedes hacer todos los cambios que desees; si ya está aprobada, algunos cambios requieren una nueva revisión.",
		Category: "properties",
	},
	{
		ID:       "4",
		Question: "¿Quién puede acceder a los documentos confidenciales?",
		Answer:   "Los documentos están protegidos con niveles de acceso (Administradores, Gerentes o Todos). Si necesitas acceso a un documento específico, contacta a tu superior.",
		Category: "documents",
	},
	{
		ID:       "5",
		Question: "¿Qué formatos de imagen son aceptados para las propiedades?",
		Answer:   "El sistema acepta imágenes JPG, PNG y WEBP de hasta 5MB. Recomendamos una resolución mínima de 1200x800 píxeles.",
		Category: "properties",
	},
}

// LoadFAQConfig loads the FAQ set, preferring config/faq.json when present.
func LoadFAQConfig() error {
	faqLock.Lock()
	defer faqLock.Unlock()

	absPath, err := filepath.Abs(faqPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			faqEntries = defaultFAQs
			return nil
		}
		return fmt.Errorf("failed to read FAQ file: %v", err)
	}

	var entries []models.FAQ
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse FAQ file: %v", err)
	}

	faqEntries = entries
	return nil
}

// GetFAQs returns all loaded help entries.
func GetFAQs() []models.FAQ {
	faqLock.RLock()
	defer faqLock.RUnlock()

	out := make([]models.FAQ, len(faqEntries))
	copy(out, faqEntries)
	return out
}

// SearchFAQs filters entries by category and a case-insensitive term matched
// against question and answer. Empty arguments match everything; category
// "all" is a sentinel for no category filter.
func SearchFAQs(term, category string) []models.FAQ {
	faqLock.RLock()
	defer faqLock.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	var out []models.FAQ
	for _, f := range faqEntries {
		if category != "" && category != "all" && f.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(f.Question), term) &&
			!strings.Contains(strings.ToLower(f.Answer), term) {
			continue
		}
		out = append(out, f)
	}
	return out
}
