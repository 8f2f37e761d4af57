package messages

import (
	"time"

	"nicaris/backoffice/internal/models"
)

// SeedStore builds the store preloaded with the back-office contact list
// and a short history per thread.
func SeedStore() *Store {
	at := func(value string) time.Time {
		t, _ := time.Parse(time.RFC3339, value)
		return t
	}

	contacts := []models.Contact{
		{ID: "marlon", Name: "Marlon Castillo", Role: "Captador", LastMessage: "Ya subí la finca de Tipitapa", Unread: 2, LastMessageTime: at("2023-05-19T16:45:00Z")},
		{ID: "gabriel", Name: "Gabriel Cajina", Role: "Captador", LastMessage: "¿Me confirmas el precio del lote?", Unread: 0, LastMessageTime: at("2023-05-19T14:10:00Z")},
		{ID: "kener", Name: "Kener Hernandez", Role: "Captador", LastMessage: "Mañana paso por la oficina", Unread: 1, LastMessageTime: at("2023-05-18T19:02:00Z")},
		{ID: "gerencia", Name: "Gerencia", Role: "Manager", LastMessage: "Reunión el lunes a las 9", Unread: 0, LastMessageTime: at("2023-05-17T08:30:00Z")},
	}

	threads := map[string][]models.Message{
		"marlon": {
			{ID: "m-001", SenderID: "marlon", SenderName: "Marlon Castillo", Content: "Conseguí fotos nuevas de la finca", Timestamp: at("2023-05-19T16:40:00Z")},
			{ID: "m-002", SenderID: "marlon", SenderName: "Marlon Castillo", Content: "Ya subí la finca de Tipitapa", Timestamp: at("2023-05-19T16:45:00Z")},
		},
		"gabriel": {
			{ID: "m-003", SenderID: "gabriel", SenderName: "Gabriel Cajina", Content: "¿Me confirmas el precio del lote?", Timestamp: at("2023-05-19T14:10:00Z")},
		},
		"kener": {
			{ID: "m-004", SenderID: "kener", SenderName: "Kener Hernandez", Content: "Mañana paso por la oficina", Timestamp: at("2023-05-18T19:02:00Z")},
		},
		"gerencia": {
			{ID: "m-005", SenderID: "gerencia", SenderName: "Gerencia", Content: "Reunión el lunes a las 9", Timestamp: at("2023-05-17T08:30:00Z")},
		},
	}

	return NewStore(contacts, threads)
}
