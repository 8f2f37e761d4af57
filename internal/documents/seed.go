package documents

import (
	"time"

	"nicaris/backoffice/internal/models"
)

// DefaultDocuments is the back-office document set loaded at startup when
// the store is empty of custom entries.
func DefaultDocuments() []models.Document {
	day := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}

	return []models.Document{
		{ID: "doc-001", Name: "Contrato de compraventa (plantilla)", Type: "pdf", Category: "Contratos", SizeMB: 0.8, UploadedBy: "Administración", UploadedAt: day("2023-01-12"), AccessLevel: AccessAll},
		{ID: "doc-002", Name: "Contrato de captación en exclusiva", Type: "pdf", Category: "Contratos", SizeMB: 0.6, UploadedBy: "Administración", UploadedAt: day("2023-02-03"), AccessLevel: AccessAll},
		{ID: "doc-003", Name: "Guía de captación de propiedades", Type: "pdf", Category: "Guías", SizeMB: 2.4, UploadedBy: "Gerencia", UploadedAt: day("2023-03-18"), AccessLevel: AccessAll},
		{ID: "doc-004", Name: "Lista de verificación legal de fincas", Type: "xlsx", Category: "Guías", SizeMB: 0.3, UploadedBy: "Gerencia", UploadedAt: day("2023-04-02"), AccessLevel: AccessAll},
		{ID: "doc-005", Name: "Comisiones por captador", Type: "xlsx", Category: "Finanzas", SizeMB: 0.2, UploadedBy: "Gerencia", UploadedAt: day("2023-04-20"), AccessLevel: AccessManager},
		{ID: "doc-006", Name: "Reporte trimestral de ventas", Type: "pdf", Category: "Finanzas", SizeMB: 1.9, UploadedBy: "Gerencia", UploadedAt: day("2023-05-01"), AccessLevel: AccessManager},
		{ID: "doc-007", Name: "Credenciales de servicios externos", Type: "pdf", Category: "Administración", SizeMB: 0.1, UploadedBy: "Administración", UploadedAt: day("2023-05-15"), AccessLevel: AccessAdmin},
		{ID: "doc-008", Name: "Acta de constitución de la empresa", Type: "pdf", Category: "Administración", SizeMB: 3.2, UploadedBy: "Administración", UploadedAt: day("2023-05-28"), AccessLevel: AccessAdmin},
	}
}
