package config

import "nicaris/backoffice/internal/models"

var allRoles = []string{models.RoleAdmin, models.RoleManager, models.RoleCaptador, models.RoleVendedor}

// SidebarLinks is the full navigation set; entries are filtered per role.
var SidebarLinks = []models.NavLink{
	{Label: "Dashboard", Path: "/dashboard", AllowedRoles: allRoles},
	{Label: "Propiedades", Path: "/properties", AllowedRoles: allRoles},
	{Label: "Ranking", Path: "/ranking", AllowedRoles: allRoles},
	{Label: "Mensajes", Path: "/messages", AllowedRoles: allRoles},
	{Label: "Documentos", Path: "/documents", AllowedRoles: []string{models.RoleAdmin, models.RoleManager}},
	{Label: "FAQ", Path: "/faq", AllowedRoles: allRoles},
	{Label: "Configuración", Path: "/settings", AllowedRoles: []string{models.RoleAdmin, models.RoleManager}},
}

// NavForRole returns the sidebar entries visible to the given role.
func NavForRole(role string) []models.NavLink {
	var out []models.NavLink
	for _, link := range SidebarLinks {
		for _, allowed := range link.AllowedRoles {
			if allowed == role {
				out = append(out, link)
				break
			}
		}
	}
	return out
}
