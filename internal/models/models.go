package models

import "time"

// Property is one decoded listing row from the remote sheet.
// Optional numeric fields are pointers: a nil value means the source cell
// was empty or unparseable, which is distinct from a legitimate zero.
type Property struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Price        *float64  `json:"price"`
	PropertyType string    `json:"propertyType"`
	Status       string    `json:"status"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms"`
	Area         *int      `json:"area"`
	Features     []string  `json:"features"`
	Images       []string  `json:"images"`
	VideoURLs    []string  `json:"videoUrls"`
	FloorPlanURL string    `json:"floorPlanUrl"`
	Captador     string    `json:"captador"`
	OwnerPhone   string    `json:"numberproperty"`
	CreatedAt    time.Time `json:"createdAt"`

	// Farm-specific fields, populated only for "Finca" listings.
	Manzanas          *float64 `json:"manzanas"`
	PricePerManzana   *float64 `json:"pricePerManzana"`
	TerrainType       string   `json:"terrainType"`
	Topography        string   `json:"topography"`
	SoilType          string   `json:"soilType"`
	LandUse           string   `json:"landUse"`
	MainCrops         string   `json:"mainCrops"`
	CitrusTrees       string   `json:"citrusTrees"`
	FruitTrees        string   `json:"fruitTrees"`
	IrrigationSystem  string   `json:"irrigationSystem"`
	PastureType       string   `json:"pastureType"`
	WaterForAnimals   string   `json:"waterForAnimals"`
	HasCattleInfra    bool     `json:"hasCattleInfrastructure"`

	// Amenity and legal flags. Decoded from the sheet's "Sí" token;
	// anything else is false.
	HasWell            bool `json:"hasWell"`
	HasFences          bool `json:"hasFences"`
	HasWater           bool `json:"hasWater"`
	HasElectricity     bool `json:"hasElectricity"`
	InternetAvailable  bool `json:"internetAvailable"`
	HasSepticTank      bool `json:"hasSepticTank"`
	GatedCommunity     bool `json:"gatedCommunity"`
	IsInSafeZone       bool `json:"isInSafeZone"`
	TouristArea        bool `json:"touristArea"`
	HasDeed            bool `json:"hasDeed"`
	HasSurvey          bool `json:"hasSurvey"`
	FinancingAvailable bool `json:"isBankFinancingAvailable"`
}

// IsFarm reports whether the listing carries the farm-specific field set.
func (p *Property) IsFarm() bool {
	return p.PropertyType == "Finca"
}

// Captador is one row of the agent leaderboard sheet.
type Captador struct {
	ID         string    `json:"id"`
	Name       string    `json:"nombre"`
	Properties int       `json:"propiedades"`
	Streak     int       `json:"racha"`
	LastUpload time.Time `json:"ultimaFecha"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"telefono,omitempty"`
	Notes      string    `json:"notas,omitempty"`
	AvatarURL  string    `json:"imagenUrl,omitempty"`
}

// Session identifies the signed-in user for the duration of a browser session.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Known roles. The source also carries a legacy "Vendedor" role kept only
// for navigation gating.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleCaptador = "captador"
	RoleVendedor = "Vendedor"
)

// Document is a back-office file entry shown on the documents page.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	SizeMB      float64   `json:"size"`
	UploadedBy  string    `json:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedDate"`
	AccessLevel string    `json:"accessLevel"`
}

// Contact is a row of the internal messages contact list.
type Contact struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	AvatarURL       string    `json:"avatar"`
	LastMessage     string    `json:"lastMessage"`
	Unread          int       `json:"unread"`
	LastMessageTime time.Time `json:"lastMessageTime"`
}

// Message is one entry of a chat thread.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// FAQ is one question/answer pair of the help page.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// NavLink is a sidebar entry; only roles listed in AllowedRoles may see it.
type NavLink struct {
	Label        string   `json:"label"`
	Path         string   `json:"path"`
	AllowedRoles []string `json:"allowedRoles"`
}

// DashboardStats summarizes the decoded listing snapshot for the panel cards.
type DashboardStats struct {
	TotalProperties int            `json:"total_properties"`
	ByType          map[string]int `json:"by_type"`
	ByStatus        map[string]int `json:"by_status"`
	AveragePrice    float64        `json:"average_price"`
	Recent          []Property     `json:"recent"`
}
