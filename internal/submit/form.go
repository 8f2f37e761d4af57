package submit

import (
	"encoding/base64"
	"encoding/json"
	"net/url"

	"github.com/go-playground/validator/v10"
)

// PropertyForm carries every field of the multi-tab creation form. Only the
// fields tagged required block submission; everything else defaults to an
// empty string, false, or an empty list.
type PropertyForm struct {
	Title        string `form:"title" json:"title" validate:"required,min=5"`
	Description  string `form:"description" json:"description" validate:"required,min=20"`
	Address      string `form:"address" json:"address" validate:"required"`
	City         string `form:"city" json:"city" validate:"required"`
	State        string `form:"state" json:"state" validate:"required"`
	Price        string `form:"price" json:"price" validate:"required"`
	PropertyType string `form:"propertyType" json:"propertyType" validate:"required"`
	Status       string `form:"status" json:"status" validate:"required"`

	Bedrooms      string `form:"bedrooms" json:"bedrooms"`
	Bathrooms     string `form:"bathrooms" json:"bathrooms"`
	Area          string `form:"area" json:"area"`
	Manzanas      string `form:"manzanas" json:"manzanas"`
	Floors        string `form:"floors" json:"floors"`
	AreaBuilt     string `form:"areaBuilt" json:"areaBuilt"`
	ParkingSpaces string `form:"parkingSpaces" json:"parkingSpaces"`
	Furniture     string `form:"furniture" json:"furniture"`

	TerrainType      string `form:"terrainType" json:"terrainType"`
	Topography       string `form:"topography" json:"topography"`
	SoilType         string `form:"soilType" json:"soilType"`
	LandUse          string `form:"landUse" json:"landUse"`
	MainCrops        string `form:"mainCrops" json:"mainCrops"`
	CitrusTrees      string `form:"citrusTrees" json:"citrusTrees"`
	FruitTrees       string `form:"fruitTrees" json:"fruitTrees"`
	IrrigationSystem string `form:"irrigationSystem" json:"irrigationSystem"`
	PastureType      string `form:"pastureType" json:"pastureType"`
	WaterForAnimals  string `form:"waterForAnimals" json:"waterForAnimals"`
	WaterSource      string `form:"waterSource" json:"waterSource"`
	Restrictions     string `form:"restrictions" json:"restrictions"`

	HasCaretakerHouse       bool `form:"hasCaretakerHouse" json:"hasCaretakerHouse"`
	HasStorageRoom          bool `form:"hasStorageRoom" json:"hasStorageRoom"`
	HasCattleInfrastructure bool `form:"hasCattleInfrastructure" json:"hasCattleInfrastructure"`
	HasWater                bool `form:"hasWater" json:"hasWater"`
	HasElectricity          bool `form:"hasElectricity" json:"hasElectricity"`
	HasWell                 bool `form:"hasWell" json:"hasWell"`
	InternetAvailable       bool `form:"internetAvailable" json:"internetAvailable"`
	HasFences               bool `form:"hasFences" json:"hasFences"`
	HasSepticTank           bool `form:"hasSepticTank" json:"hasSepticTank"`
	MountainView            bool `form:"mountainView" json:"mountainView"`
	OceanView               bool `form:"oceanView" json:"oceanView"`
	RiverAccess             bool `form:"riverAccess" json:"riverAccess"`
	LakeAccess              bool `form:"lakeAccess" json:"lakeAccess"`
	GatedCommunity          bool `form:"gatedCommunity" json:"gatedCommunity"`
	IsInSafeZone            bool `form:"isInSafeZone" json:"isInSafeZone"`
	TouristArea             bool `form:"touristArea" json:"touristArea"`
	HasDeed                 bool `form:"hasDeed" json:"hasDeed"`
	HasSurvey               bool `form:"hasSurvey" json:"hasSurvey"`
	PropertyTaxStatus       bool `form:"propertyTaxStatus" json:"propertyTaxStatus"`
	BankFinancingAvailable  bool `form:"isBankFinancingAvailable" json:"isBankFinancingAvailable"`

	Features []string `form:"features" json:"features"`

	Captador       string `form:"captador" json:"captador" validate:"required"`
	NumberProperty string `form:"numberproperty" json:"numberproperty" validate:"required"`
	Fecha          string `form:"fecha" json:"fecha" validate:"required"`
}

// FieldError is one user-visible validation failure; Field names the form
// field, Message is the inline text shown beside it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldMessages carries the Spanish inline texts per field. A field missing
// here falls back to a generic required message.
var fieldMessages = map[string]string{
	"title":        "El título debe tener al menos 5 caracteres",
	"description":  "La descripción debe tener al menos 20 caracteres",
	"address":      "Dirección es requerida",
	"city":         "Ciudad es requerida",
	"state":        "Provincia es requerida",
	"price":        "Precio es requerido",
	"propertyType": "Tipo de propiedad es requerido",
	"status":       "Estado es requerido",
	"captador":     "Captador es requerido",
	"fecha":        "La fecha es obligatoria",
}

// jsonFieldName maps validator struct-field names back to form field names.
var jsonFieldName = map[string]string{
	"Title":          "title",
	"Description":    "description",
	"Address":        "address",
	"City":           "city",
	"State":          "state",
	"Price":          "price",
	"PropertyType":   "propertyType",
	"Status":         "status",
	"Captador":       "captador",
	"NumberProperty": "numberproperty",
	"Fecha":          "fecha",
}

var validate = validator.New()

// Validate checks the required-field schema and returns one message per
// offending field. An empty result means the form may be submitted.
func (f *PropertyForm) Validate() []FieldError {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var out []FieldError
	for _, ve := range err.(validator.ValidationErrors) {
		field := jsonFieldName[ve.StructField()]
		if field == "" {
			field = ve.StructField()
		}
		msg := fieldMessages[field]
		if msg == "" {
			msg = "Campo requerido"
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}

// Attachment is one uploaded file before transport encoding.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Data     []byte `json:"-"`
}

// Attachments groups the three upload slots of the form.
type Attachments struct {
	Images     []Attachment
	Videos     []Attachment
	FloorPlans []Attachment
}

func encodeBase64(files []Attachment) (datas, names, mimes []string) {
	datas, names, mimes = []string{}, []string{}, []string{}
	for _, f := range files {
		datas = append(datas, base64.StdEncoding.EncodeToString(f.Data))
		names = append(names, f.Name)
		mimes = append(mimes, f.MimeType)
	}
	return
}

func mustJSON(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func boolField(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// BuildBody serializes the form and its encoded attachments into the
// url-encoded shape the receiving script expects. Every field is present,
// absent optionals as empty strings, booleans as "true"/"false".
func (f *PropertyForm) BuildBody(files Attachments) url.Values {
	body := url.Values{}
	body.Set("title", f.Title)
	body.Set("description", f.Description)
	body.Set("address", f.Address)
	body.Set("city", f.City)
	body.Set("state", f.State)
	body.Set("price", f.Price)
	body.Set("propertyType", f.PropertyType)
	body.Set("status", f.Status)
	body.Set("bedrooms", f.Bedrooms)
	body.Set("bathrooms", f.Bathrooms)
	body.Set("area", f.Area)
	body.Set("manzanas", f.Manzanas)
	body.Set("floors", f.Floors)
	body.Set("areaBuilt", f.AreaBuilt)
	body.Set("parkingSpaces", f.ParkingSpaces)
	body.Set("furniture", f.Furniture)
	body.Set("hasCaretakerHouse", boolField(f.HasCaretakerHouse))
	body.Set("hasStorageRoom", boolField(f.HasStorageRoom))
	body.Set("terrainType", f.TerrainType)
	body.Set("topography", f.Topography)
	body.Set("soilType", f.SoilType)
	body.Set("landUse", f.LandUse)
	body.Set("mainCrops", f.MainCrops)
	body.Set("citrusTrees", f.CitrusTrees)
	body.Set("fruitTrees", f.FruitTrees)
	body.Set("irrigationSystem", f.IrrigationSystem)
	body.Set("hasCattleInfrastructure", boolField(f.HasCattleInfrastructure))
	body.Set("pastureType", f.PastureType)
	body.Set("waterForAnimals", f.WaterForAnimals)
	body.Set("hasWater", boolField(f.HasWater))
	body.Set("hasElectricity", boolField(f.HasElectricity))
	body.Set("hasWell", boolField(f.HasWell))
	body.Set("waterSource", f.WaterSource)
	body.Set("internetAvailable", boolField(f.InternetAvailable))
	body.Set("hasFences", boolField(f.HasFences))
	body.Set("hasSepticTank", boolField(f.HasSepticTank))
	body.Set("mountainView", boolField(f.MountainView))
	body.Set("oceanView", boolField(f.OceanView))
	body.Set("riverAccess", boolField(f.RiverAccess))
	body.Set("lakeAccess", boolField(f.LakeAccess))
	body.Set("gatedCommunity", boolField(f.GatedCommunity))
	body.Set("isInSafeZone", boolField(f.IsInSafeZone))
	body.Set("touristArea", boolField(f.TouristArea))
	body.Set("hasDeed", boolField(f.HasDeed))
	body.Set("hasSurvey", boolField(f.HasSurvey))
	body.Set("propertyTaxStatus", boolField(f.PropertyTaxStatus))
	body.Set("isBankFinancingAvailable", boolField(f.BankFinancingAvailable))
	body.Set("restrictions", f.Restrictions)
	body.Set("numberproperty", f.NumberProperty)
	body.Set("captador", f.Captador)
	body.Set("fecha", f.Fecha)

	features := f.Features
	if features == nil {
		features = []string{}
	}
	body.Set("features", mustJSON(features))

	datas, names, mimes := encodeBase64(files.Images)
	body.Set("images", mustJSON(datas))
	body.Set("fileNames", mustJSON(names))
	body.Set("mimeTypes", mustJSON(mimes))

	if len(files.Videos) > 0 {
		datas, names, mimes = encodeBase64(files.Videos)
		body.Set("videoUrl", mustJSON(datas))
		body.Set("videoFileNames", mustJSON(names))
		body.Set("videoMimeTypes", mustJSON(mimes))
	} else {
		body.Set("videoUrl", "")
	}

	if len(files.FloorPlans) > 0 {
		datas, names, mimes = encodeBase64(files.FloorPlans)
		body.Set("floorPlan", mustJSON(datas))
		body.Set("floorPlanFileNames", mustJSON(names))
		body.Set("floorPlanMimeTypes", mustJSON(mimes))
	} else {
		body.Set("floorPlan", "")
	}

	return body
}
