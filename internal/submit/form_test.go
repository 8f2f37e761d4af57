package submit

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() *PropertyForm {
	return &PropertyForm{
		Title:          "Hermosa casa con jardín",
		Description:    "Casa amplia con jardín, garaje y excelente ubicación en zona céntrica",
		Address:        "Calle Principal 12",
		City:           "Managua",
		State:          "Managua",
		Price:          "150000",
		PropertyType:   "Casa",
		Status:         "Usado",
		Captador:       "Maikel Martinez",
		NumberProperty: "+505 8996 8455",
		Fecha:          "2023-05-19",
	}
}

func TestValidate_ValidForm(t *testing.T) {
	assert.Empty(t, validForm().Validate())
}

func TestValidate_ShortTitle(t *testing.T) {
	form := validForm()
	form.Title = "Casa"

	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "El título debe tener al menos 5 caracteres", errs[0].Message)
}

func TestValidate_ShortDescription(t *testing.T) {
	form := validForm()
	form.Description = "Muy corta"

	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)
	assert.Equal(t, "La descripción debe tener al menos 20 caracteres", errs[0].Message)
}

func TestValidate_OneMessagePerOffendingField(t *testing.T) {
	form := &PropertyForm{}

	errs := form.Validate()
	fields := map[string]bool{}
	for _, e := range errs {
		assert.False(t, fields[e.Field], "duplicate message for %s", e.Field)
		fields[e.Field] = true
		assert.NotEmpty(t, e.Message)
	}
	for _, required := range []string{"title", "description", "address", "city", "state", "price", "propertyType", "status", "captador", "numberproperty", "fecha"} {
		assert.True(t, fields[required], "missing error for %s", required)
	}
}

func TestBuildBody_RequiredFieldsAndBooleans(t *testing.T) {
	form := validForm()
	form.HasWater = true
	body := form.BuildBody(Attachments{})

	assert.Equal(t, "Hermosa casa con jardín", body.Get("title"))
	assert.Equal(t, "true", body.Get("hasWater"))
	assert.Equal(t, "false", body.Get("hasWell"))
	assert.Equal(t, "2023-05-19", body.Get("fecha"))
	// Empty upload slots serialize as the empty marker, not as JSON null.
	assert.Equal(t, "", body.Get("videoUrl"))
	assert.Equal(t, "", body.Get("floorPlan"))
	assert.Equal(t, "[]", body.Get("features"))
	assert.Equal(t, "[]", body.Get("images"))
}

func TestBuildBody_EncodesAttachments(t *testing.T) {
	form := validForm()
	files := Attachments{
		Images: []Attachment{
			{Name: "frente.jpg", MimeType: "image/jpeg", Data: []byte("fake-image-bytes")},
			{Name: "patio.png", MimeType: "image/png", Data: []byte{0x89, 0x50}},
		},
		Videos: []Attachment{{Name: "tour.mp4", MimeType: "video/mp4", Data: []byte("clip")}},
	}
	body := form.BuildBody(files)

	var images []string
	require.NoError(t, json.Unmarshal([]byte(body.Get("images")), &images))
	require.Len(t, images, 2)
	decoded, err := base64.StdEncoding.DecodeString(images[0])
	require.NoError(t, err)
	assert.Equal(t, "fake-image-bytes", string(decoded))

	var names []string
	require.NoError(t, json.Unmarshal([]byte(body.Get("fileNames")), &names))
	assert.Equal(t, []string{"frente.jpg", "patio.png"}, names)

	var mimes []string
	require.NoError(t, json.Unmarshal([]byte(body.Get("videoMimeTypes")), &mimes))
	assert.Equal(t, []string{"video/mp4"}, mimes)
}

func TestBuildBody_FeatureList(t *testing.T) {
	form := validForm()
	form.Features = []string{"Garaje", "Piscina"}
	body := form.BuildBody(Attachments{})

	var tags []string
	require.NoError(t, json.Unmarshal([]byte(body.Get("features")), &tags))
	assert.Equal(t, []string{"Garaje", "Piscina"}, tags)
}
