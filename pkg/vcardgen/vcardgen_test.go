package vcardgen

import (
	"testing"

	"cardlink.app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDetail() models.CardDetail {
	return models.CardDetail{
		CardName:     "Work Card",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Title:        "Engineer",
		Company:      "Analytical Engines Ltd",
		MobileNumber: "+1 555 000 1234",
		OfficeNumber: "+1 555 000 5678",
		WorkAddress:  "1 Infinite Loop",
	}
}

func TestGenerate(t *testing.T) {
	content, err := Generate(fullDetail())
	require.NoError(t, err)

	assert.Contains(t, content, "BEGIN:VCARD")
	assert.Contains(t, content, "END:VCARD")
	assert.Contains(t, content, "FN:Ada Lovelace")
	assert.Contains(t, content, "Lovelace;Ada")
	assert.Contains(t, content, "TITLE:Engineer")
	assert.Contains(t, content, "ORG:Analytical Engines Ltd")
	assert.Contains(t, content, "+1 555 000 1234")
	assert.Contains(t, content, "+1 555 000 5678")
	assert.Contains(t, content, "1 Infinite Loop")
}

func TestGenerate_SkipsEmptyFields(t *testing.T) {
	detail := models.CardDetail{FirstName: "Ada", LastName: "Lovelace"}
	content, err := Generate(detail)
	require.NoError(t, err)

	assert.Contains(t, content, "FN:Ada Lovelace")
	assert.NotContains(t, content, "TITLE")
	assert.NotContains(t, content, "ORG")
	assert.NotContains(t, content, "TEL")
	assert.NotContains(t, content, "ADR")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Ada_Lovelace.vcf", Filename(models.CardDetail{FirstName: "Ada", LastName: "Lovelace"}))
	assert.Equal(t, "Grace_Brewster_Hopper.vcf", Filename(models.CardDetail{FirstName: "Grace Brewster", LastName: "Hopper"}))
	assert.Equal(t, "contact.vcf", Filename(models.CardDetail{}))
}
