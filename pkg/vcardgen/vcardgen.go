// pkg/vcardgen/vcardgen.go
package vcardgen

import (
	"bytes"
	"strings"

	"cardlink.app/models"

	"github.com/emersion/go-vcard"
)

// Generate kart detayından indirilebilir bir vCard (vcf) metni üretir.
// Boş alanlar karta yazılmaz.
func Generate(detail models.CardDetail) (string, error) {
	card := make(vcard.Card)

	fullName := strings.TrimSpace(detail.FirstName + " " + detail.LastName)
	card.SetValue(vcard.FieldFormattedName, fullName)
	card.AddName(&vcard.Name{
		FamilyName: detail.LastName,
		GivenName:  detail.FirstName,
	})

	if detail.Title != "" {
		card.SetValue(vcard.FieldTitle, detail.Title)
	}
	if detail.Company != "" {
		card.SetValue(vcard.FieldOrganization, detail.Company)
	}
	if detail.MobileNumber != "" {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  detail.MobileNumber,
			Params: vcard.Params{vcard.ParamType: {vcard.TypeCell}},
		})
	}
	if detail.OfficeNumber != "" {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  detail.OfficeNumber,
			Params: vcard.Params{vcard.ParamType: {vcard.TypeWork}},
		})
	}
	if detail.WorkAddress != "" {
		card.AddAddress(&vcard.Address{
			StreetAddress: detail.WorkAddress,
		})
	}

	vcard.ToV4(card)

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Filename kart adından güvenli bir vcf dosya adı üretir.
func Filename(detail models.CardDetail) string {
	name := strings.TrimSpace(detail.FirstName + "_" + detail.LastName)
	if name == "_" || name == "" {
		name = "contact"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return name + ".vcf"
}
