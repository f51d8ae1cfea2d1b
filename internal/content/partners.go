package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

// Partner is a logo-marquee entry. Domain feeds the logo resolver; Name is
// the text shown when no logo can be displayed.
type Partner struct {
	Name   string `yaml:"name" json:"name" validate:"required"`
	Domain string `yaml:"domain" json:"domain" validate:"required,fqdn"`
}

type partnerFile struct {
	Strategic []Partner `yaml:"strategic" validate:"required,min=1,dive"`
	Media     []Partner `yaml:"media" validate:"required,min=1,dive"`
}

var partnerValidator = validator.New()

func readPartners(fsys afero.Fs) (strategic, media []Partner, err error) {
	data, err := afero.ReadFile(fsys, partnersFile)
	if err != nil {
		return nil, nil, fmt.Errorf("content: load partners: %w", err)
	}
	var pf partnerFile
	if err := decodeStrict(data, &pf); err != nil {
		return nil, nil, fmt.Errorf("content: decode %s: %w", partnersFile, err)
	}
	if err := partnerValidator.Struct(pf); err != nil {
		return nil, nil, fmt.Errorf("content: %w: %v", ErrInvalidPartner, err)
	}
	return pf.Strategic, pf.Media, nil
}

// SplitRows divides partners into two marquee rows. The first row gets the
// extra entry when the count is odd.
func SplitRows(partners []Partner) (top, bottom []Partner) {
	mid := (len(partners) + 1) / 2
	return partners[:mid], partners[mid:]
}

// Loop returns partners followed by a second copy, the sequence a seamless
// marquee scrolls through.
func Loop(partners []Partner) []Partner {
	out := make([]Partner, 0, 2*len(partners))
	out = append(out, partners...)
	return append(out, partners...)
}
