package content

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language selects a content bundle. The zero value is Chinese, the default
// language of the site. Values outside the declared constants are never
// produced by this package.
type Language uint8

const (
	Chinese Language = iota
	English

	languageCount
)

// DefaultLanguage is the language rendered on a fresh page load.
const DefaultLanguage = Chinese

var (
	languageCodes = [languageCount]string{
		Chinese: "cn",
		English: "en",
	}
	languageTags = [languageCount]language.Tag{
		Chinese: language.MustParse("zh-CN"),
		English: language.English,
	}
	languageMatcher = language.NewMatcher(languageTags[:])
)

// Languages returns every supported language in display order.
func Languages() []Language {
	return []Language{Chinese, English}
}

// String returns the short code used in URLs and form values ("cn", "en").
func (l Language) String() string {
	return languageCodes[l]
}

// Tag returns the BCP 47 tag used for the html lang attribute and for
// locale-aware number formatting.
func (l Language) Tag() language.Tag {
	return languageTags[l]
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Chinese {
		return English
	}
	return Chinese
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLanguage converts external input into a Language. It accepts the short
// codes and any BCP 47 tag that matches a supported language with at least
// low confidence ("zh-Hans", "en-US").
func ParseLanguage(s string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	for i, c := range languageCodes {
		if code == c {
			return Language(i), nil
		}
	}

	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	_, idx, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return DefaultLanguage, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return Language(idx), nil
}
