package helper

import (
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/gosimple/slug"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// NewHTTPHelper builds the helper with an English-translated validator. The
// extra "slug" tag accepts lowercase letters, digits, underscores and hyphens,
// not starting or ending with a separator.
func NewHTTPHelper(mediaURL string) (*HTTPHelper, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	if err := validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.IsSlug(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	err := validate.RegisterTranslation("slug", trans,
		func(t ut.Translator) error {
			return t.Add("slug", `Enter a valid "slug" consisting of lowercase letters, numbers, underscores or hyphens.`, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("slug")
			return msg
		},
	)
	if err != nil {
		return nil, err
	}

	return &HTTPHelper{
		Validate:   validate,
		Translator: trans,
		MediaURL:   mediaURL,
	}, nil
}

// Underscore converts a Go field name to the snake_case key used in payloads.
func Underscore(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
