// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	fr_translations "github.com/go-playground/validator/v10/translations/fr"
)

// Validator is the validator instance shared by every handler.
var Validator *validator.Validate

// Trans translates validation messages into French, the language of the
// protocol content.
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"scale":             "l'échelle",
	"items":             "les réponses",
	"coucher":           "l'heure du coucher",
	"lever":             "l'heure du lever",
	"activity":          "l'activité",
	"duration_min":      "la durée",
	"situation":         "la situation",
	"emotion":           "l'émotion",
	"automatic_thought": "la pensée automatique",
	"option":            "l'option",
}

func init() {
	Validator = validator.New()

	// Report field names by their JSON tag, not the Go field name.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	french := fr.New()
	uni := ut.New(french, french)
	var found bool
	Trans, found = uni.GetTranslator("fr")
	if !found {
		log.Fatal("translator not found")
	}

	if err := fr_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			if translated, ok := fieldNameTranslations[fieldName]; ok {
				fieldName = translated
			}
			t, _ := ut.T(tag, fieldName)
			return t
		})
	}

	registerTranslation("required", "{0} est un champ obligatoire.")
	registerTranslation("oneof", "{0} doit être une des valeurs autorisées.")
}
