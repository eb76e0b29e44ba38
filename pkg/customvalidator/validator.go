// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phone10Regex = regexp.MustCompile(`^[0-9]{10}$`)
)

// Шаблоны сообщений по тегу; %s - человекочитаемое имя поля.
var tagMessages = map[string]string{
	"required": "%s is required",
	"notblank": "%s is required",
	"email":    "%s must be valid",
	"phone10":  "%s must be 10 digits",
}

// RegisterCustomValidations регистрирует наши правила и имена полей из json-тегов.
func RegisterCustomValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("notblank", isNotBlank); err != nil {
		return err
	}
	if err := v.RegisterValidation("phone10", isTenDigitPhone); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isTenDigitPhone(fl validator.FieldLevel) bool {
	return phone10Regex.MatchString(fl.Field().String())
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// Describe превращает ошибки валидатора в строки вида "emailAddress: Email address must be valid".
// prefix дописывается перед именем поля (например "holidays[0].").
func Describe(err error, prefix string) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{prefix + err.Error()}
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		template, ok := tagMessages[fe.Tag()]
		if !ok {
			template = "%s is invalid"
		}
		msgs = append(msgs, fmt.Sprintf("%s%s: %s", prefix, fe.Field(), fmt.Sprintf(template, humanize(fe.Field()))))
	}
	return msgs
}

// humanize: "emailAddress" -> "Email address".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
