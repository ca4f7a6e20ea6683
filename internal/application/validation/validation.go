// Package validation convierte los mapas de campos enviados por la UI en registros tipados
// y saneados, o en errores por campo. Todos los campos se validan siempre: un fallo no
// interrumpe la revisión de los demás.
package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
)

// Errors errores por campo (clave = nombre del campo en el formulario).
type Errors map[string][]string

// Add agrega un mensaje al campo.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// State construye el FormState uniforme que devuelven las mutaciones.
func (e Errors) State(message string) *dto.FormState {
	return &dto.FormState{Errors: e, Message: message}
}

// field describe un campo de un esquema.
type field struct {
	name    string
	numeric bool              // acepta números JSON y los convierte a texto
	message string            // ausente o con tipo incorrecto
	rules   map[string]string // tag de validator -> mensaje
}

type schema []field

// Option configura el Validator.
type Option func(*Validator)

// WithPasswordMatch activa la comprobación confirmPassword == password en el registro.
func WithPasswordMatch(enabled bool) Option {
	return func(v *Validator) { v.requirePasswordMatch = enabled }
}

// Validator pipeline de validación por entidad.
type Validator struct {
	v                    *validator.Validate
	requirePasswordMatch bool
}

// New construye el pipeline.
func New(opts ...Option) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	out := &Validator{v: v}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

// intake normaliza los valores crudos a texto. Los campos ausentes o de tipo no admitido
// quedan registrados en errs y no se revisan de nuevo con las reglas del esquema.
func intake(raw map[string]any, s schema, errs Errors) map[string]string {
	out := make(map[string]string, len(s))
	for _, f := range s {
		val, ok := raw[f.name]
		if !ok || val == nil {
			errs.Add(f.name, f.message)
			continue
		}
		str, ok := coerce(val, f.numeric)
		if !ok {
			errs.Add(f.name, f.message)
			continue
		}
		out[f.name] = strings.TrimSpace(str)
	}
	return out
}

func coerce(val any, numeric bool) (string, bool) {
	switch x := val.(type) {
	case string:
		return x, true
	case []string:
		if len(x) == 0 {
			return "", false
		}
		return x[0], true
	}
	if !numeric {
		return "", false
	}
	switch x := val.(type) {
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	}
	return "", false
}

// check ejecuta las reglas del validator sobre target y añade los mensajes del esquema.
func (v *Validator) check(target any, s schema, errs Errors) {
	err := v.v.Struct(target)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// target no es un struct: nada se valida, todos los campos quedan inválidos.
		for _, f := range s {
			if _, done := errs[f.name]; !done {
				errs.Add(f.name, f.message)
			}
		}
		return
	}
	byName := make(map[string]field, len(s))
	for _, f := range s {
		byName[f.name] = f
	}
	for _, fe := range verrs {
		name := fe.Field()
		if _, done := errs[name]; done {
			continue
		}
		f := byName[name]
		msg, ok := f.rules[fe.Tag()]
		if !ok {
			msg = f.message
		}
		errs.Add(name, msg)
	}
}
