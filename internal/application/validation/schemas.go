package validation

import (
	"strconv"

	"github.com/jhoicas/gestione-fascicoli/internal/application/dto"
)

// Fascicolo registro validado de fascicolo, listo para persistir.
type Fascicolo struct {
	CustomerID string
	Type       string
	Number     int
}

var fascicoloSchema = schema{
	{name: "customerId", message: "Selezionare un cliente per proseguire."},
	{name: "type", message: "Inserire la tipologia per continuare."},
	{name: "number", numeric: true, message: "Selezionare un numero valido."},
}

var customerSchema = schema{
	{name: "name", message: "Inserire un nome idoneo"},
	{name: "email", message: "email invalida", rules: map[string]string{"email": "email invalida"}},
}

const msgPasswordMismatch = "Le password non coincidono."

var registerSchema = schema{
	{name: "name", message: "Inserire il proprio nome."},
	{name: "email", message: "Inserire un indirizzo email valido.", rules: map[string]string{"email": "Inserire un indirizzo email valido."}},
	{name: "password", message: "Inserire una password valida."},
	{name: "confirmPassword", message: "Password non valida."},
}

// Fascicolo valida los campos de alta/edición de fascicolo.
func (v *Validator) Fascicolo(raw map[string]any) (*Fascicolo, Errors) {
	errs := Errors{}
	vals := intake(raw, fascicoloSchema, errs)
	req := dto.FascicoloRequest{
		CustomerID: vals["customerId"],
		Type:       vals["type"],
		Number:     vals["number"],
	}
	v.check(&req, fascicoloSchema, errs)

	var number int
	if _, bad := errs["number"]; !bad {
		n, err := strconv.Atoi(req.Number)
		if err != nil {
			errs.Add("number", fascicoloSchema[2].message)
		}
		number = n
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &Fascicolo{CustomerID: req.CustomerID, Type: req.Type, Number: number}, nil
}

// Customer valida los campos de alta de cliente.
func (v *Validator) Customer(raw map[string]any) (*dto.CreateCustomerRequest, Errors) {
	errs := Errors{}
	vals := intake(raw, customerSchema, errs)
	req := dto.CreateCustomerRequest{Name: vals["name"], Email: vals["email"]}
	v.check(&req, customerSchema, errs)
	if len(errs) > 0 {
		return nil, errs
	}
	return &req, nil
}

// Register valida los campos de registro de usuario. El password no se recorta.
func (v *Validator) Register(raw map[string]any) (*dto.RegisterRequest, Errors) {
	errs := Errors{}
	vals := intake(raw, registerSchema, errs)
	req := dto.RegisterRequest{
		Name:            vals["name"],
		Email:           vals["email"],
		Password:        rawString(raw, "password"),
		ConfirmPassword: rawString(raw, "confirmPassword"),
	}
	v.check(&req, registerSchema, errs)

	if v.requirePasswordMatch {
		_, badPwd := errs["password"]
		_, badConfirm := errs["confirmPassword"]
		if !badPwd && !badConfirm && req.Password != req.ConfirmPassword {
			errs.Add("confirmPassword", msgPasswordMismatch)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &req, nil
}

func rawString(raw map[string]any, key string) string {
	s, _ := coerce(raw[key], false)
	return s
}
