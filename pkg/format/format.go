// Package format deriva valores de presentación (importes, fechas) a partir de los
// valores almacenados. Funciones puras: sin I/O y deterministas.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ISODate es el layout de las fechas de fascicolo (YYYY-MM-DD, sin hora).
const ISODate = "2006-01-02"

var locale = language.Italian

// Amount convierte céntimos a unidades monetarias sin pérdida de precisión.
func Amount(minorUnits int64) decimal.Decimal {
	return decimal.New(minorUnits, -2)
}

// Currency formatea un importe en céntimos como euros con la convención italiana
// ("€ 1.234,56"). Trabaja sobre el decimal exacto, sin pasar por float64.
func Currency(minorUnits int64) string {
	d := Amount(minorUnits)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	units := d.Truncate(0)
	cents := d.Sub(units).Shift(2).IntPart()
	// message.Printer no es seguro para uso concurrente: uno por llamada.
	p := message.NewPrinter(locale)
	return fmt.Sprintf("%s€ %s,%02d", sign, p.Sprintf("%d", units.IntPart()), cents)
}

// Date formatea una fecha ISO (YYYY-MM-DD o RFC 3339) como "14 ott 2026".
func Date(iso string) (string, error) {
	s := strings.TrimSpace(iso)
	t, err := time.Parse(ISODate, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return "", fmt.Errorf("format: fecha inválida %q: %w", iso, err)
		}
	}
	return DateTime(t), nil
}

// DateTime formatea t con el día, el mes abreviado en italiano y el año.
func DateTime(t time.Time) string {
	return strings.ToLower(monday.Format(t, "2 Jan 2006", monday.LocaleItIT))
}
