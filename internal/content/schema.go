package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldKind es el tipo de control de un campo del formulario.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindDate     FieldKind = "date"
	KindDatetime FieldKind = "datetime"
	KindList     FieldKind = "list" // líneas separadas por \n
	KindTags     FieldKind = "tags" // valores separados por coma
	KindURL      FieldKind = "url"
	KindNumber   FieldKind = "number"
	KindStatus   FieldKind = "status"
	KindSelect   FieldKind = "select"
)

// Option es una opción de un campo select.
type Option struct {
	Label string
	Value string
}

// Field es la definición declarativa de un campo editable. El nombre
// corresponde a la clave JSON del campo en la variante.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	Options  []Option
	Min      *float64
	Max      *float64
}

// Schema es la lista ordenada de campos que maneja un editor.
type Schema []Field

// Find busca un campo por nombre.
func (s Schema) Find(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Coerce convierte la entrada cruda de un control al valor tipado del
// campo. La coerción vive acá (en el control), no en el editor: el
// editor solo copia valores ya tipados al estado del formulario.
func (f Field) Coerce(raw string) (any, error) {
	switch f.Kind {
	case KindList:
		return splitClean(raw, "\n"), nil

	case KindTags:
		return splitClean(raw, ","), nil

	case KindNumber:
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q no es un número", f.Name, raw)
		}
		if f.Min != nil && n < *f.Min {
			return nil, fmt.Errorf("%s: mínimo %v", f.Name, *f.Min)
		}
		if f.Max != nil && n > *f.Max {
			return nil, fmt.Errorf("%s: máximo %v", f.Name, *f.Max)
		}
		return n, nil

	case KindDate:
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("%s: fecha inválida %q (se espera AAAA-MM-DD)", f.Name, raw)
		}
		return t.UTC().Format(time.RFC3339), nil

	case KindDatetime:
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.UTC().Format(time.RFC3339), nil
			}
		}
		return nil, fmt.Errorf("%s: fecha/hora inválida %q", f.Name, raw)

	case KindStatus:
		switch Status(strings.TrimSpace(raw)) {
		case StatusDraft, "":
			return string(StatusDraft), nil
		case StatusPublished:
			return string(StatusPublished), nil
		}
		return nil, fmt.Errorf("%s: estado inválido %q", f.Name, raw)

	case KindSelect:
		raw = strings.TrimSpace(raw)
		if len(f.Options) == 0 || raw == "" {
			return raw, nil
		}
		for _, o := range f.Options {
			if o.Value == raw {
				return raw, nil
			}
		}
		return nil, fmt.Errorf("%s: opción inválida %q", f.Name, raw)

	case KindURL:
		raw = strings.TrimSpace(raw)
		if raw != "" && !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") && !strings.HasPrefix(raw, "/") {
			return nil, fmt.Errorf("%s: URL inválida %q", f.Name, raw)
		}
		return raw, nil

	default: // text, textarea
		return raw, nil
	}
}

func splitClean(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
