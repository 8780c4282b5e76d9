package content

import (
	"reflect"
	"testing"
	"time"
)

func TestSchemaFind(t *testing.T) {
	t.Parallel()

	s := Schema{
		{Name: "title", Kind: KindText},
		{Name: "year", Kind: KindNumber},
	}
	if f, ok := s.Find("year"); !ok || f.Kind != KindNumber {
		t.Fatalf("Find(year) = %+v, ok=%v", f, ok)
	}
	if _, ok := s.Find("nope"); ok {
		t.Fatalf("Find de campo inexistente retornó ok")
	}
}

func TestCoerceListAndTags(t *testing.T) {
	t.Parallel()

	list, err := Field{Name: "setlist", Kind: KindList}.Coerce("Intro\n\n  Tema dos  \nCierre")
	if err != nil {
		t.Fatalf("Coerce list err: %v", err)
	}
	if !reflect.DeepEqual(list, []string{"Intro", "Tema dos", "Cierre"}) {
		t.Fatalf("list = %#v", list)
	}

	tags, err := Field{Name: "tags", Kind: KindTags}.Coerce("rock, en vivo ,  , 2026")
	if err != nil {
		t.Fatalf("Coerce tags err: %v", err)
	}
	if !reflect.DeepEqual(tags, []string{"rock", "en vivo", "2026"}) {
		t.Fatalf("tags = %#v", tags)
	}
}

func TestCoerceNumber(t *testing.T) {
	t.Parallel()

	f := Field{Name: "year", Kind: KindNumber, Min: fptr(1900), Max: fptr(2100)}

	v, err := f.Coerce(" 2024 ")
	if err != nil {
		t.Fatalf("Coerce err: %v", err)
	}
	if v != float64(2024) {
		t.Fatalf("v = %v", v)
	}

	if v, err := f.Coerce(""); err != nil || v != nil {
		t.Fatalf("vacío: v=%v err=%v", v, err)
	}
	if _, err := f.Coerce("mil"); err == nil {
		t.Fatalf("no-número no falló")
	}
	if _, err := f.Coerce("1800"); err == nil {
		t.Fatalf("bajo el mínimo no falló")
	}
	if _, err := f.Coerce("2200"); err == nil {
		t.Fatalf("sobre el máximo no falló")
	}
}

func TestCoerceDates(t *testing.T) {
	t.Parallel()

	v, err := Field{Name: "date", Kind: KindDate}.Coerce("2026-03-14")
	if err != nil {
		t.Fatalf("Coerce date err: %v", err)
	}
	if v != "2026-03-14T00:00:00Z" {
		t.Fatalf("date = %v", v)
	}
	if _, err := (Field{Name: "date", Kind: KindDate}).Coerce("14/03/2026"); err == nil {
		t.Fatalf("fecha en formato incorrecto no falló")
	}

	// Datetime acepta RFC3339 y variantes sin segundos.
	for _, raw := range []string{"2026-03-14T21:30:00Z", "2026-03-14T21:30", "2026-03-14 21:30"} {
		v, err := Field{Name: "starts_at", Kind: KindDatetime}.Coerce(raw)
		if err != nil {
			t.Fatalf("Coerce datetime %q err: %v", raw, err)
		}
		if _, perr := time.Parse(time.RFC3339, v.(string)); perr != nil {
			t.Fatalf("datetime %q no normalizó a RFC3339: %v", raw, v)
		}
	}
	if _, err := (Field{Name: "starts_at", Kind: KindDatetime}).Coerce("mañana"); err == nil {
		t.Fatalf("datetime inválido no falló")
	}
}

func TestCoerceStatus(t *testing.T) {
	t.Parallel()

	f := Field{Name: "status", Kind: KindStatus}
	if v, err := f.Coerce(""); err != nil || v != "draft" {
		t.Fatalf("vacío: v=%v err=%v", v, err)
	}
	if v, err := f.Coerce("published"); err != nil || v != "published" {
		t.Fatalf("published: v=%v err=%v", v, err)
	}
	if _, err := f.Coerce("archivado"); err == nil {
		t.Fatalf("estado desconocido no falló")
	}
}

func TestCoerceSelect(t *testing.T) {
	t.Parallel()

	f := Field{Name: "type", Kind: KindSelect, Options: []Option{
		{Label: "Álbum", Value: "Album"},
		{Label: "EP", Value: "EP"},
	}}
	if v, err := f.Coerce("EP"); err != nil || v != "EP" {
		t.Fatalf("EP: v=%v err=%v", v, err)
	}
	if _, err := f.Coerce("Mixtape"); err == nil {
		t.Fatalf("opción fuera de la lista no falló")
	}
	// Sin opciones declaradas, pasa cualquier valor.
	if v, err := (Field{Name: "x", Kind: KindSelect}).Coerce("loquesea"); err != nil || v != "loquesea" {
		t.Fatalf("select libre: v=%v err=%v", v, err)
	}
}

func TestCoerceURL(t *testing.T) {
	t.Parallel()

	f := Field{Name: "cover", Kind: KindURL}
	for _, ok := range []string{"https://cdn.eliteclan.ar/a.jpg", "http://x.test/a", "/media/a.jpg", ""} {
		if _, err := f.Coerce(ok); err != nil {
			t.Fatalf("URL válida %q falló: %v", ok, err)
		}
	}
	if _, err := f.Coerce("ftp://x.test/a"); err == nil {
		t.Fatalf("esquema no soportado no falló")
	}
	if _, err := f.Coerce("javascript:alert(1)"); err == nil {
		t.Fatalf("URL peligrosa no falló")
	}
}

func TestSortedHistory(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []ChangeLogEntry{
		{ID: "a", CreatedAt: base},
		{ID: "c", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "b", CreatedAt: base.Add(time.Hour)},
	}
	out := SortedHistory(in)
	if out[0].ID != "c" || out[1].ID != "b" || out[2].ID != "a" {
		t.Fatalf("orden: %s %s %s", out[0].ID, out[1].ID, out[2].ID)
	}
	// No muta el slice original.
	if in[0].ID != "a" {
		t.Fatalf("SortedHistory mutó la entrada")
	}
}

func fptr(v float64) *float64 { return &v }
