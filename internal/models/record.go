package models

import "strings"

// RecordKind discriminates the catalog collections managed from the admin dashboard.
type RecordKind string

const (
	KindProduct  RecordKind = "product"
	KindCourse   RecordKind = "course"
	KindBlogPost RecordKind = "blog_post"
)

var RecordKinds = []RecordKind{KindProduct, KindCourse, KindBlogPost}

// ParseRecordKind accepts the singular kind or the collection name used in URLs.
func ParseRecordKind(s string) (RecordKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "product", "products", "inventory":
		return KindProduct, true
	case "course", "courses":
		return KindCourse, true
	case "blog_post", "blog_posts", "blog", "posts":
		return KindBlogPost, true
	}
	return "", false
}

// Record is the closed set of catalog records: Product, Course and BlogPost.
type Record interface {
	RecordID() string
	Kind() RecordKind
	DisplayName() string
	isRecord()
}

// Cartable is a Record that can be placed in a cart: Product or Course.
type Cartable interface {
	Record
	UnitPrice() int64
	// Snapshot returns a deep copy decoupled from the catalog.
	Snapshot() Cartable
}

type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
)

type Field struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

// FormFields is every top-level scalar field of the kind except id.
func FormFields(kind RecordKind) []Field {
	switch kind {
	case KindProduct:
		return []Field{
			{"name", FieldText}, {"category", FieldText}, {"description", FieldText},
			{"price", FieldNumber}, {"image_url", FieldText}, {"stock", FieldNumber},
		}
	case KindCourse:
		return []Field{
			{"title", FieldText}, {"description", FieldText}, {"instructor", FieldText},
			{"duration", FieldText}, {"price", FieldNumber}, {"image_url", FieldText},
		}
	case KindBlogPost:
		return []Field{
			{"title", FieldText}, {"author", FieldText}, {"date", FieldText},
			{"excerpt", FieldText}, {"content", FieldText}, {"image_url", FieldText},
		}
	}
	return nil
}

// TableColumns is FormFields without the long-text and image fields.
func TableColumns(kind RecordKind) []Field {
	var out []Field
	for _, f := range FormFields(kind) {
		switch f.Name {
		case "description", "content", "image_url":
			continue
		}
		out = append(out, f)
	}
	return out
}

// TableRow returns the record's values for TableColumns, keyed by field name.
func TableRow(r Record) map[string]any {
	all := scalarValues(r)
	row := make(map[string]any)
	for _, f := range TableColumns(r.Kind()) {
		row[f.Name] = all[f.Name]
	}
	row["id"] = r.RecordID()
	return row
}

func scalarValues(r Record) map[string]any {
	switch v := r.(type) {
	case Product:
		return map[string]any{
			"name": v.Name, "category": v.Category, "description": v.Description,
			"price": v.Price, "image_url": v.ImageURL, "stock": v.Stock,
		}
	case Course:
		return map[string]any{
			"title": v.Title, "description": v.Description, "instructor": v.Instructor,
			"duration": v.Duration, "price": v.Price, "image_url": v.ImageURL,
		}
	case BlogPost:
		return map[string]any{
			"title": v.Title, "author": v.Author, "date": v.Date,
			"excerpt": v.Excerpt, "content": v.Content, "image_url": v.ImageURL,
		}
	}
	return map[string]any{}
}
