package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(fs []Field) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Name)
	}
	return out
}

func TestFormFieldsAndColumns(t *testing.T) {
	tests := []struct {
		kind    RecordKind
		form    []string
		columns []string
	}{
		{
			kind:    KindProduct,
			form:    []string{"name", "category", "description", "price", "image_url", "stock"},
			columns: []string{"name", "category", "price", "stock"},
		},
		{
			kind:    KindCourse,
			form:    []string{"title", "description", "instructor", "duration", "price", "image_url"},
			columns: []string{"title", "instructor", "duration", "price"},
		},
		{
			kind:    KindBlogPost,
			form:    []string{"title", "author", "date", "excerpt", "content", "image_url"},
			columns: []string{"title", "author", "date", "excerpt"},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.form, fieldNames(FormFields(tt.kind)))
			assert.Equal(t, tt.columns, fieldNames(TableColumns(tt.kind)))
		})
	}
	assert.Nil(t, FormFields(RecordKind("widget")))
}

func TestTableRow(t *testing.T) {
	row := TableRow(Product{ID: "p1", Name: "Cam", Category: "Security", Price: 5, Stock: 2, Description: "long"})
	assert.Equal(t, map[string]any{"id": "p1", "name": "Cam", "category": "Security", "price": int64(5), "stock": 2}, row)
}

func TestParseRecordKind(t *testing.T) {
	for in, want := range map[string]RecordKind{
		"products": KindProduct, "inventory": KindProduct, "Course": KindCourse,
		"blog": KindBlogPost, "blog_posts": KindBlogPost,
	} {
		got, ok := ParseRecordKind(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseRecordKind("users")
	assert.False(t, ok)
}

func TestSnapshotIsDeep(t *testing.T) {
	p := Product{ID: "p1", Specs: map[string]string{"a": "1"}}
	snap := p.Snapshot().(Product)
	p.Specs["a"] = "2"
	assert.Equal(t, "1", snap.Specs["a"])

	c := Course{ID: "c1", Modules: []CourseModule{{Title: "m", Videos: []Video{{Title: "v"}}}}}
	csnap := c.Snapshot().(Course)
	c.Modules[0].Videos[0].Title = "changed"
	assert.Equal(t, "v", csnap.Modules[0].Videos[0].Title)
}

func TestCartItemJSON(t *testing.T) {
	b, err := json.Marshal(CartItem{Item: Course{ID: "c2", Title: "Drone", Price: 750000}, Quantity: 2})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "course", out["kind"])
	assert.EqualValues(t, 2, out["quantity"])
	assert.EqualValues(t, 1500000, out["subtotal"])
	assert.Equal(t, "c2", out["item"].(map[string]any)["id"])
}

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid())
	}
	assert.False(t, Role("OWNER").Valid())
}
