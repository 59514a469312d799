package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eagleeyes/storefront/internal/models"
	"github.com/eagleeyes/storefront/internal/repository"
)

func TestUsers(t *testing.T) {
	r := NewUsers([]models.User{{ID: "1", Name: "Admin", Email: "admin@eagleeyes.com", Role: models.RoleAdmin}})

	u, err := r.GetByEmail("ADMIN@EagleEyes.com")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	err = r.Create(models.User{ID: "2", Name: "Dup", Email: "Admin@EAGLEEYES.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	require.NoError(t, r.Create(models.User{ID: "2", Name: "Jane", Email: "jane@example.com", Role: models.RoleCustomer}))
	assert.Len(t, r.List(), 2)

	require.NoError(t, r.SetName("2", "Janet"))
	prev, err := r.SetRole("2", models.RoleTrainer)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, prev)
	got, err := r.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Janet", got.Name)
	assert.Equal(t, models.RoleTrainer, got.Role)
	assert.Equal(t, "jane@example.com", got.Email)

	assert.ErrorIs(t, r.SetName("404", "x"), repository.ErrNotFound)
	_, err = r.SetRole("404", models.RoleAdmin)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = r.GetByID("404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollection(t *testing.T) {
	c := NewCollection([]models.BlogPost{{ID: "b1", Title: "one"}, {ID: "b2", Title: "two"}, {ID: "b3", Title: "three"}})

	assert.ErrorIs(t, c.Add(models.BlogPost{ID: "b1"}), repository.ErrDuplicateID)
	require.NoError(t, c.Add(models.BlogPost{ID: "b4", Title: "four"}))

	require.NoError(t, c.Replace(models.BlogPost{ID: "b2", Title: "TWO"}))
	got, err := c.Get("b2")
	require.NoError(t, err)
	assert.Equal(t, "TWO", got.Title)
	assert.ErrorIs(t, c.Replace(models.BlogPost{ID: "zz"}), repository.ErrNotFound)

	listed := c.List()
	require.NoError(t, c.Delete("b1"))
	assert.ErrorIs(t, c.Delete("b1"), repository.ErrNotFound)
	assert.False(t, c.Exists("b1"))
	assert.Len(t, listed, 4, "earlier snapshot unaffected by delete")

	var ids []string
	for _, p := range c.List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"b2", "b3", "b4"}, ids)
}

func TestNewRepositories_Seeded(t *testing.T) {
	repos := NewRepositories(nil)
	assert.Len(t, repos.Products.List(), 6)
	assert.Len(t, repos.Courses.List(), 3)
	assert.Len(t, repos.BlogPosts.List(), 2)
	assert.Len(t, repos.Orders.List(), 2)
	assert.Empty(t, repos.Users.List())
	assert.Empty(t, repos.AuditLogs.List())
}

func TestAuditLogs_FillsIDAndTime(t *testing.T) {
	r := NewAuditLogs()
	require.NoError(t, r.Create(models.AuditLog{EntityType: "product", Action: "created"}))
	logs := r.List()
	require.Len(t, logs, 1)
	assert.NotEmpty(t, logs[0].ID)
	assert.False(t, logs[0].CreatedAt.IsZero())
}

func TestOrders_DuplicateID(t *testing.T) {
	r := NewOrders(nil)
	require.NoError(t, r.Create(models.Order{ID: "o1"}))
	assert.ErrorIs(t, r.Create(models.Order{ID: "o1"}), repository.ErrDuplicateID)
}
