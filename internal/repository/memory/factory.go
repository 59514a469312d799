package memory

import (
	"github.com/eagleeyes/storefront/internal/catalog"
	"github.com/eagleeyes/storefront/internal/models"
	repo "github.com/eagleeyes/storefront/internal/repository"
)

type Repositories struct {
	Users     repo.Users
	Products  repo.Collection[models.Product]
	Courses   repo.Collection[models.Course]
	BlogPosts repo.Collection[models.BlogPost]
	Orders    repo.Orders
	AuditLogs repo.AuditLogs
}

// NewRepositories builds the catalog store seeded with the demo catalog and order history.
// users is the initial directory, already carrying password hashes.
func NewRepositories(users []models.User) Repositories {
	return Repositories{
		Users:     NewUsers(users),
		Products:  NewCollection(catalog.Products()),
		Courses:   NewCollection(catalog.Courses()),
		BlogPosts: NewCollection(catalog.BlogPosts()),
		Orders:    NewOrders(catalog.OrderHistory()),
		AuditLogs: NewAuditLogs(),
	}
}
