package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/eagleeyes/storefront/internal/events"
	"github.com/eagleeyes/storefront/internal/logger"
	"github.com/eagleeyes/storefront/internal/metrics"
	"github.com/eagleeyes/storefront/internal/models"
	repo "github.com/eagleeyes/storefront/internal/repository"
)

// AdminService is the dashboard's CRUD over products, courses and blog posts.
// Unknown ids on update and delete are silently ignored. Deletion is two-step: a record is
// staged first and only removed when the staging is confirmed.
type AdminService struct {
	products repo.Collection[models.Product]
	courses  repo.Collection[models.Course]
	posts    repo.Collection[models.BlogPost]
	pub      events.Publisher
	log      *slog.Logger
	ids      *idSource

	mu      sync.Mutex
	pending map[models.RecordKind]models.Record
}

func NewAdminService(p repo.Collection[models.Product], c repo.Collection[models.Course], b repo.Collection[models.BlogPost], pub events.Publisher, log *slog.Logger) *AdminService {
	return &AdminService{
		products: p,
		courses:  c,
		posts:    b,
		pub:      pub,
		log:      log,
		ids:      newIDSource("new_"),
		pending:  map[models.RecordKind]models.Record{},
	}
}

// ----------------- Helpers -----------------

func (s *AdminService) audit(ctx context.Context, rec models.Record, action string) {
	metrics.AdminMutations.WithLabelValues(string(rec.Kind()), action).Inc()
	s.log.Info("admin", "kind", rec.Kind(), "id", rec.RecordID(), "action", action)

	ev := events.AdminAction{
		EntityType: string(rec.Kind()),
		EntityID:   rec.RecordID(),
		Action:     action,
		Details:    map[string]any{"name": rec.DisplayName()},
	}
	if err := s.pub.PublishEvent(ctx, events.TopicAdminAudit, rec.RecordID(), ev); err != nil {
		s.log.Warn("publish admin action", logger.Err(err))
	}
}

// ----------------- Queries -----------------

func (s *AdminService) List(kind models.RecordKind) ([]models.Record, error) {
	var out []models.Record
	switch kind {
	case models.KindProduct:
		for _, r := range s.products.List() {
			out = append(out, r)
		}
	case models.KindCourse:
		for _, r := range s.courses.List() {
			out = append(out, r)
		}
	case models.KindBlogPost:
		for _, r := range s.posts.List() {
			out = append(out, r)
		}
	default:
		return nil, ErrUnknownKind
	}
	return out, nil
}

func (s *AdminService) Get(kind models.RecordKind, id string) (models.Record, error) {
	var (
		rec models.Record
		err error
	)
	switch kind {
	case models.KindProduct:
		rec, err = s.products.Get(id)
	case models.KindCourse:
		rec, err = s.courses.Get(id)
	case models.KindBlogPost:
		rec, err = s.posts.Get(id)
	default:
		return nil, ErrUnknownKind
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ----------------- ADD / UPDATE -----------------

// Add appends rec under a freshly assigned id, ignoring any id it carries.
func (s *AdminService) Add(ctx context.Context, rec models.Record) (models.Record, error) {
	const op = "services.AdminService.Add"
	id := s.ids.next()

	var err error
	switch r := rec.(type) {
	case models.Product:
		r.ID = id
		rec, err = r, s.products.Add(r)
	case models.Course:
		r.ID = id
		rec, err = r, s.courses.Add(r)
	case models.BlogPost:
		r.ID = id
		rec, err = r, s.posts.Add(r)
	default:
		return nil, ErrInvalidRecord
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.audit(ctx, rec, "created")
	return rec, nil
}

// Update replaces the record with rec's id. It reports whether a record was replaced.
func (s *AdminService) Update(ctx context.Context, rec models.Record) (bool, error) {
	var err error
	switch r := rec.(type) {
	case models.Product:
		err = s.products.Replace(r)
	case models.Course:
		err = s.courses.Replace(r)
	case models.BlogPost:
		err = s.posts.Replace(r)
	default:
		return false, ErrInvalidRecord
	}
	if err != nil {
		return false, nil
	}
	s.audit(ctx, rec, "updated")
	return true, nil
}

// ----------------- DELETE -----------------

// StageDelete marks the record as the kind's pending deletion, replacing any earlier one.
// Nothing is removed yet. It reports false, staging nothing, for an unknown id.
func (s *AdminService) StageDelete(kind models.RecordKind, id string) (models.Record, bool, error) {
	rec, err := s.Get(kind, id)
	if errors.Is(err, ErrUnknownKind) {
		return nil, false, err
	}
	if err != nil {
		return nil, false, nil
	}
	s.mu.Lock()
	s.pending[kind] = rec
	s.mu.Unlock()
	return rec, true, nil
}

func (s *AdminService) PendingDeletion(kind models.RecordKind) (models.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.pending[kind]
	return rec, ok
}

// CancelDelete drops the kind's pending deletion; the collection is untouched.
func (s *AdminService) CancelDelete(kind models.RecordKind) {
	s.mu.Lock()
	delete(s.pending, kind)
	s.mu.Unlock()
}

// ConfirmDelete removes the staged record. It reports the removed record, or false when
// nothing was staged or the record had already gone.
func (s *AdminService) ConfirmDelete(ctx context.Context, kind models.RecordKind) (models.Record, bool, error) {
	s.mu.Lock()
	rec, ok := s.pending[kind]
	delete(s.pending, kind)
	s.mu.Unlock()
	if !ok {
		return nil, false, nil
	}

	var err error
	switch kind {
	case models.KindProduct:
		err = s.products.Delete(rec.RecordID())
	case models.KindCourse:
		err = s.courses.Delete(rec.RecordID())
	case models.KindBlogPost:
		err = s.posts.Delete(rec.RecordID())
	default:
		return nil, false, ErrUnknownKind
	}
	if err != nil {
		return nil, false, nil
	}
	s.audit(ctx, rec, "deleted")
	return rec, true, nil
}
