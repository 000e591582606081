package application_test

import (
	"context"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ISudhan/cleannect-waste-management/internal/domain/entity"
	"github.com/ISudhan/cleannect-waste-management/internal/domain/repository"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakeClock hands out strictly increasing timestamps so newest-first
// ordering is deterministic in tests.
type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) next() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type fakeUserRepo struct {
	clock *fakeClock
	users map[primitive.ObjectID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{clock: newFakeClock(), users: map[primitive.ObjectID]entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = primitive.NewObjectID()
	u.CreatedAt = r.clock.next()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = r.clock.next()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sortUsersNewestFirst(out)
	return out, nil
}

func (r *fakeUserRepo) Find(_ context.Context, f repository.UserFilter, page, limit int) ([]entity.User, int64, error) {
	matched := []entity.User{}
	for _, u := range r.users {
		if f.UserType != "" && u.UserType != f.UserType {
			continue
		}
		if f.Location != "" && !containsFold(u.Address.City, f.Location) && !containsFold(u.Address.State, f.Location) {
			continue
		}
		matched = append(matched, u)
	}
	sortUsersNewestFirst(matched)
	total := int64(len(matched))
	return pageOf(matched, page, limit), total, nil
}

type fakeListingRepo struct {
	clock    *fakeClock
	listings map[primitive.ObjectID]entity.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{clock: newFakeClock(), listings: map[primitive.ObjectID]entity.Listing{}}
}

func (r *fakeListingRepo) Create(_ context.Context, l *entity.Listing) error {
	l.ID = primitive.NewObjectID()
	l.CreatedAt = r.clock.next()
	l.UpdatedAt = l.CreatedAt
	r.listings[l.ID] = *l
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := l
	return &cp, nil
}

func (r *fakeListingRepo) Update(_ context.Context, l *entity.Listing) error {
	if _, ok := r.listings[l.ID]; !ok {
		return repository.ErrNotFound
	}
	l.UpdatedAt = r.clock.next()
	r.listings[l.ID] = *l
	return nil
}

func (r *fakeListingRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.listings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) Find(_ context.Context, f repository.ListingFilter, page, limit int) ([]entity.Listing, int64, error) {
	matched := []entity.Listing{}
	for _, l := range r.listings {
		if !matches(l, f) {
			continue
		}
		matched = append(matched, l)
	}
	sortListingsNewestFirst(matched)
	total := int64(len(matched))
	return pageOf(matched, page, limit), total, nil
}

func (r *fakeListingRepo) FindBySeller(_ context.Context, seller primitive.ObjectID) ([]entity.Listing, error) {
	out := []entity.Listing{}
	for _, l := range r.listings {
		if l.Seller == seller {
			out = append(out, l)
		}
	}
	sortListingsNewestFirst(out)
	return out, nil
}

func matches(l entity.Listing, f repository.ListingFilter) bool {
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.Category != "" && l.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	if f.Location != "" && !containsFold(l.Location.City, f.Location) && !containsFold(l.Location.State, f.Location) {
		return false
	}
	if f.Search != "" && !containsFold(l.Title, f.Search) && !containsFold(l.Description, f.Search) {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func sortListingsNewestFirst(ls []entity.Listing) {
	sort.Slice(ls, func(i, j int) bool { return ls[i].CreatedAt.After(ls[j].CreatedAt) })
}

func sortUsersNewestFirst(us []entity.User) {
	sort.Slice(us, func(i, j int) bool { return us[i].CreatedAt.After(us[j].CreatedAt) })
}

func pageOf[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
