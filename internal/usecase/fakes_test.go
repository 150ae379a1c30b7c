package usecase

import (
	"context"
	"sync"

	"agro-marketplace/internal/data/entity"
	"agro-marketplace/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[primitive.ObjectID]*entity.User
	byEmail map[string]*entity.User
	// hideEmailOnLookup makes FindByEmail miss, as in a concurrent registration
	hideEmailOnLookup bool
	err               error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[primitive.ObjectID]*entity.User{},
		byEmail: map[string]*entity.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u := *user
	f.byID[u.ID] = &u
	f.byEmail[u.Email] = &u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.hideEmailOnLookup {
		return nil, nil
	}
	return f.byEmail[email], nil
}

// stored looks a user up by the hex id returned to clients
func (f *fakeUserRepo) stored(hexID string) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil
	}
	return f.byID[oid]
}

func (f *fakeUserRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

type fakeBannerRepo struct {
	banners []*entity.Banner
	err     error
}

func (f *fakeBannerRepo) FindActive(context.Context) ([]*entity.Banner, error) {
	return f.banners, f.err
}

type fakeCropRepo struct {
	crops []*entity.Crop
	err   error
}

func (f *fakeCropRepo) FindAll(context.Context) ([]*entity.Crop, error) {
	return f.crops, f.err
}

type fakeImageRepo struct {
	images map[primitive.ObjectID]*entity.Image
	err    error
}

func (f *fakeImageRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.images[id], nil
}

type fakeNotificationRepo struct {
	inserted []*entity.Notification
	calls    int
	err      error
}

func (f *fakeNotificationRepo) CreateMany(_ context.Context, notifications []*entity.Notification) ([]primitive.ObjectID, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]primitive.ObjectID, len(notifications))
	for i, n := range notifications {
		n.ID = primitive.NewObjectID()
		ids[i] = n.ID
	}
	f.inserted = append(f.inserted, notifications...)
	return ids, nil
}
