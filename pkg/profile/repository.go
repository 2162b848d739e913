package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/clinicdesk/calendar/pkg/storage"
	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.UserProfile, error)
	FindByID(ctx context.Context, id uint) (model.UserProfile, error)
	Create(ctx context.Context, profile *model.UserProfile) error
	// Update replaces the display fields of the profile with given id. Id and creation time are kept.
	Update(ctx context.Context, id uint, profile model.UserProfile) (model.UserProfile, error)
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) FindAll(ctx context.Context) ([]model.UserProfile, error) {
	var profiles []model.UserProfile
	err := r.db.WithContext(ctx).Order("id").Find(&profiles).Error
	return profiles, err
}

func (r repository) FindByID(ctx context.Context, id uint) (model.UserProfile, error) {
	var profile model.UserProfile
	err := r.db.WithContext(ctx).First(&profile, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.UserProfile{}, errdef.NewNotFound("profile not found by id: %d", id)
	}
	return profile, err
}

func (r repository) Create(ctx context.Context, profile *model.UserProfile) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Create(profile).Error
}

func (r repository) Update(ctx context.Context, id uint, profile model.UserProfile) (model.UserProfile, error) {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	var updated model.UserProfile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		db := tx.
			Model(&model.UserProfile{ID: id}).
			Select("full_name", "email", "specialty", "avatar_url").
			Updates(&profile)
		if db.Error != nil {
			return fmt.Errorf("failed to update profile: %v", db.Error)
		}
		if db.RowsAffected < 1 {
			return errdef.NewNotFound("profile not found by id: %d", id)
		}
		return tx.First(&updated, id).Error
	})
	return updated, err
}

// NewMemoryRepository returns a Repository keeping profiles in process memory.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func NewMemoryRepository() *memoryRepository {
	return &memoryRepository{
		table: storage.NewMemoryTable(func(p *model.UserProfile, id uint) { p.ID = id }),
		now:   time.Now,
	}
}

type memoryRepository struct {
	table *storage.MemoryTable[model.UserProfile]
	now   func() time.Time
}

func (r *memoryRepository) FindAll(_ context.Context) ([]model.UserProfile, error) {
	return r.table.List(), nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uint) (model.UserProfile, error) {
	profile, ok := r.table.Get(id)
	if !ok {
		return model.UserProfile{}, errdef.NewNotFound("profile not found by id: %d", id)
	}
	return profile, nil
}

func (r *memoryRepository) Create(_ context.Context, profile *model.UserProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = r.now()
	}
	*profile = r.table.Insert(*profile)
	return nil
}

func (r *memoryRepository) Update(_ context.Context, id uint, profile model.UserProfile) (model.UserProfile, error) {
	existing, ok := r.table.Get(id)
	if !ok {
		return model.UserProfile{}, errdef.NewNotFound("profile not found by id: %d", id)
	}
	profile.CreatedAt = existing.CreatedAt
	updated, ok := r.table.Replace(id, profile)
	if !ok {
		return model.UserProfile{}, errdef.NewNotFound("profile not found by id: %d", id)
	}
	return updated, nil
}
