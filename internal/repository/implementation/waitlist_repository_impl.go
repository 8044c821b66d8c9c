package implementation

import (
	"context"
	"errors"

	"recruai-web/internal/model"
	"recruai-web/internal/repository/contract"
	"recruai-web/internal/repository/specification"

	"gorm.io/gorm"
)

type WaitlistRepositoryImpl struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) contract.WaitlistRepository {
	return &WaitlistRepositoryImpl{db: db}
}

// Migrate creates the waitlist table if needed.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.WaitlistEntry{})
}

func (r *WaitlistRepositoryImpl) Create(ctx context.Context, entry *model.WaitlistEntry) error {
	err := r.db.WithContext(ctx).Create(entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return contract.ErrDuplicateEntry
	}
	return err
}

func (r *WaitlistRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.WaitlistEntry, error) {
	var m model.WaitlistEntry
	query := specification.ByEmail{Email: email}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *WaitlistRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.WaitlistEntry{}).Count(&n).Error
	return n, err
}
