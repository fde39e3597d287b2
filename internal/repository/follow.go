package repository

import (
	"context"
	"errors"

	"sangha/internal/models"

	"gorm.io/gorm"
)

// FollowRepository persists follow edges.
type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	// Delete removes an edge and reports whether one existed.
	Delete(ctx context.Context, followerID uint, followingType models.FollowingType, followingID uint) (bool, error)
	Exists(ctx context.Context, followerID uint, followingType models.FollowingType, followingID uint) (bool, error)
	// FollowerIDs returns up to limit follower IDs greater than afterID in ascending order.
	FollowerIDs(ctx context.Context, followingType models.FollowingType, followingID, afterID uint, limit int) ([]uint, error)
	ListFollowers(ctx context.Context, followingType models.FollowingType, followingID uint, page Page) ([]models.User, error)
	ListFollowing(ctx context.Context, followerID uint, followingType models.FollowingType, page Page) ([]models.Follow, error)
	CountFollowers(ctx context.Context, followingType models.FollowingType, followingID uint) (int64, error)
	DeleteTargeting(ctx context.Context, followingType models.FollowingType, followingIDs []uint) error
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	err := r.db.WithContext(ctx).Create(follow).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewConflictError("already following")
	default:
		return models.NewInternalError(err)
	}
}

func (r *followRepository) Delete(ctx context.Context, followerID uint, followingType models.FollowingType, followingID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_type = ? AND following_id = ?", followerID, followingType, followingID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) Exists(ctx context.Context, followerID uint, followingType models.FollowingType, followingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND following_type = ? AND following_id = ?", followerID, followingType, followingID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) FollowerIDs(ctx context.Context, followingType models.FollowingType, followingID, afterID uint, limit int) ([]uint, error) {
	if limit <= 0 {
		limit = 500
	}
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("following_type = ? AND following_id = ? AND follower_id > ?", followingType, followingID, afterID).
		Order("follower_id ASC").
		Limit(limit).
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, followingType models.FollowingType, followingID uint, page Page) ([]models.User, error) {
	page = page.normalize(defaultPageSize, maxPageSize)
	var users []models.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_type = ? AND follows.following_id = ?", followingType, followingID).
		Order("follows.created_at DESC, users.id ASC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// ListFollowing returns the follower's outgoing edges. An empty followingType lists all kinds.
func (r *followRepository) ListFollowing(ctx context.Context, followerID uint, followingType models.FollowingType, page Page) ([]models.Follow, error) {
	page = page.normalize(defaultPageSize, maxPageSize)
	query := r.db.WithContext(ctx).Where("follower_id = ?", followerID)
	if followingType != "" {
		query = query.Where("following_type = ?", followingType)
	}
	var follows []models.Follow
	if err := query.Order("created_at DESC, id DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, followingType models.FollowingType, followingID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("following_type = ? AND following_id = ?", followingType, followingID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *followRepository) DeleteTargeting(ctx context.Context, followingType models.FollowingType, followingIDs []uint) error {
	if len(followingIDs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Where("following_type = ? AND following_id IN ?", followingType, followingIDs).
		Delete(&models.Follow{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
