package repository

import (
	"context"
	"errors"

	"sangha/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoteRepository persists vote ledger rows and the casts that form their voter sets.
type VoteRepository interface {
	// GetOrCreateForUpdate returns the ledger row for a target, creating it when absent,
	// and locks it for the rest of the surrounding transaction.
	GetOrCreateForUpdate(ctx context.Context, targetType models.VoteTargetType, targetID uint) (*models.Vote, error)
	FindCast(ctx context.Context, voteID, userID uint) (*models.VoteCast, error)
	AddCast(ctx context.Context, voteID, userID uint, direction models.VoteDirection) error
	SwitchCast(ctx context.Context, castID uint, direction models.VoteDirection) error
	RemoveCast(ctx context.Context, castID uint) error
	// AdjustCounts applies counter deltas with a single atomic UPDATE.
	AdjustCounts(ctx context.Context, voteID uint, upDelta, downDelta int64) error
	Summary(ctx context.Context, targetType models.VoteTargetType, targetID, viewerID uint) (models.VoteSummary, error)
	Summaries(ctx context.Context, targetType models.VoteTargetType, targetIDs []uint, viewerID uint) (map[uint]models.VoteSummary, error)
	DeleteForTargets(ctx context.Context, targetType models.VoteTargetType, targetIDs []uint) error
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository returns a new VoteRepository implementation.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) GetOrCreateForUpdate(ctx context.Context, targetType models.VoteTargetType, targetID uint) (*models.Vote, error) {
	db := r.db.WithContext(ctx)

	seed := models.Vote{TargetType: targetType, TargetID: targetID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "target_type"}, {Name: "target_id"}},
		DoNothing: true,
	}).Create(&seed).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	var vote models.Vote
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		First(&vote).Error; err != nil {
		return nil, mapError(err, "Vote", targetID)
	}
	return &vote, nil
}

// FindCast returns the user's cast on the ledger row, or nil when the user has not voted.
func (r *voteRepository) FindCast(ctx context.Context, voteID, userID uint) (*models.VoteCast, error) {
	var cast models.VoteCast
	err := r.db.WithContext(ctx).Where("vote_id = ? AND user_id = ?", voteID, userID).First(&cast).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &cast, nil
}

func (r *voteRepository) AddCast(ctx context.Context, voteID, userID uint, direction models.VoteDirection) error {
	cast := models.VoteCast{VoteID: voteID, UserID: userID, Direction: direction}
	if err := r.db.WithContext(ctx).Create(&cast).Error; err != nil {
		return mapError(err, "Vote", voteID)
	}
	return nil
}

func (r *voteRepository) SwitchCast(ctx context.Context, castID uint, direction models.VoteDirection) error {
	res := r.db.WithContext(ctx).Model(&models.VoteCast{}).Where("id = ?", castID).Update("direction", direction)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("VoteCast", castID)
	}
	return nil
}

func (r *voteRepository) RemoveCast(ctx context.Context, castID uint) error {
	res := r.db.WithContext(ctx).Delete(&models.VoteCast{}, castID)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("VoteCast", castID)
	}
	return nil
}

func (r *voteRepository) AdjustCounts(ctx context.Context, voteID uint, upDelta, downDelta int64) error {
	err := r.db.WithContext(ctx).Model(&models.Vote{}).Where("id = ?", voteID).Updates(map[string]interface{}{
		"upvote_count":   gorm.Expr("upvote_count + ?", upDelta),
		"downvote_count": gorm.Expr("downvote_count + ?", downDelta),
		"version":        gorm.Expr("version + 1"),
	}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *voteRepository) Summary(ctx context.Context, targetType models.VoteTargetType, targetID, viewerID uint) (models.VoteSummary, error) {
	summaries, err := r.Summaries(ctx, targetType, []uint{targetID}, viewerID)
	if err != nil {
		return models.VoteSummary{}, err
	}
	return summaries[targetID], nil
}

// Summaries returns a summary per target. Targets nobody voted on map to the zero summary.
func (r *voteRepository) Summaries(ctx context.Context, targetType models.VoteTargetType, targetIDs []uint, viewerID uint) (map[uint]models.VoteSummary, error) {
	out := make(map[uint]models.VoteSummary, len(targetIDs))
	if len(targetIDs) == 0 {
		return out, nil
	}
	for _, id := range targetIDs {
		out[id] = models.VoteSummary{}
	}

	db := r.db.WithContext(ctx)
	var votes []models.Vote
	if err := db.Where("target_type = ? AND target_id IN ?", targetType, targetIDs).Find(&votes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(votes) == 0 {
		return out, nil
	}

	targetByVote := make(map[uint]uint, len(votes))
	voteIDs := make([]uint, 0, len(votes))
	for _, v := range votes {
		out[v.TargetID] = models.VoteSummary{Upvotes: v.UpvoteCount, Downvotes: v.DownvoteCount}
		targetByVote[v.ID] = v.TargetID
		voteIDs = append(voteIDs, v.ID)
	}

	if viewerID == 0 {
		return out, nil
	}
	var casts []models.VoteCast
	if err := db.Where("vote_id IN ? AND user_id = ?", voteIDs, viewerID).Find(&casts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, c := range casts {
		targetID := targetByVote[c.VoteID]
		s := out[targetID]
		s.HasUpvoted = c.Direction == models.VoteUp
		s.HasDownvoted = c.Direction == models.VoteDown
		out[targetID] = s
	}
	return out, nil
}

func (r *voteRepository) DeleteForTargets(ctx context.Context, targetType models.VoteTargetType, targetIDs []uint) error {
	if len(targetIDs) == 0 {
		return nil
	}
	db := r.db.WithContext(ctx)
	voteIDs := db.Model(&models.Vote{}).Select("id").Where("target_type = ? AND target_id IN ?", targetType, targetIDs)
	if err := db.Where("vote_id IN (?)", voteIDs).Delete(&models.VoteCast{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	if err := db.Where("target_type = ? AND target_id IN ?", targetType, targetIDs).Delete(&models.Vote{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
