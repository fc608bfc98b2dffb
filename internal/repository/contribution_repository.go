package repository

import (
	"context"
	"time"

	"github.com/signlearn/signbridge/internal/model"
	"gorm.io/gorm"
)

// ContributionListOptions is the persistence-level filter. Scoping of
// non-privileged callers to their own submissions happens in the
// service; by the time a filter reaches here it is already authorized.
type ContributionListOptions struct {
	Status      *model.ContributionStatus
	Language    *model.Language
	SubmittedBy *uint
}

type ContributionRepository interface {
	Create(ctx context.Context, c *model.Contribution) error
	FindByID(ctx context.Context, id uint) (*model.Contribution, error)
	List(ctx context.Context, opts ContributionListOptions) ([]model.Contribution, error)

	// Decide transitions a pending contribution to the given terminal
	// status with compare-and-set semantics: the update applies only if
	// the row is still pending, so a race between two reviewers has
	// exactly one winner. Returns the number of rows updated (0 or 1).
	Decide(ctx context.Context, id uint, status model.ContributionStatus, reviewerID uint, reviewedAt time.Time, reason *string) (int64, error)
}

type contributionRepository struct {
	db *gorm.DB
}

func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

func (r *contributionRepository) Create(ctx context.Context, c *model.Contribution) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contributionRepository) FindByID(ctx context.Context, id uint) (*model.Contribution, error) {
	var c model.Contribution
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contributionRepository) List(ctx context.Context, opts ContributionListOptions) ([]model.Contribution, error) {
	query := r.db.WithContext(ctx).Model(&model.Contribution{})
	if opts.Status != nil {
		query = query.Where("status = ?", *opts.Status)
	}
	if opts.Language != nil {
		query = query.Where("language = ?", *opts.Language)
	}
	if opts.SubmittedBy != nil {
		query = query.Where("submitter_id = ?", *opts.SubmittedBy)
	}
	var contributions []model.Contribution
	err := query.Order("created_at DESC").Find(&contributions).Error
	return contributions, err
}

func (r *contributionRepository) Decide(ctx context.Context, id uint, status model.ContributionStatus, reviewerID uint, reviewedAt time.Time, reason *string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Contribution{}).
		Where("id = ? AND status = ?", id, model.ContributionPending).
		Updates(map[string]any{
			"status":           status,
			"reviewed_by":      reviewerID,
			"reviewed_at":      reviewedAt,
			"rejection_reason": reason,
			"updated_at":       reviewedAt,
		})
	return res.RowsAffected, res.Error
}
