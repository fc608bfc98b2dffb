package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/errs"
	"github.com/signlearn/signbridge/internal/model"
	"github.com/signlearn/signbridge/internal/repository"
	"gorm.io/gorm"
)

// ModerationService governs community contributions from submission to
// a terminal approve/reject decision. Transitions are one-way: a
// decided contribution is never re-opened, so the review audit trail
// (who decided, and with what reason) cannot be overwritten. Re-review
// means a new submission, not a mutation of history.
type ModerationService interface {
	Submit(ctx context.Context, submitterID uint, req dto.SubmitContributionRequest) (*dto.ContributionResponse, error)
	Approve(ctx context.Context, contributionID, reviewerID uint) (*dto.ContributionResponse, error)
	Reject(ctx context.Context, contributionID, reviewerID uint, reason string) (*dto.ContributionResponse, error)
	List(ctx context.Context, actorID uint, filter dto.ContributionFilter) ([]dto.ContributionResponse, error)
}

type moderationService struct {
	contributionRepo repository.ContributionRepository
	userRepo         repository.UserRepository
}

func NewModerationService(contributionRepo repository.ContributionRepository, userRepo repository.UserRepository) ModerationService {
	return &moderationService{contributionRepo: contributionRepo, userRepo: userRepo}
}

func (s *moderationService) Submit(ctx context.Context, submitterID uint, req dto.SubmitContributionRequest) (*dto.ContributionResponse, error) {
	// All validation happens before any persistence call.
	if strings.TrimSpace(req.Title) == "" {
		return nil, errs.Validation("title must not be empty")
	}
	language := model.Language(req.Language)
	if !language.Valid() {
		return nil, errs.Validation("unsupported language %q", req.Language)
	}
	mediaType := model.MediaType(req.MediaType)
	if mediaType != model.MediaImage && mediaType != model.MediaVideo {
		return nil, errs.Validation("media type must be image or video, got %q", req.MediaType)
	}
	if req.MediaURL == "" {
		return nil, errs.Validation("media URL must not be empty")
	}

	contribution := model.Contribution{
		Title:        req.Title,
		Description:  req.Description,
		Language:     language,
		MediaType:    mediaType,
		MediaURL:     req.MediaURL,
		ThumbnailURL: req.ThumbnailURL,
		SubmitterID:  submitterID,
		Status:       model.ContributionPending,
	}
	if err := s.contributionRepo.Create(ctx, &contribution); err != nil {
		log.Error().Err(err).Uint("submitterID", submitterID).Msg("Failed to persist contribution")
		return nil, err
	}

	log.Info().Uint("contributionID", contribution.ID).Uint("submitterID", submitterID).Str("language", req.Language).Msg("Contribution submitted")
	return toContributionResponse(&contribution)
}

func (s *moderationService) Approve(ctx context.Context, contributionID, reviewerID uint) (*dto.ContributionResponse, error) {
	return s.decide(ctx, contributionID, reviewerID, model.ContributionApproved, nil)
}

func (s *moderationService) Reject(ctx context.Context, contributionID, reviewerID uint, reason string) (*dto.ContributionResponse, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errs.Validation("rejection reason must not be empty")
	}
	return s.decide(ctx, contributionID, reviewerID, model.ContributionRejected, &reason)
}

// decide applies a terminal moderation decision. The repository update
// is compare-and-set on the pending status, so when two reviewers race
// exactly one wins and the other observes a conflict.
func (s *moderationService) decide(ctx context.Context, contributionID, reviewerID uint, status model.ContributionStatus, reason *string) (*dto.ContributionResponse, error) {
	reviewer, err := s.userRepo.FindByID(ctx, reviewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Authorization("unknown reviewer %d", reviewerID)
		}
		return nil, err
	}
	if !reviewer.IsAdmin() {
		return nil, errs.Authorization("user %d lacks the reviewer role", reviewerID)
	}

	rows, err := s.contributionRepo.Decide(ctx, contributionID, status, reviewerID, time.Now().UTC(), reason)
	if err != nil {
		log.Error().Err(err).Uint("contributionID", contributionID).Msg("Failed to apply moderation decision")
		return nil, err
	}
	if rows == 0 {
		// Either the contribution does not exist or it already left
		// pending; fetch to tell the two apart.
		existing, findErr := s.contributionRepo.FindByID(ctx, contributionID)
		if findErr != nil {
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				return nil, errs.NotFound("contribution %d not found", contributionID)
			}
			return nil, findErr
		}
		return nil, errs.Conflict("contribution %d already %s", contributionID, existing.Status)
	}

	updated, err := s.contributionRepo.FindByID(ctx, contributionID)
	if err != nil {
		return nil, err
	}
	log.Info().
		Uint("contributionID", contributionID).
		Uint("reviewerID", reviewerID).
		Str("decision", string(status)).
		Msg("Moderation decision applied")
	return toContributionResponse(updated)
}

func (s *moderationService) List(ctx context.Context, actorID uint, filter dto.ContributionFilter) ([]dto.ContributionResponse, error) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Authorization("unknown user %d", actorID)
		}
		return nil, err
	}

	opts := repository.ContributionListOptions{}
	if filter.Status != "" && filter.Status != "all" {
		status := model.ContributionStatus(filter.Status)
		switch status {
		case model.ContributionPending, model.ContributionApproved, model.ContributionRejected:
			opts.Status = &status
		default:
			return nil, errs.Validation("unrecognized status filter %q", filter.Status)
		}
	}
	if filter.Language != "" && filter.Language != "all" {
		language := model.Language(filter.Language)
		if !language.Valid() {
			return nil, errs.Validation("unsupported language %q", filter.Language)
		}
		opts.Language = &language
	}
	opts.SubmittedBy = filter.SubmittedBy

	// A non-privileged caller only ever sees their own submissions,
	// regardless of the filter supplied. This is the access-control
	// boundary; it is enforced here, not trusted from the caller.
	if !actor.IsAdmin() {
		opts.SubmittedBy = &actor.ID
	}

	contributions, err := s.contributionRepo.List(ctx, opts)
	if err != nil {
		log.Error().Err(err).Uint("actorID", actorID).Msg("Failed to list contributions")
		return nil, err
	}

	responses := make([]dto.ContributionResponse, 0, len(contributions))
	for i := range contributions {
		resp, err := toContributionResponse(&contributions[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func toContributionResponse(c *model.Contribution) (*dto.ContributionResponse, error) {
	var resp dto.ContributionResponse
	if err := copier.Copy(&resp, c); err != nil {
		log.Error().Err(err).Msg("Failed to copy Contribution model to response DTO")
		return nil, err
	}
	// Named string types are mapped explicitly; copier only handles
	// identical field types.
	resp.Language = string(c.Language)
	resp.MediaType = string(c.MediaType)
	resp.Status = string(c.Status)
	return &resp, nil
}
