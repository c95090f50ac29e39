package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/logger"
	"boardlink-backend/internal/repository"
)

type gatheringService struct {
	store    repository.Store
	emailSvc EmailService
}

func NewGatheringService(store repository.Store, emailSvc EmailService) GatheringService {
	return &gatheringService{store: store, emailSvc: emailSvc}
}

func (s *gatheringService) CreateGathering(ctx context.Context, hostID int32, title, description, location string, meetDate time.Time, maxParticipants int32) (*domain.Gathering, error) {
	if maxParticipants < 1 {
		return nil, domain.Policyf("max participants must be at least 1")
	}
	g := &domain.Gathering{
		HostID:          hostID,
		Title:           title,
		Description:     description,
		Location:        location,
		MeetDate:        meetDate,
		MaxParticipants: maxParticipants,
		Status:          domain.GatheringStatusOpen,
	}
	if err := s.store.Repos().Gatherings.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *gatheringService) SearchGatherings(ctx context.Context, location string) ([]domain.Gathering, error) {
	return s.store.Repos().Gatherings.Search(ctx, location)
}

func (s *gatheringService) ListHosted(ctx context.Context, hostID int32) ([]domain.Gathering, error) {
	return s.store.Repos().Gatherings.ListByHost(ctx, hostID)
}

func (s *gatheringService) ListApplicants(ctx context.Context, gatheringID int32) ([]domain.Participation, error) {
	return s.store.Repos().Participations.ListWaitlisted(ctx, gatheringID)
}

func (s *gatheringService) ListMyApplications(ctx context.Context, userID int32) ([]domain.Participation, error) {
	return s.store.Repos().Participations.ListByUser(ctx, userID)
}

// Join runs the whole waitlist allocation inside one transaction with
// the gathering row locked, so concurrent joins on the same gathering
// never compute a position from a stale queue snapshot.
func (s *gatheringService) Join(ctx context.Context, userID, gatheringID int32) (*domain.Participation, string, error) {
	var part *domain.Participation
	var msg string

	err := s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		g, err := r.Gatherings.GetByIDForUpdate(ctx, gatheringID)
		if err != nil {
			return err
		}
		if g.Status != domain.GatheringStatusOpen {
			return domain.Policyf("gathering is closed")
		}

		user, err := r.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if _, err := r.Participations.Get(ctx, gatheringID, userID); err == nil {
			return domain.Policyf("already applied to this gathering")
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		maxOrder, err := r.Participations.MaxWaitOrder(ctx, gatheringID)
		if err != nil {
			return err
		}

		var order int32
		switch user.Role {
		case domain.RoleRestricted:
			order = maxOrder + 1
			msg = fmt.Sprintf("restricted account: assigned to the back of the waitlist (position %d)", order)
		case domain.RoleVIP:
			if err := r.Participations.ShiftWaitlist(ctx, gatheringID); err != nil {
				return err
			}
			order = 1
			msg = "VIP priority: assigned waitlist position 1"
		default:
			order = maxOrder + 1
			msg = fmt.Sprintf("assigned waitlist position %d", order)
		}

		part = &domain.Participation{
			GatheringID: gatheringID,
			UserID:      userID,
			Status:      domain.ParticipationStatusWaitlisted,
			WaitOrder:   order,
		}
		return r.Participations.Create(ctx, part)
	})
	if err != nil {
		return nil, "", err
	}
	return part, msg, nil
}

// Approve promotes a waitlisted participant if a seat is left. The
// capacity check and the increment are one conditional update inside the
// same transaction, so concurrent approvals cannot overbook.
func (s *gatheringService) Approve(ctx context.Context, hostID, gatheringID, targetUserID int32) error {
	var g *domain.Gathering
	err := s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		var err error
		g, err = r.Gatherings.GetByIDForUpdate(ctx, gatheringID)
		if err != nil {
			return err
		}
		if g.HostID != hostID {
			return domain.Policyf("only the host can approve participants")
		}

		p, err := r.Participations.Get(ctx, gatheringID, targetUserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Policyf("target not found among waitlisted entries")
			}
			return err
		}
		if p.Status != domain.ParticipationStatusWaitlisted {
			return domain.Policyf("target not found among waitlisted entries")
		}

		seated, err := r.Gatherings.IncrementParticipants(ctx, gatheringID)
		if err != nil {
			return err
		}
		if !seated {
			return domain.Policyf("gathering is at capacity")
		}

		_, err = r.Participations.UpdateStatus(ctx, gatheringID, targetUserID, domain.ParticipationStatusApproved)
		return err
	})
	if err != nil {
		return err
	}

	// Best-effort notification; the approval is already committed.
	if target, err := s.store.Repos().Users.GetByID(ctx, targetUserID); err == nil && target.Email != "" {
		if err := s.emailSvc.SendApprovalNotification(ctx, target.Email, target.Username, g.Title); err != nil {
			logger.Warn("approval notification failed", "user_id", targetUserID, "error", err)
		}
	}
	return nil
}

// Reject has no capacity interaction; re-rejecting an already-rejected
// participation is a no-op success.
func (s *gatheringService) Reject(ctx context.Context, hostID, gatheringID, targetUserID int32) error {
	return s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		g, err := r.Gatherings.GetByIDForUpdate(ctx, gatheringID)
		if err != nil {
			return err
		}
		if g.HostID != hostID {
			return domain.Policyf("only the host can reject participants")
		}

		p, err := r.Participations.Get(ctx, gatheringID, targetUserID)
		if err != nil {
			return err
		}
		if p.Status == domain.ParticipationStatusRejected {
			return nil
		}

		_, err = r.Participations.UpdateStatus(ctx, gatheringID, targetUserID, domain.ParticipationStatusRejected)
		return err
	})
}

func (s *gatheringService) Close(ctx context.Context, hostID, gatheringID int32) error {
	return s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		g, err := r.Gatherings.GetByIDForUpdate(ctx, gatheringID)
		if err != nil {
			return err
		}
		if g.HostID != hostID {
			return domain.Policyf("only the host can close the gathering")
		}
		return r.Gatherings.UpdateStatus(ctx, gatheringID, domain.GatheringStatusClosed)
	})
}
