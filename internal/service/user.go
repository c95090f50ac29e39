package service

import (
	"context"
	"errors"

	"boardlink-backend/internal/domain"
	"boardlink-backend/internal/repository"
)

type userService struct {
	store repository.Store
}

func NewUserService(store repository.Store) UserService {
	return &userService{store: store}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.store.Repos().Users.GetByID(ctx, userID)
}

// GiveFeedback bumps one counter and re-derives the role before the
// commit, so a stale role is never observable outside the transaction.
func (s *userService) GiveFeedback(ctx context.Context, targetID int32, kind domain.FeedbackKind) (*domain.User, error) {
	if kind != domain.FeedbackLike && kind != domain.FeedbackDislike {
		return nil, domain.Policyf("unknown feedback kind")
	}

	var user *domain.User
	err := s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		var err error
		user, err = r.Users.ApplyFeedback(ctx, targetID, kind)
		if err != nil {
			return err
		}
		if next := domain.NextRole(user.Role, user.Likes, user.Dislikes); next != user.Role {
			if err := r.Users.UpdateRole(ctx, targetID, next); err != nil {
				return err
			}
			user.Role = next
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterGame adds a copy to the user's collection, creating the master
// catalog row on first sight of the title.
func (s *userService) RegisterGame(ctx context.Context, userID int32, game *domain.BoardGame, conditionRank string) (*domain.CollectionItem, error) {
	var item *domain.CollectionItem
	err := s.store.ExecTx(ctx, func(r *repository.Repositories) error {
		master, err := r.Collections.GetGameByTitle(ctx, game.Title)
		if errors.Is(err, domain.ErrNotFound) {
			master = game
			if err := r.Collections.CreateGame(ctx, master); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		item = &domain.CollectionItem{
			OwnerID:       userID,
			GameID:        master.ID,
			ConditionRank: conditionRank,
			Status:        domain.ItemStatusAvailable,
			Game:          master,
		}
		return r.Collections.CreateItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *userService) ListCollection(ctx context.Context, userID int32) ([]domain.CollectionItem, error) {
	return s.store.Repos().Collections.ListByOwner(ctx, userID)
}
