package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/divvyhq/divvy/internal/models"
	"github.com/divvyhq/divvy/internal/storage"
)

// GroupService manages groups and their rosters.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a group owned by creatorID. The creator always ends up
// first on the roster; every other member must be an existing user.
func (s *GroupService) CreateGroup(ctx context.Context, creatorID, name string, memberIDs []string) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: group name required", ErrInvalidInput)
	}

	roster := []string{creatorID}
	for _, id := range memberIDs {
		if id == creatorID || contains(roster, id) {
			continue
		}
		roster = append(roster, id)
	}

	for _, id := range roster {
		if _, err := s.store.GetUserByID(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownUser, id)
			}
			return nil, err
		}
	}

	group := &models.Group{
		Name:      name,
		MemberIDs: roster,
		CreatedBy: creatorID,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "members", len(roster))
	return group, nil
}

// GetGroup retrieves a group; the requester must be on the roster.
func (s *GroupService) GetGroup(ctx context.Context, requesterID, groupID string) (*models.Group, error) {
	return s.memberGroup(ctx, requesterID, groupID)
}

// ListGroups retrieves every group the requester belongs to.
func (s *GroupService) ListGroups(ctx context.Context, requesterID string) ([]*models.Group, error) {
	return s.store.ListGroupsForUser(ctx, requesterID)
}

// AddMembers appends existing users to the roster. Users already on the
// roster are skipped.
func (s *GroupService) AddMembers(ctx context.Context, requesterID, groupID string, memberIDs []string) (*models.Group, error) {
	if len(memberIDs) == 0 {
		return nil, fmt.Errorf("%w: no members given", ErrInvalidInput)
	}
	if _, err := s.memberGroup(ctx, requesterID, groupID); err != nil {
		return nil, err
	}

	for _, id := range memberIDs {
		if _, err := s.store.GetUserByID(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownUser, id)
			}
			return nil, err
		}
	}

	if err := s.store.AddGroupMembers(ctx, groupID, memberIDs); err != nil {
		return nil, err
	}

	slog.Info("Group members added", "group_id", groupID, "added", len(memberIDs))
	return s.store.GetGroup(ctx, groupID)
}

// DeleteGroup removes a group and everything recorded under it.
func (s *GroupService) DeleteGroup(ctx context.Context, requesterID, groupID string) error {
	if _, err := s.memberGroup(ctx, requesterID, groupID); err != nil {
		return err
	}
	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		return err
	}
	slog.Info("Group deleted", "group_id", groupID)
	return nil
}

// memberGroup fetches a group and verifies the requester belongs to it.
func (s *GroupService) memberGroup(ctx context.Context, requesterID, groupID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(requesterID) {
		return nil, ErrNotGroupMember
	}
	return group, nil
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
