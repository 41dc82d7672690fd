package services

import (
	"errors"
	"strings"

	"github.com/moodmates/moodmates/internal/db"
	"github.com/moodmates/moodmates/internal/models"
)

const (
	DecisionAccept  = "accept"
	DecisionDecline = "decline"
)

type FriendEdgeRepository interface {
	FindEdgeByID(edgeID uint) (models.FriendEdge, error)
	FindEdgeByPair(userID uint, friendID uint) (models.FriendEdge, bool, error)
	PairHasEdges(userID uint, friendID uint) (bool, error)
	CreateEdge(edge *models.FriendEdge) error
	ListOutgoing(userID uint) ([]models.FriendEdge, error)
	ListIncoming(userID uint) ([]models.FriendEdge, error)
	AcceptPair(requesterID uint, recipientID uint) error
	DeletePair(userID uint, friendID uint) error
	SetPairStatus(userID uint, friendID uint, status string) error
}

type FriendUserRepository interface {
	FindByNormalizedEmail(email string) (models.User, error)
	FindManyByIDs(userIDs []uint) ([]models.User, error)
}

// FriendshipService owns the friendship state machine. A friendship is two
// directed edges kept in step: every mutation that touches both edges goes
// through a single repository transaction, and the mutuality check below
// refuses to display "friends" for any asymmetric pair.
type FriendshipService struct {
	edges FriendEdgeRepository
	users FriendUserRepository
}

func NewFriendshipService(edges FriendEdgeRepository, users FriendUserRepository) *FriendshipService {
	return &FriendshipService{edges: edges, users: users}
}

// SendRequest resolves the target by email and creates a single directed
// edge in "sent" status. Any pre-existing edge between the pair, in either
// direction, rejects the request; the unique pair index catches the two
// racing senders that both pass the check.
func (service *FriendshipService) SendRequest(ownerID uint, targetEmail string) (models.FriendEdge, error) {
	email := strings.ToLower(strings.TrimSpace(targetEmail))
	if email == "" {
		return models.FriendEdge{}, ErrInvalidEmail
	}

	target, err := service.users.FindByNormalizedEmail(email)
	if errors.Is(err, db.ErrNotFound) {
		return models.FriendEdge{}, ErrUserNotFound
	}
	if err != nil {
		return models.FriendEdge{}, err
	}
	if target.ID == ownerID {
		return models.FriendEdge{}, ErrSelfReference
	}

	exists, err := service.edges.PairHasEdges(ownerID, target.ID)
	if err != nil {
		return models.FriendEdge{}, err
	}
	if exists {
		return models.FriendEdge{}, ErrFriendExists
	}

	edge := models.FriendEdge{
		UserID:   ownerID,
		FriendID: target.ID,
		Status:   models.FriendStatusSent,
	}
	if err := service.edges.CreateEdge(&edge); err != nil {
		if errors.Is(err, db.ErrConflict) {
			return models.FriendEdge{}, ErrFriendExists
		}
		return models.FriendEdge{}, err
	}
	return edge, nil
}

// Respond lets the request recipient accept or decline a pending request.
// Only the non-owner of the edge may act; anyone else sees not-found.
// Accepting is idempotent: both edges converge to "accepted" no matter how
// often it runs. Declining deletes the pending edge(s).
func (service *FriendshipService) Respond(edgeID uint, recipientID uint, decision string) error {
	if decision != DecisionAccept && decision != DecisionDecline {
		return ErrInvalidDecision
	}

	edge, err := service.edges.FindEdgeByID(edgeID)
	if errors.Is(err, db.ErrNotFound) {
		return ErrEdgeNotFound
	}
	if err != nil {
		return err
	}
	if edge.FriendID != recipientID {
		return ErrEdgeNotFound
	}

	if decision == DecisionAccept {
		return service.edges.AcceptPair(edge.UserID, edge.FriendID)
	}
	return service.edges.DeletePair(edge.UserID, edge.FriendID)
}

// SetBlocked toggles both directed edges between accepted and blocked.
// Only the edge owner may act, and only on a confirmed friendship: a
// pending request stays pending so the recipient keeps seeing it.
func (service *FriendshipService) SetBlocked(edgeID uint, ownerID uint, blocked bool) error {
	edge, err := service.edges.FindEdgeByID(edgeID)
	if errors.Is(err, db.ErrNotFound) {
		return ErrEdgeNotFound
	}
	if err != nil {
		return err
	}
	if edge.UserID != ownerID {
		return ErrEdgeNotFound
	}

	if blocked {
		if edge.Status != models.FriendStatusAccepted {
			return ErrFriendStateConflict
		}
		return service.edges.SetPairStatus(edge.UserID, edge.FriendID, models.FriendStatusBlocked)
	}
	if edge.Status != models.FriendStatusBlocked {
		return ErrFriendStateConflict
	}
	return service.edges.SetPairStatus(edge.UserID, edge.FriendID, models.FriendStatusAccepted)
}

// Remove deletes both directed edges regardless of their current status.
func (service *FriendshipService) Remove(edgeID uint, ownerID uint) error {
	edge, err := service.edges.FindEdgeByID(edgeID)
	if errors.Is(err, db.ErrNotFound) {
		return ErrEdgeNotFound
	}
	if err != nil {
		return err
	}
	if edge.UserID != ownerID {
		return ErrEdgeNotFound
	}
	return service.edges.DeletePair(edge.UserID, edge.FriendID)
}

// ListFriends returns the owner's outgoing edges with the derived display
// status and the counterpart's profile.
func (service *FriendshipService) ListFriends(ownerID uint) ([]models.FriendListing, error) {
	outgoing, err := service.edges.ListOutgoing(ownerID)
	if err != nil {
		return nil, err
	}

	listings := make([]models.FriendListing, 0, len(outgoing))
	counterpartIDs := make([]uint, 0, len(outgoing))
	for _, edge := range outgoing {
		display, err := service.displayStatus(edge)
		if err != nil {
			return nil, err
		}
		listings = append(listings, models.FriendListing{Edge: edge, DisplayStatus: display})
		counterpartIDs = append(counterpartIDs, edge.FriendID)
	}

	profiles, err := service.loadProfiles(counterpartIDs)
	if err != nil {
		return nil, err
	}
	for index := range listings {
		listings[index].Friend = profiles[listings[index].Edge.FriendID]
	}
	return listings, nil
}

// ListIncomingRequests returns pending requests addressed to the owner,
// excluding pairs that are already mutual so accepted friendships never
// reappear as incoming.
func (service *FriendshipService) ListIncomingRequests(ownerID uint) ([]models.FriendRequestListing, error) {
	incoming, err := service.edges.ListIncoming(ownerID)
	if err != nil {
		return nil, err
	}

	pending := make([]models.FriendRequestListing, 0, len(incoming))
	requesterIDs := make([]uint, 0, len(incoming))
	for _, edge := range incoming {
		if edge.Status != models.FriendStatusSent {
			continue
		}
		reciprocal, found, err := service.edges.FindEdgeByPair(ownerID, edge.UserID)
		if err != nil {
			return nil, err
		}
		if found && reciprocal.Status == models.FriendStatusAccepted {
			continue
		}
		pending = append(pending, models.FriendRequestListing{Edge: edge})
		requesterIDs = append(requesterIDs, edge.UserID)
	}

	profiles, err := service.loadProfiles(requesterIDs)
	if err != nil {
		return nil, err
	}
	for index := range pending {
		pending[index].Requester = profiles[pending[index].Edge.UserID]
	}
	return pending, nil
}

// MutualFriendIDs returns the ids of every user that shares an accepted
// edge with the owner in both directions. The friend feed is scoped to
// exactly this set.
func (service *FriendshipService) MutualFriendIDs(ownerID uint) ([]uint, error) {
	outgoing, err := service.edges.ListOutgoing(ownerID)
	if err != nil {
		return nil, err
	}

	mutual := make([]uint, 0, len(outgoing))
	for _, edge := range outgoing {
		display, err := service.displayStatus(edge)
		if err != nil {
			return nil, err
		}
		if display == models.DisplayStatusFriends {
			mutual = append(mutual, edge.FriendID)
		}
	}
	return mutual, nil
}

// displayStatus is the mutuality check: "friends" requires both directed
// edges present and accepted. Anything asymmetric renders as the
// directional pending state so a user never sees a friendship the other
// party has not confirmed.
func (service *FriendshipService) displayStatus(edge models.FriendEdge) (string, error) {
	if edge.Status == models.FriendStatusBlocked {
		return models.DisplayStatusBlocked, nil
	}

	reciprocal, found, err := service.edges.FindEdgeByPair(edge.FriendID, edge.UserID)
	if err != nil {
		return "", err
	}
	if found &&
		edge.Status == models.FriendStatusAccepted &&
		reciprocal.Status == models.FriendStatusAccepted {
		return models.DisplayStatusFriends, nil
	}
	return models.DisplayStatusSent, nil
}

func (service *FriendshipService) loadProfiles(userIDs []uint) (map[uint]models.PublicUser, error) {
	users, err := service.users.FindManyByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	profiles := make(map[uint]models.PublicUser, len(users))
	for _, user := range users {
		profiles[user.ID] = user.Public()
	}
	return profiles, nil
}
