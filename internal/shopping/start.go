package shopping

import (
	"context"
	"fmt"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/event"
	"github.com/pantryline/pantryline/internal/logger"
)

// StartSession begins a new shopping trip for the user. A user can have at
// most one ACTIVE session; starting while one exists fails with
// domain.ErrSessionAlreadyActive.
func (s *service) StartSession(ctx context.Context, userID string, deviceType string, location *domain.Location) (*SessionProjection, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStartSessionCalled, "userID", userID, "deviceType", deviceType)

	uid, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, err
	}

	device, err := parseDeviceType(deviceType)
	if err != nil {
		return nil, err
	}

	// Fast-path check; the repository's Save enforces the same invariant
	// atomically for concurrent starts.
	active, err := s.repo.GetActiveByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckActive, err)
	}
	if active != nil {
		return nil, fmt.Errorf("%w: session %s", domain.ErrSessionAlreadyActive, active.ID)
	}

	session := domain.StartSession(uid, device, location)

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveSession, err)
	}

	s.publish(ctx, event.NewSessionStartedEvent(session))

	log.Info(LogMsgSessionStarted, "sessionID", session.ID, "userID", userID)
	return NewSessionProjection(session), nil
}

// parseDeviceType validates the optional device type string. Empty means the
// caller did not report a device.
func parseDeviceType(raw string) (*domain.DeviceType, error) {
	if raw == "" {
		return nil, nil
	}
	device := domain.DeviceType(raw)
	switch device {
	case domain.DeviceTypeMobile, domain.DeviceTypeTablet, domain.DeviceTypeDesktop:
		return &device, nil
	default:
		return nil, fmt.Errorf("%w: unknown device type %q", domain.ErrInvalidInput, raw)
	}
}

// publish hands events from a completed command to the bus. Publish failures
// are logged, never surfaced: the state change has already been persisted.
func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.PublishAll(ctx, events); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "error", err)
	}
}
