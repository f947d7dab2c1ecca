package request

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"concierge/internal/domain"
	"concierge/internal/repository"

	"gorm.io/gorm"
)

// Service drives the request lifecycle. Status moves only along the
// transition table unless an admin forces it, and validation spawns a
// reservation as a side effect.
type Service struct {
	requests     RequestRepositoryInterface
	services     ServiceGetter
	properties   PropertyGetter
	users        UserGetter
	admins       AdminLister
	reservations ReservationCreator
	notifier     Notifier
	mailer       Mailer
}

func NewService(
	requests RequestRepositoryInterface,
	services ServiceGetter,
	properties PropertyGetter,
	users UserGetter,
	admins AdminLister,
	reservations ReservationCreator,
	notifier Notifier,
	mailer Mailer,
) *Service {
	return &Service{
		requests:     requests,
		services:     services,
		properties:   properties,
		users:        users,
		admins:       admins,
		reservations: reservations,
		notifier:     notifier,
		mailer:       mailer,
	}
}

// StatusUpdateResult reports a status change. Warning is set when the
// change itself succeeded but a follow-up step (reservation creation)
// failed, so the handler can answer 200 with an explicit caveat instead
// of pretending everything worked.
type StatusUpdateResult struct {
	Request     *domain.Request     `json:"request"`
	Reservation *domain.Reservation `json:"reservation,omitempty"`
	Warning     string              `json:"warning,omitempty"`
}

// Create submits a client's request. The service must be active and the
// property, when given, must belong to the caller.
func (s *Service) Create(ctx context.Context, userID int64, dto CreateRequestDTO) (*domain.Request, error) {
	svc, err := s.services.GetByID(ctx, dto.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceUnavailable
		}
		return nil, err
	}
	if !svc.IsActive {
		return nil, ErrServiceUnavailable
	}

	if dto.PropertyID != nil {
		p, err := s.properties.GetByID(ctx, *dto.PropertyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPropertyNotOwned
			}
			return nil, err
		}
		if p.OwnerID != userID {
			log.Printf("request_property_denied property_id=%d owner_id=%d actor_id=%d", p.ID, p.OwnerID, userID)
			return nil, ErrPropertyNotOwned
		}
	}

	scheduled, err := parseScheduledDate(dto.ScheduledDate)
	if err != nil {
		return nil, err
	}

	req := &domain.Request{
		UserID:        userID,
		PropertyID:    dto.PropertyID,
		ServiceID:     dto.ServiceID,
		ScheduledDate: scheduled,
		Notes:         dto.Notes,
		Status:        domain.RequestPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	s.alertAdmins(ctx, req, svc)

	return req, nil
}

// alertAdmins sends one notification per admin for a new request. Alert
// failures are logged, never returned: the request row already exists.
func (s *Service) alertAdmins(ctx context.Context, req *domain.Request, svc *domain.Service) {
	requester, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		log.Printf("request_admin_alert_skipped request_id=%d err=%v", req.ID, err)
		return
	}

	admins, err := s.admins.ListAdmins(ctx)
	if err != nil {
		log.Printf("request_admin_alert_failed request_id=%d err=%v", req.ID, err)
		return
	}

	message := fmt.Sprintf("Nouvelle demande de %s : %s le %s",
		requester.FullName(), svc.Name, req.ScheduledDate.Format("02/01/2006"))
	for _, admin := range admins {
		if err := s.notifier.Notify(ctx, admin.ID, message, domain.NotificationAlert, nil); err != nil {
			log.Printf("request_admin_alert_failed request_id=%d admin_id=%d err=%v", req.ID, admin.ID, err)
		}
	}
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]*repository.RequestDetail, error) {
	return s.requests.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]*repository.RequestDetail, error) {
	return s.requests.ListAll(ctx)
}

// Cancel lets a client withdraw their own request while it is still
// pending. Ownership mismatches answer like a missing row.
func (s *Service) Cancel(ctx context.Context, userID, id int64) (*domain.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.UserID != userID {
		log.Printf("request_access_denied request_id=%d owner_id=%d actor_id=%d", id, req.UserID, userID)
		return nil, ErrNotOwned
	}
	if !req.IsPending() {
		log.Printf("request_cancel_not_pending request_id=%d status=%s", id, req.Status)
		return nil, ErrNotPending
	}

	if err := s.requests.UpdateStatus(ctx, id, domain.RequestCancelled); err != nil {
		return nil, err
	}
	req.Status = domain.RequestCancelled
	return req, nil
}

// UpdateStatus moves a request along the transition table. force skips
// the table check for repair work. Moving to validated also creates the
// reservation; if that part fails the status change still stands and the
// result carries a warning.
func (s *Service) UpdateStatus(ctx context.Context, id int64, dto UpdateStatusDTO) (*StatusUpdateResult, error) {
	target := domain.RequestStatus(dto.Status)
	if !domain.ValidRequestStatus(target) {
		return nil, ErrInvalidStatus
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !dto.Force && !req.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, req.Status, target)
	}
	if dto.Force {
		log.Printf("request_status_forced request_id=%d from=%s to=%s", id, req.Status, target)
	}

	if err := s.requests.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	req.Status = target

	result := &StatusUpdateResult{Request: req}

	if target == domain.RequestValidated {
		res, err := s.reservations.CreateFromRequest(ctx, req)
		if err != nil {
			log.Printf("request_reservation_failed request_id=%d err=%v", id, err)
			result.Warning = "Demande validée mais la réservation n'a pas pu être créée"
		} else {
			result.Reservation = res
		}
	}

	s.notifyClient(ctx, result)

	return result, nil
}

func (s *Service) notifyClient(ctx context.Context, result *StatusUpdateResult) {
	req := result.Request

	var message string
	ntype := domain.NotificationInfo
	switch req.Status {
	case domain.RequestValidated:
		message = "Votre demande a été validée, une réservation a été créée"
		ntype = domain.NotificationSuccess
	case domain.RequestRejected:
		message = "Votre demande a été refusée"
		ntype = domain.NotificationAlert
	case domain.RequestInProgress:
		message = "Votre demande est en cours de traitement"
	case domain.RequestCompleted:
		message = "Votre demande est terminée"
		ntype = domain.NotificationSuccess
	case domain.RequestCancelled:
		message = "Votre demande a été annulée"
		ntype = domain.NotificationAlert
	default:
		return
	}

	var reservationID *int64
	if result.Reservation != nil {
		reservationID = &result.Reservation.ID
	}

	if err := s.notifier.Notify(ctx, req.UserID, message, ntype, reservationID); err != nil {
		log.Printf("request_notify_failed request_id=%d user_id=%d err=%v", req.ID, req.UserID, err)
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		log.Printf("request_mail_skipped request_id=%d user_id=%d err=%v", req.ID, req.UserID, err)
		return
	}
	body := fmt.Sprintf("<p>Bonjour %s,</p><p>%s.</p>", user.FullName(), message)
	if err := s.mailer.Send(user.Email, "Mise à jour de votre demande", body); err != nil {
		log.Printf("request_mail_failed request_id=%d user_id=%d err=%v", req.ID, req.UserID, err)
	}
}

// parseScheduledDate accepts a date or a full timestamp.
func parseScheduledDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid scheduled_date %q", raw)
}
