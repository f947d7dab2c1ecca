package reservation

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

// Service owns the reservation book: creation from validated requests,
// manual creation by staff, provider assignment and status changes.
type Service struct {
	reservations ReservationRepositoryInterface
	services     ServiceGetter
	providers    ProviderGetter
	users        UserGetter
	notifier     Notifier
	mailer       Mailer
}

func NewService(
	reservations ReservationRepositoryInterface,
	services ServiceGetter,
	providers ProviderGetter,
	users UserGetter,
	notifier Notifier,
	mailer Mailer,
) *Service {
	return &Service{
		reservations: reservations,
		services:     services,
		providers:    providers,
		users:        users,
		notifier:     notifier,
		mailer:       mailer,
	}
}

// CreateFromRequest turns a validated request into a reservation awaiting
// provider assignment. The price is stamped from the service at validation
// time; if the lookup fails the reservation is still written with price 0
// and the gap is logged for manual correction.
func (s *Service) CreateFromRequest(ctx context.Context, req *domain.Request) (*domain.Reservation, error) {
	var price float64
	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		log.Printf("reservation_price_missing request_id=%d service_id=%d err=%v", req.ID, req.ServiceID, err)
	} else {
		price = svc.Price
	}

	serviceID := req.ServiceID
	res := &domain.Reservation{
		RequestID:     &req.ID,
		UserID:        req.UserID,
		PropertyID:    req.PropertyID,
		ServiceID:     &serviceID,
		ScheduledDate: req.ScheduledDate,
		Status:        domain.ReservationAssigned,
		TotalPrice:    price,
		Notes:         req.Notes,
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// CreateManual is the staff path for reservations that did not come
// through a request (phone, walk-in).
func (s *Service) CreateManual(ctx context.Context, dto CreateReservationDTO) (*domain.Reservation, error) {
	if _, err := s.users.GetByID(ctx, dto.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	var price float64
	if dto.ServiceID != nil {
		svc, err := s.services.GetByID(ctx, *dto.ServiceID)
		if err != nil {
			log.Printf("reservation_price_missing service_id=%d err=%v", *dto.ServiceID, err)
		} else {
			price = svc.Price
		}
	}

	scheduled, err := parseDateTime(dto.Date, dto.Time)
	if err != nil {
		return nil, err
	}

	notes := dto.Notes
	if dto.ServiceID == nil && dto.ServiceLabel != "" {
		label := "Service demandé: " + dto.ServiceLabel
		if notes == "" {
			notes = label
		} else {
			notes = label + "\n" + notes
		}
	}

	res := &domain.Reservation{
		UserID:        dto.UserID,
		PropertyID:    dto.PropertyID,
		ServiceID:     dto.ServiceID,
		ScheduledDate: scheduled,
		Status:        domain.ReservationConfirmed,
		TotalPrice:    price,
		Notes:         notes,
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}

	s.pushToClient(ctx, res.UserID, "Une réservation a été créée pour vous", domain.NotificationReservation, &res.ID)

	return res, nil
}

// AssignProvider sets or replaces the provider on a live reservation,
// moves it to in_progress and refreshes assigned_at, so a replacement is
// visible as a new assignment. Inactive providers are treated like
// missing ones.
func (s *Service) AssignProvider(ctx context.Context, id int64, dto AssignProviderDTO) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	provider, err := s.providers.GetByID(ctx, dto.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if !provider.IsActive {
		return nil, ErrProviderNotFound
	}

	if !res.IsAssignable() {
		return nil, fmt.Errorf("%w: status %s", ErrNotAssignable, res.Status)
	}

	now := time.Now()
	if err := s.reservations.AssignProvider(ctx, id, provider.ID, domain.ReservationInProgress, now); err != nil {
		return nil, err
	}
	res.ProviderID = &provider.ID
	res.Status = domain.ReservationInProgress
	res.AssignedAt = &now

	s.pushToClient(ctx, res.UserID,
		fmt.Sprintf("%s interviendra pour votre réservation", provider.Name),
		domain.NotificationReservation, &res.ID)

	return res, nil
}

// UpdateStatus sets the reservation status and tells the client.
func (s *Service) UpdateStatus(ctx context.Context, id int64, dto UpdateStatusDTO) (*domain.Reservation, error) {
	target := domain.ReservationStatus(dto.Status)
	if !domain.ValidReservationStatus(target) {
		return nil, ErrInvalidStatus
	}

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.reservations.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	res.Status = target

	var message string
	ntype := domain.NotificationReservation
	switch target {
	case domain.ReservationCompleted:
		message = "Votre réservation est terminée"
	case domain.ReservationCancelled:
		message = "Votre réservation a été annulée"
		ntype = domain.NotificationAlert
	case domain.ReservationInProgress:
		message = "Votre réservation est en cours"
	default:
		message = "Votre réservation a été mise à jour"
	}
	s.pushToClient(ctx, res.UserID, message, ntype, &res.ID)

	return res, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]*repository.ReservationDetail, error) {
	return s.reservations.ListForUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]*repository.ReservationDetail, error) {
	return s.reservations.ListForAdmin(ctx)
}

func (s *Service) pushToClient(ctx context.Context, userID int64, message string, ntype domain.NotificationType, reservationID *int64) {
	if err := s.notifier.Notify(ctx, userID, message, ntype, reservationID); err != nil {
		log.Printf("reservation_notify_failed user_id=%d err=%v", userID, err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.Printf("reservation_mail_skipped user_id=%d err=%v", userID, err)
		return
	}
	body := fmt.Sprintf("<p>Bonjour %s,</p><p>%s.</p>", user.FullName(), message)
	if err := s.mailer.Send(user.Email, "Votre réservation", body); err != nil {
		log.Printf("reservation_mail_failed user_id=%d err=%v", userID, err)
	}
}

// parseDateTime combines the staff form's separate date and time fields.
// Time defaults to 09:00.
func parseDateTime(date, clock string) (time.Time, error) {
	if clock == "" {
		clock = "09:00"
	}
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q", date, clock)
	}
	return t, nil
}
