package lead

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"concierge/internal/domain"
)

// Service handles the public contact funnel. Lead capture must never fail
// because a side channel (staff mail, websocket push) is down.
type Service struct {
	leads      LeadRepositoryInterface
	admins     AdminLister
	notifier   Notifier
	mailer     Mailer
	staffInbox string
}

func NewService(leads LeadRepositoryInterface, admins AdminLister, notifier Notifier, mailer Mailer, staffInbox string) *Service {
	return &Service{
		leads:      leads,
		admins:     admins,
		notifier:   notifier,
		mailer:     mailer,
		staffInbox: staffInbox,
	}
}

// Create stores the inquiry, then best-effort alerts the staff: one
// in-app notification per admin and one email to the shared inbox.
func (s *Service) Create(ctx context.Context, req CreateLeadRequest) (*domain.Lead, error) {
	l := &domain.Lead{
		Email:           strings.TrimSpace(req.Email),
		Name:            strings.TrimSpace(req.Name),
		Phone:           req.Phone,
		PropertyType:    req.PropertyType,
		Surface:         req.Surface,
		ServiceInterest: req.ServiceInterest,
		Message:         req.Message,
	}

	if err := s.leads.Create(ctx, l); err != nil {
		return nil, err
	}

	s.alertStaff(ctx, l)

	return l, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Lead, error) {
	return s.leads.List(ctx)
}

func (s *Service) alertStaff(ctx context.Context, l *domain.Lead) {
	who := l.Name
	if who == "" {
		who = l.Email
	}
	message := fmt.Sprintf("Nouveau lead reçu de %s", who)

	admins, err := s.admins.ListAdmins(ctx)
	if err != nil {
		log.Printf("lead_alert list_admins failed lead_id=%d err=%v", l.ID, err)
	} else {
		for _, admin := range admins {
			if err := s.notifier.Notify(ctx, admin.ID, message, domain.NotificationInfo, nil); err != nil {
				log.Printf("lead_alert notify failed lead_id=%d admin_id=%d err=%v", l.ID, admin.ID, err)
			}
		}
	}

	if s.staffInbox == "" {
		return
	}
	if err := s.mailer.Send(s.staffInbox, "Nouveau lead — "+who, leadEmailBody(l)); err != nil {
		log.Printf("lead_alert mail failed lead_id=%d err=%v", l.ID, err)
	}
}

func leadEmailBody(l *domain.Lead) string {
	esc := html.EscapeString
	var b strings.Builder
	b.WriteString("<h2>Nouvelle demande de contact</h2><ul>")
	b.WriteString("<li><b>Email:</b> " + esc(l.Email) + "</li>")
	if l.Name != "" {
		b.WriteString("<li><b>Nom:</b> " + esc(l.Name) + "</li>")
	}
	if l.Phone != "" {
		b.WriteString("<li><b>Téléphone:</b> " + esc(l.Phone) + "</li>")
	}
	if l.PropertyType != "" {
		b.WriteString("<li><b>Type de bien:</b> " + esc(l.PropertyType) + "</li>")
	}
	if l.Surface != "" {
		b.WriteString("<li><b>Surface:</b> " + esc(l.Surface) + "</li>")
	}
	if l.ServiceInterest != "" {
		b.WriteString("<li><b>Service:</b> " + esc(l.ServiceInterest) + "</li>")
	}
	b.WriteString("</ul>")
	if l.Message != "" {
		b.WriteString("<p>" + esc(l.Message) + "</p>")
	}
	return b.String()
}
