// Package booking implements the multi-step booking wizard: a linear state
// machine that accumulates a draft order and derives its total price from
// the selected service and venue.
package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "festiva/internal/errors"
	"festiva/internal/model"
	"festiva/internal/repository"
	"festiva/internal/suggest"
)

// Step identifies a wizard step. Steps are strictly linear; Next and Back
// move one step at a time and clamp at the ends.
type Step int

const (
	StepEventAndDate Step = iota + 1
	StepVenue
	StepTheme
	StepCateringAndConfirm
)

// Wizard drives a booking draft through the four steps. It works against a
// catalog snapshot taken when the wizard is opened, like the form it
// replaces.
type Wizard struct {
	step     Step
	draft    model.Order
	venues   []model.Venue
	services []model.Service
}

// New starts a fresh wizard for user. The draft defaults to the first
// catalog service and the first catering and presentation options.
func New(user model.User, venues []model.Venue, services []model.Service) *Wizard {
	draft := model.Order{
		ID:               uuid.NewString(),
		ClientID:         user.ID,
		ClientName:       user.Name,
		Status:           model.StatusPending,
		TotalAmount:      decimal.Zero,
		Catering:         model.CateringPackages[0],
		FoodPresentation: model.FoodPresentationStyles[0],
		CreatedAt:        time.Now().UTC(),
	}
	if len(services) > 0 {
		draft.EventType = services[0].Name
	}
	w := &Wizard{step: StepEventAndDate, draft: draft, venues: venues, services: services}
	w.recompute()
	return w
}

// NewFromOrder opens the wizard in edit mode, initialized from an existing
// order's full field set. Confirming saves under the same id.
func NewFromOrder(order model.Order, venues []model.Venue, services []model.Service) *Wizard {
	w := &Wizard{step: StepEventAndDate, draft: order, venues: venues, services: services}
	w.recompute()
	return w
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Draft returns a copy of the accumulated draft order.
func (w *Wizard) Draft() model.Order {
	return w.draft
}

// Next advances one step, stopping at the confirmation step.
func (w *Wizard) Next() {
	if w.step < StepCateringAndConfirm {
		w.step++
	}
}

// Back moves one step back, stopping at the first step.
func (w *Wizard) Back() {
	if w.step > StepEventAndDate {
		w.step--
	}
}

// SetEventType selects the event service by name and recomputes the total.
func (w *Wizard) SetEventType(name string) {
	w.draft.EventType = name
	w.recompute()
}

// SetEventDate sets the event date.
func (w *Wizard) SetEventDate(date string) {
	w.draft.EventDate = date
}

// SetVenue selects the venue by id and recomputes the total.
func (w *Wizard) SetVenue(id string) {
	w.draft.VenueID = id
	w.recompute()
}

// SetTheme sets the draft theme.
func (w *Wizard) SetTheme(theme string) {
	w.draft.Theme = theme
}

// ApplySuggestion adopts a suggested theme. The suggestion carries no
// further relationship to the saved order.
func (w *Wizard) ApplySuggestion(s suggest.Suggestion) {
	w.draft.Theme = s.ThemeName
}

// SetCatering sets the catering package.
func (w *Wizard) SetCatering(catering string) {
	w.draft.Catering = catering
}

// SetFoodPresentation sets the food presentation style.
func (w *Wizard) SetFoodPresentation(style string) {
	w.draft.FoodPresentation = style
}

// Themes lists the themes offered by the selected service.
func (w *Wizard) Themes() []string {
	for _, s := range w.services {
		if s.Name == w.draft.EventType {
			return s.Themes
		}
	}
	return nil
}

// Confirm validates the draft and persists it. Missing date, theme or venue
// fails with ErrIncompleteBooking and leaves the wizard on the confirmation
// step with nothing saved. New drafts get defaults for id, status and
// creation time; edit-mode drafts keep theirs so the save replaces the
// existing order.
func (w *Wizard) Confirm(ctx context.Context, orders repository.OrderRepository) (model.Order, error) {
	if err := ValidateDraft(w.draft); err != nil {
		return model.Order{}, err
	}
	if w.draft.ID == "" {
		w.draft.ID = uuid.NewString()
	}
	if w.draft.Status == "" {
		w.draft.Status = model.StatusPending
	}
	if w.draft.CreatedAt.IsZero() {
		w.draft.CreatedAt = time.Now().UTC()
	}
	w.recompute()
	if err := orders.Upsert(ctx, w.draft); err != nil {
		return model.Order{}, err
	}
	return w.draft, nil
}

func (w *Wizard) recompute() {
	w.draft.TotalAmount = Total(w.services, w.venues, w.draft.EventType, w.draft.VenueID)
}

// ValidateDraft checks the fields the confirmation step requires.
func ValidateDraft(draft model.Order) error {
	if draft.EventDate == "" || draft.Theme == "" || draft.VenueID == "" {
		return apperrors.ErrIncompleteBooking
	}
	return nil
}

// Total derives the booking price: the selected service's base price plus
// the selected venue's price, each term zero when unresolved. EventType
// matches services by name, venueID matches venues by id.
func Total(services []model.Service, venues []model.Venue, eventType, venueID string) decimal.Decimal {
	total := decimal.Zero
	for _, s := range services {
		if s.Name == eventType {
			total = total.Add(s.BasePrice)
			break
		}
	}
	for _, v := range venues {
		if v.ID == venueID {
			total = total.Add(v.Price)
			break
		}
	}
	return total
}
