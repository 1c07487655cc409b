package booking

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "festiva/internal/errors"
	"festiva/internal/model"
	"festiva/internal/repository"
	"festiva/internal/store"
	"festiva/internal/suggest"
)

var (
	testServices = []model.Service{
		{ID: "s1", Name: "Marriage Ceremony", BasePrice: decimal.NewFromInt(50000), Themes: []string{"Royal Mughal", "Classic Gold"}},
		{ID: "s2", Name: "Birthday Party", BasePrice: decimal.NewFromInt(20000), Themes: []string{"Superheroes"}},
	}
	testVenues = []model.Venue{
		{ID: "v1", Name: "The Grand Marquee", Price: decimal.NewFromInt(150000)},
		{ID: "v2", Name: "Emerald Hall", Price: decimal.NewFromInt(250000)},
	}
	testClient = model.User{ID: "c1", Name: "Ayesha", Role: model.RoleClient}
)

func TestWizard_Defaults(t *testing.T) {
	w := New(testClient, testVenues, testServices)

	assert.Equal(t, StepEventAndDate, w.Step())
	draft := w.Draft()
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, "c1", draft.ClientID)
	assert.Equal(t, "Ayesha", draft.ClientName)
	assert.Equal(t, "Marriage Ceremony", draft.EventType)
	assert.Equal(t, model.StatusPending, draft.Status)
	assert.Equal(t, model.CateringPackages[0], draft.Catering)
	assert.Equal(t, model.FoodPresentationStyles[0], draft.FoodPresentation)
}

func TestWizard_StepsAreLinearAndClamped(t *testing.T) {
	w := New(testClient, testVenues, testServices)

	w.Back()
	assert.Equal(t, StepEventAndDate, w.Step(), "cannot move before the first step")

	w.Next()
	assert.Equal(t, StepVenue, w.Step())
	w.Next()
	assert.Equal(t, StepTheme, w.Step())
	w.Back()
	assert.Equal(t, StepVenue, w.Step())
	w.Next()
	w.Next()
	assert.Equal(t, StepCateringAndConfirm, w.Step())
	w.Next()
	assert.Equal(t, StepCateringAndConfirm, w.Step(), "cannot move past the confirmation step")
}

func TestWizard_TotalRecomputesOnSelection(t *testing.T) {
	tests := []struct {
		name  string
		apply func(w *Wizard)
		want  int64
	}{
		{
			name: "service then venue",
			apply: func(w *Wizard) {
				w.SetEventType("Marriage Ceremony")
				w.SetVenue("v1")
			},
			want: 200000,
		},
		{
			name: "venue then service",
			apply: func(w *Wizard) {
				w.SetVenue("v1")
				w.SetEventType("Marriage Ceremony")
			},
			want: 200000,
		},
		{
			name: "changing venue reprices",
			apply: func(w *Wizard) {
				w.SetEventType("Birthday Party")
				w.SetVenue("v1")
				w.SetVenue("v2")
			},
			want: 270000,
		},
		{
			name: "unresolved venue contributes zero",
			apply: func(w *Wizard) {
				w.SetEventType("Marriage Ceremony")
				w.SetVenue("deleted-venue")
			},
			want: 50000,
		},
		{
			name: "unresolved service contributes zero",
			apply: func(w *Wizard) {
				w.SetEventType("Retired Package")
				w.SetVenue("v1")
			},
			want: 150000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(testClient, testVenues, testServices)
			tt.apply(w)
			assert.True(t, w.Draft().TotalAmount.Equal(decimal.NewFromInt(tt.want)),
				"total = %s, want %d", w.Draft().TotalAmount, tt.want)
		})
	}
}

func TestWizard_ThemesFollowSelectedService(t *testing.T) {
	w := New(testClient, testVenues, testServices)
	assert.Equal(t, []string{"Royal Mughal", "Classic Gold"}, w.Themes())

	w.SetEventType("Birthday Party")
	assert.Equal(t, []string{"Superheroes"}, w.Themes())

	w.SetEventType("Retired Package")
	assert.Nil(t, w.Themes())
}

func TestWizard_ConfirmRejectsIncompleteDraft(t *testing.T) {
	tests := []struct {
		name  string
		apply func(w *Wizard)
	}{
		{
			name:  "missing everything",
			apply: func(w *Wizard) {},
		},
		{
			name: "missing theme",
			apply: func(w *Wizard) {
				w.SetEventDate("2026-10-01")
				w.SetVenue("v1")
			},
		},
		{
			name: "missing date",
			apply: func(w *Wizard) {
				w.SetVenue("v1")
				w.SetTheme("Classic Gold")
			},
		},
		{
			name: "missing venue",
			apply: func(w *Wizard) {
				w.SetEventDate("2026-10-01")
				w.SetTheme("Classic Gold")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemory()
			orders := repository.NewOrderRepository(kv)
			w := New(testClient, testVenues, testServices)
			tt.apply(w)
			w.Next()
			w.Next()
			w.Next()

			_, err := w.Confirm(context.Background(), orders)

			assert.ErrorIs(t, err, apperrors.ErrIncompleteBooking)
			assert.Empty(t, orders.GetAll(context.Background()), "nothing may be persisted")
			assert.Equal(t, StepCateringAndConfirm, w.Step(), "wizard stays on the confirmation step")
		})
	}
}

func TestWizard_ConfirmPersistsOrder(t *testing.T) {
	kv := store.NewMemory()
	orders := repository.NewOrderRepository(kv)
	ctx := context.Background()

	w := New(testClient, testVenues, testServices)
	w.SetEventType("Marriage Ceremony")
	w.SetEventDate("2026-10-01")
	w.SetVenue("v1")
	w.SetTheme("Classic Gold")

	order, err := w.Confirm(ctx, orders)
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(200000)))

	stored := orders.GetAll(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, order, stored[0])
}

func TestWizard_EditModeKeepsOrderID(t *testing.T) {
	kv := store.NewMemory()
	orders := repository.NewOrderRepository(kv)
	ctx := context.Background()

	w := New(testClient, testVenues, testServices)
	w.SetEventDate("2026-10-01")
	w.SetVenue("v1")
	w.SetTheme("Classic Gold")
	original, err := w.Confirm(ctx, orders)
	require.NoError(t, err)

	edit := NewFromOrder(original, testVenues, testServices)
	edit.SetVenue("v2")
	updated, err := edit.Confirm(ctx, orders)
	require.NoError(t, err)

	assert.Equal(t, original.ID, updated.ID)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(300000)))

	stored := orders.GetAll(ctx)
	require.Len(t, stored, 1, "editing replaces the order, it does not create a second one")
	assert.Equal(t, "v2", stored[0].VenueID)
}

func TestWizard_ApplySuggestionSetsTheme(t *testing.T) {
	w := New(testClient, testVenues, testServices)
	w.ApplySuggestion(suggest.Suggestion{ThemeName: "Ethereal Forest", Vibe: "dreamy"})
	assert.Equal(t, "Ethereal Forest", w.Draft().Theme)
}
