package availability

import (
	"context"
	"time"
)

// TemplateSource returns nil without error when the provider has no template.
type TemplateSource interface {
	WeeklyTemplate(ctx context.Context, providerID int64) (*WeeklyTemplate, error)
}

// OverrideSource returns nil without error when no override exists for the date.
type OverrideSource interface {
	OverrideOn(ctx context.Context, providerID int64, date Date) (*DateOverride, error)
}

// HeldSlotReader lists slot times held by pending or confirmed bookings.
type HeldSlotReader interface {
	HeldSlots(ctx context.Context, providerID int64, date Date) ([]TimeOfDay, error)
}

type SlotGenerator struct {
	templates TemplateSource
	overrides OverrideSource
	width     time.Duration
}

func NewSlotGenerator(templates TemplateSource, overrides OverrideSource, width time.Duration) *SlotGenerator {
	if width <= 0 {
		width = DefaultSlotWidth
	}
	return &SlotGenerator{templates: templates, overrides: overrides, width: width}
}

func (g *SlotGenerator) Width() time.Duration { return g.width }

// Generate lists candidate slots for one day. The template is consulted
// only when no override exists.
func (g *SlotGenerator) Generate(ctx context.Context, providerID int64, date Date) ([]TimeOfDay, error) {
	override, err := g.overrides.OverrideOn(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	var template *WeeklyTemplate
	if override == nil {
		template, err = g.templates.WeeklyTemplate(ctx, providerID)
		if err != nil {
			return nil, err
		}
	}

	return g.FromSources(date, override, template), nil
}

// FromSources is the pure part of Generate, shared with month scans that prefetch their inputs.
func (g *SlotGenerator) FromSources(date Date, override *DateOverride, template *WeeklyTemplate) []TimeOfDay {
	w, ok := ResolveWindow(date, override, template)
	if !ok {
		return []TimeOfDay{}
	}
	slots := GenerateSlots(w, g.width)
	if slots == nil {
		return []TimeOfDay{}
	}
	return slots
}

type ConflictFilter struct {
	held HeldSlotReader
}

func NewConflictFilter(held HeldSlotReader) *ConflictFilter {
	return &ConflictFilter{held: held}
}

func (f *ConflictFilter) Apply(ctx context.Context, slots []TimeOfDay, providerID int64, date Date) ([]TimeOfDay, error) {
	if len(slots) == 0 {
		return slots, nil
	}
	held, err := f.held.HeldSlots(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	return ExcludeHeld(slots, held), nil
}
