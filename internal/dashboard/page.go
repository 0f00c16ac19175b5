package dashboard

import (
	"context"
	"errors"

	"whateating/internal/feedback"
	"whateating/internal/insights"
	"whateating/internal/location"
	"whateating/internal/selection"
)

const (
	PageTitle    = "The Important Questions: What Are We Eating?"
	PageIntro    = "This guide will help you choose."
	ChoicePrompt = "Will you be ordering in or dining out?"
)

// Radio is one confirm column: a radio group plus its button.
type Radio struct {
	Category selection.Category
	Slug     string
	Options  []string
	Selected string
	Button   string
}

// Page is one full top-to-bottom evaluation of the dashboard for a session.
type Page struct {
	Title  string
	Intro  string
	Prompt string

	Source    []location.Location
	Open      []location.Location
	Summary   insights.Summary
	Aggregate insights.Aggregate

	Radios      []Radio
	Stage       selection.Stage
	Selection   selection.Selection
	ChosenField selection.Field

	// present once a field is chosen
	Candidates []string
	Picked     string

	// present once a restaurant is chosen
	ChosenRestaurant string
	Detail           *location.Detail
	DetailMissing    bool
	Form             feedback.Record
	Ratings          []string

	// present only in the response to a submit
	Result *feedback.Result
	Error  string

	ExportEnabled bool
}

func (h *Handler) buildPage(ctx context.Context, st *selection.State) (*Page, error) {
	p := &Page{
		Title:         PageTitle,
		Intro:         PageIntro,
		Prompt:        ChoicePrompt,
		Stage:         st.Stage(),
		Selection:     st.Selection,
		ChosenField:   st.ChosenField(),
		Ratings:       feedback.Ratings,
		ExportEnabled: h.feedback.ExportEnabled(),
	}

	var err error
	if p.Source, err = h.locations.Source(ctx); err != nil {
		return nil, err
	}
	if p.Open, err = h.locations.Open(ctx); err != nil {
		return nil, err
	}

	sum, err := h.insights.Summary(ctx)
	if err != nil {
		return nil, err
	}
	p.Summary = *sum

	agg, err := h.insights.DeliveryVsDineIn(ctx)
	if err != nil {
		return nil, err
	}
	p.Aggregate = *agg

	for _, c := range selection.Categories() {
		p.Radios = append(p.Radios, Radio{
			Category: c,
			Slug:     c.Slug(),
			Options:  selection.Options(c),
			Selected: st.RadioOption(c),
			Button:   "Choose " + string(c),
		})
	}

	if p.ChosenField == "" {
		return p, nil
	}

	if p.Candidates, err = h.locations.Candidates(ctx, p.ChosenField); err != nil {
		return nil, err
	}
	p.Picked = pickDefault(p.Candidates, st.ChosenRestaurant)

	if st.ChosenRestaurant == "" {
		return p, nil
	}
	p.ChosenRestaurant = st.ChosenRestaurant

	detail, err := h.locations.Detail(ctx, p.ChosenField, st.ChosenRestaurant)
	switch {
	case errors.Is(err, location.ErrRestaurantNotFound):
		// kept from before a field change and no longer a candidate
		p.DetailMissing = true
	case err != nil:
		return nil, err
	default:
		p.Detail = detail
		p.Form = feedback.Record{
			LocationID:      detail.ID,
			LocationName:    detail.Name,
			LocationAddress: detail.Address,
			UserRating:      feedback.DefaultRating,
		}
	}

	return p, nil
}

// the dropdown stays on the confirmed restaurant while it is still listed
func pickDefault(candidates []string, chosen string) string {
	for _, c := range candidates {
		if c == chosen {
			return c
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return ""
}
