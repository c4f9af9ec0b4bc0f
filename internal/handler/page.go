package handler

import (
	"bytes"
	"context"

	"github.com/Abdullahever182/travel-recomend/internal/handler/gen"
	"github.com/Abdullahever182/travel-recomend/internal/ui"
)

// GetIndex handles GET /.
// The query string replays the user's actions against a fresh page state:
// navigation first, then the Search or Reset button if one was pressed.
func (s *Server) GetIndex(ctx context.Context, req gen.GetIndexRequestObject) (gen.GetIndexResponseObject, error) {
	state := s.freshState()

	if req.Params.Page != nil {
		state = ui.Reduce(state, ui.NavigateTo{Page: ui.Page(*req.Params.Page)}, s.travel)
	}

	if req.Params.Action != nil {
		switch *req.Params.Action {
		case gen.Search:
			state = ui.Reduce(state, ui.Search{Text: derefString(req.Params.Q)}, s.travel)
		case gen.Reset:
			state = ui.Reduce(state, ui.Reset{}, s.travel)
		}
	}

	var buf bytes.Buffer
	if err := s.pages.Render(&buf, state); err != nil {
		return nil, err
	}
	return gen.GetIndex200TexthtmlResponse{Body: &buf, ContentLength: int64(buf.Len())}, nil
}

// SubmitContact handles POST /contact and re-renders the contact page with
// a confirmation, or with the submitted values and a prompt if a field is blank.
func (s *Server) SubmitContact(ctx context.Context, req gen.SubmitContactRequestObject) (gen.SubmitContactResponseObject, error) {
	state := ui.Reduce(s.freshState(), ui.NavigateTo{Page: ui.PageContact}, s.travel)

	var form ui.Contact
	if req.Body != nil {
		form = ui.Contact{Name: req.Body.Name, Email: req.Body.Email, Message: req.Body.Message}
	}
	state = ui.Reduce(state, ui.SubmitContact{Contact: form}, s.travel)

	var buf bytes.Buffer
	if err := s.pages.Render(&buf, state); err != nil {
		return nil, err
	}
	return gen.SubmitContact200TexthtmlResponse{Body: &buf, ContentLength: int64(buf.Len())}, nil
}

// freshState is the initial page state with the current catalog state applied,
// so a failed dataset load is visible before any search.
func (s *Server) freshState() ui.State {
	return ui.Reduce(ui.Initial(), ui.DatasetState{State: s.travel.Status().State}, s.travel)
}
