package cards

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/cardfront/handler"
	"github.com/dmitrymomot/cardfront/pkg/logger"
	"github.com/dmitrymomot/cardfront/svc/card"
	"github.com/dmitrymomot/cardfront/svc/cardapi"
)

type cardIDRequest struct {
	ID int `path:"id"`
}

type confirmRequest struct {
	card.Input
	Confirm string `form:"confirm"`
}

type editRequest struct {
	ID int `path:"id"`
	card.Input
}

type formatRequest struct {
	CardNumber string `json:"cardNumber"`
	ExpDate    string `json:"expDate"`
}

type previewSignals struct {
	NumberPreview string `json:"numberPreview"`
	ExpiryPreview string `json:"expiryPreview"`
}

type formatSignals struct {
	CardNumber    string `json:"cardNumber"`
	ExpDate       string `json:"expDate"`
	NumberPreview string `json:"numberPreview"`
	ExpiryPreview string `json:"expiryPreview"`
}

func (s *Service) list(ctx handler.Context, _ struct{}) handler.Response {
	cards, err := s.api.List(ctx)
	if err != nil {
		return handler.Error(apiError(err))
	}

	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, NewCardView(c))
	}
	return handler.Templ(s.views.ListPage(ListPageParams{Cards: views}))
}

func (s *Service) newForm(ctx handler.Context, _ struct{}) handler.Response {
	return s.formPage(ctx, s.createParams(card.NewInput()), card.Result{})
}

func (s *Service) submitNew(ctx handler.Context, in card.Input) handler.Response {
	in = withDefaults(in)
	res := card.Validate(in, s.now())
	if !res.Valid() {
		return s.formPage(ctx, s.createParams(in), res)
	}
	return s.confirmPage(in, "", http.StatusOK)
}

func (s *Service) confirmNew(ctx handler.Context, req confirmRequest) handler.Response {
	if req.Confirm != "yes" {
		return handler.Redirect("/card/new")
	}

	in := withDefaults(req.Input)
	if err := card.Validate(in, s.now()).Err(); err != nil {
		// hidden fields no longer pass validation
		return handler.Error(err)
	}

	created, err := s.api.Create(ctx, card.ToPayload(in))
	if err != nil {
		s.log.WarnContext(ctx, "create card failed",
			logger.CardNumber(card.MaskNumber(in.CardNumber)),
			logger.Error(err),
		)
		msg := s.writeFailure(ctx, err, KeyCreateFailed, "Failed to create card")
		return s.confirmPage(in, msg, writeStatus(err))
	}

	s.log.InfoContext(ctx, "card created",
		logger.Event("card.created"),
		logger.CardID(created.ID),
		logger.CardNumber(card.MaskNumber(in.CardNumber)),
	)
	return handler.Redirect("/")
}

// preview runs on every keystroke and only touches the card face, so a late
// answer never overwrites what the user typed since.
func (s *Service) preview(_ handler.Context, req formatRequest) handler.Response {
	return handler.Signals(previewSignals{
		NumberPreview: numberPreview(card.FormatNumberInput(req.CardNumber)),
		ExpiryPreview: expiryPreview(card.FormatExpiryInput(req.ExpDate)),
	})
}

// format runs when a field is left and rewrites the inputs themselves.
func (s *Service) format(_ handler.Context, req formatRequest) handler.Response {
	number := card.FormatNumberInput(req.CardNumber)
	expiry := card.FormatExpiryInput(req.ExpDate)
	return handler.Signals(formatSignals{
		CardNumber:    number,
		ExpDate:       expiry,
		NumberPreview: numberPreview(number),
		ExpiryPreview: expiryPreview(expiry),
	})
}

func (s *Service) show(ctx handler.Context, req cardIDRequest) handler.Response {
	c, err := s.api.Get(ctx, req.ID)
	if err != nil {
		return handler.Error(apiError(err))
	}
	return handler.Templ(s.views.DetailPage(DetailPageParams{Card: NewCardView(c)}))
}

func (s *Service) editForm(ctx handler.Context, req cardIDRequest) handler.Response {
	c, err := s.api.Get(ctx, req.ID)
	if err != nil {
		return handler.Error(apiError(err))
	}
	return s.formPage(ctx, s.editParams(req.ID, card.FromCard(c)), card.Result{})
}

func (s *Service) submitEdit(ctx handler.Context, req editRequest) handler.Response {
	in := withDefaults(req.Input)
	res := card.Validate(in, s.now())
	if !res.Valid() {
		return s.formPage(ctx, s.editParams(req.ID, in), res)
	}

	if _, err := s.api.Update(ctx, req.ID, card.ToPayload(in)); err != nil {
		if errors.Is(err, cardapi.ErrNotFound) {
			return handler.Error(apiError(err))
		}
		s.log.WarnContext(ctx, "update card failed", logger.CardID(req.ID), logger.Error(err))

		p := s.editParams(req.ID, in)
		p.FormError = s.writeFailure(ctx, err, KeyUpdateFailed, "Failed to update card")
		return s.formPage(ctx, p, res, handler.WithStatus(writeStatus(err)))
	}

	s.log.InfoContext(ctx, "card updated", logger.Event("card.updated"), logger.CardID(req.ID))
	return handler.Redirect(cardURL(req.ID))
}

func (s *Service) deleteForm(ctx handler.Context, req cardIDRequest) handler.Response {
	c, err := s.api.Get(ctx, req.ID)
	if err != nil {
		return handler.Error(apiError(err))
	}
	return handler.Templ(s.views.DeletePage(DeletePageParams{
		Card:   NewCardView(c),
		Action: fmt.Sprintf("/card/delete/%d", req.ID),
	}))
}

func (s *Service) deleteCard(ctx handler.Context, req cardIDRequest) handler.Response {
	err := s.api.Delete(ctx, req.ID)
	if err == nil {
		s.log.InfoContext(ctx, "card deleted", logger.Event("card.deleted"), logger.CardID(req.ID))
		return handler.Redirect("/")
	}
	if errors.Is(err, cardapi.ErrNotFound) {
		return handler.Error(apiError(err))
	}
	s.log.WarnContext(ctx, "delete card failed", logger.CardID(req.ID), logger.Error(err))

	// show the confirmation again with the failure, if the card is still readable
	c, getErr := s.api.Get(ctx, req.ID)
	if getErr != nil {
		return handler.Error(apiError(err))
	}
	return handler.Templ(s.views.DeletePage(DeletePageParams{
		Card:      NewCardView(c),
		Action:    fmt.Sprintf("/card/delete/%d", req.ID),
		FormError: s.writeFailure(ctx, err, KeyDeleteFailed, "Failed to delete card"),
	}), handler.WithStatus(writeStatus(err)))
}

func (s *Service) createParams(in card.Input) FormPageParams {
	return FormPageParams{
		Mode:       FormCreate,
		Action:     "/card/new",
		CancelURL:  "/",
		PreviewURL: "/card/preview",
		FormatURL:  "/card/format",
		Input:      in,
	}
}

func (s *Service) editParams(id int, in card.Input) FormPageParams {
	return FormPageParams{
		Mode:       FormEdit,
		ID:         id,
		Action:     fmt.Sprintf("/card/edit/%d", id),
		CancelURL:  cardURL(id),
		PreviewURL: "/card/preview",
		FormatURL:  "/card/format",
		Input:      in,
	}
}

// formPage fills the derived form fields and answers 422 when res has errors.
func (s *Service) formPage(ctx context.Context, p FormPageParams, res card.Result, opts ...handler.TemplOption) handler.Response {
	p.Brands = card.Brands()
	p.Errors = res.Translate(func(key, fallback string, args ...string) string {
		return s.tr.Tdc(ctx, key, fallback, args...)
	})
	p.NumberPreview = numberPreview(p.Input.CardNumber)
	p.ExpiryPreview = expiryPreview(p.Input.ExpDate)

	if !res.Valid() {
		opts = append([]handler.TemplOption{handler.WithStatus(http.StatusUnprocessableEntity)}, opts...)
	}
	return handler.Templ(s.views.FormPage(p), opts...)
}

func (s *Service) confirmPage(in card.Input, formError string, status int) handler.Response {
	return handler.Templ(s.views.ConfirmPage(ConfirmPageParams{
		Input:        in,
		MaskedNumber: card.MaskNumber(in.CardNumber),
		BrandLabel:   in.Brand.Label(),
		Action:       "/card/new/confirm",
		FormError:    formError,
	}), handler.WithStatus(status))
}

// writeFailure prefers the API's own message over the localised fallback.
func (s *Service) writeFailure(ctx context.Context, err error, key, fallback string) string {
	if msg, ok := cardapi.Message(err); ok {
		return msg
	}
	return s.tr.Tdc(ctx, key, fallback)
}

// withDefaults fills fields the form may omit. Unknown brands fall back to
// the default brand.
func withDefaults(in card.Input) card.Input {
	if !in.Brand.Valid() {
		in.Brand = card.DefaultBrand
	}
	if in.BackgroundImageURL == "" {
		in.BackgroundImageURL = card.DefaultBackgroundImageURL
	}
	return in
}

// apiError maps a card API failure to the HTTP error shown to the user.
func apiError(err error) error {
	switch {
	case errors.Is(err, cardapi.ErrNotFound), errors.Is(err, cardapi.ErrInvalidID):
		return errors.Join(handler.ErrNotFound, err)
	case errors.Is(err, cardapi.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return errors.Join(handler.ErrServiceUnavailable, err)
	default:
		return errors.Join(handler.ErrBadGateway, err)
	}
}

// writeStatus is the status of a form re-rendered after a failed write:
// 422 when the API rejected the data, otherwise the mapped upstream failure.
func writeStatus(err error) int {
	var apiErr *cardapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return http.StatusUnprocessableEntity
	}
	return handler.ClassifyError(apiError(err)).StatusCode
}

func numberPreview(number string) string {
	if number == "" {
		return NumberPlaceholder
	}
	return card.SpaceNumber(number)
}

func expiryPreview(expiry string) string {
	if expiry == "" {
		return ExpiryPlaceholder
	}
	return expiry
}

func cardURL(id int) string {
	return fmt.Sprintf("/card/%d", id)
}
