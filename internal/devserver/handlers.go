package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
	"github.com/dmitrijs2005/subtracker/internal/logging"
)

// subscriptionRequest is the accepted body of POST and PUT.
// An id in the body is ignored.
type subscriptionRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Amount          float64 `json:"amount" validate:"gt=0"`
	BillingCycle    string  `json:"billingCycle" validate:"required,oneof=Monthly Yearly Weekly"`
	NextBillingDate string  `json:"nextBillingDate" validate:"required,isodate"`
	Category        string  `json:"category" validate:"required,max=50"`
}

func (r subscriptionRequest) fields() (models.Fields, error) {
	d, err := models.ParseDate(r.NextBillingDate)
	if err != nil {
		return models.Fields{}, err
	}
	return models.Fields{
		Name:            strings.TrimSpace(r.Name),
		Amount:          r.Amount,
		BillingCycle:    models.BillingCycle(r.BillingCycle),
		NextBillingDate: d,
		Category:        models.Category(r.Category),
	}, nil
}

// isoDate accepts a calendar date in YYYY-MM-DD form.
func isoDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

// Handler serves the subscription collection.
type Handler struct {
	log      logging.Logger
	repo     Repository
	validate *validator.Validate
}

func NewHandler(log logging.Logger, repo Repository) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("isodate", isoDate); err != nil {
		panic(err)
	}

	return &Handler{log: log, repo: repo, validate: v}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "could not list subscriptions", err)
		return
	}
	render.JSON(w, r, items)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.repo.Get(r.Context(), idParam(r))
	if err != nil {
		h.notFoundOr500(w, r, err)
		return
	}
	render.JSON(w, r, s)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	f, ok := h.decode(w, r)
	if !ok {
		return
	}

	s, err := h.repo.Create(r.Context(), f)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "could not create subscription", err)
		return
	}

	h.log.Info(r.Context(), "subscription created", "id", s.ID.String(), "request_id", middleware.GetReqID(r.Context()))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, s)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	f, ok := h.decode(w, r)
	if !ok {
		return
	}

	s, err := h.repo.Update(r.Context(), idParam(r), f)
	if err != nil {
		h.notFoundOr500(w, r, err)
		return
	}

	h.log.Info(r.Context(), "subscription updated", "id", s.ID.String(), "request_id", middleware.GetReqID(r.Context()))
	render.JSON(w, r, s)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.notFoundOr500(w, r, err)
		return
	}

	h.log.Info(r.Context(), "subscription deleted", "id", id.String(), "request_id", middleware.GetReqID(r.Context()))
	render.NoContent(w, r)
}

// decode reads and validates a request body. On failure the response has
// already been written.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (models.Fields, bool) {
	var req subscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, http.StatusBadRequest, "invalid request body", err)
		return models.Fields{}, false
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.log.Warn(r.Context(), "validation failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, validationResponse(verrs))
			return models.Fields{}, false
		}
		h.fail(w, r, http.StatusBadRequest, "invalid request body", err)
		return models.Fields{}, false
	}

	f, err := req.fields()
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, "invalid nextBillingDate", err)
		return models.Fields{}, false
	}
	return f, true
}

func (h *Handler) notFoundOr500(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		h.fail(w, r, http.StatusNotFound, "subscription not found", err)
		return
	}
	h.fail(w, r, http.StatusInternalServerError, "internal error", err)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	log := h.log.With("request_id", middleware.GetReqID(r.Context()), "status", status)
	if status >= http.StatusInternalServerError {
		log.Error(r.Context(), msg, "error", err)
	} else {
		log.Warn(r.Context(), msg, "error", err)
	}
	render.Status(r, status)
	render.JSON(w, r, errorResponse(msg))
}

func idParam(r *http.Request) models.ID {
	return models.ID(chi.URLParam(r, "id"))
}
