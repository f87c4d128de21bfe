package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
)

// Field names a draft field the form can edit.
type Field string

const (
	FieldName            Field = "name"
	FieldAmount          Field = "amount"
	FieldBillingCycle    Field = "billingCycle"
	FieldNextBillingDate Field = "nextBillingDate"
	FieldCategory        Field = "category"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrFormClosed   = errors.New("form is not open")
)

// DeletePrompt is shown by the confirmation gate before a delete.
const DeletePrompt = "Are you sure you want to delete this subscription?"

// ValidationError blocks a submit. Fields lists the offending form fields.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	var missing validator.ValidationErrors
	if e.Err == nil || errors.As(e.Err, &missing) {
		return "please fill all fields: " + strings.Join(e.Fields, ", ")
	}
	return fmt.Sprintf("invalid %s: %v", strings.Join(e.Fields, ", "), e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Mutator is the part of the Store the form dispatches to.
type Mutator interface {
	Create(ctx context.Context, f models.Fields)
	Update(ctx context.Context, id models.ID, f models.Fields)
	Delete(ctx context.Context, id models.ID)
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool

// Form drives the single add/edit form. It owns the draft; nothing else may
// change it except through these methods.
type Form struct {
	store    Mutator
	validate *validator.Validate

	draft     models.Draft
	editingID models.ID
	editing   bool
	open      bool
	err       error
}

// NewForm builds a closed form dispatching to store.
func NewForm(store Mutator) *Form {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" {
			return name
		}
		return f.Name
	})
	return &Form{store: store, validate: v, draft: models.EmptyDraft()}
}

func (f *Form) Draft() models.Draft { return f.draft }
func (f *Form) IsOpen() bool        { return f.open }

// EditingID returns the id under edit; ok is false in create mode.
func (f *Form) EditingID() (id models.ID, ok bool) {
	return f.editingID, f.editing
}

// Err returns the last validation error, or nil.
func (f *Form) Err() error { return f.err }

// OpenForCreate opens an empty form.
func (f *Form) OpenForCreate() {
	f.reset()
	f.open = true
}

// OpenForEdit opens the form seeded from s.
func (f *Form) OpenForEdit(s models.Subscription) {
	f.reset()
	f.draft = models.DraftFrom(s)
	f.editingID = s.ID
	f.editing = true
	f.open = true
}

// UpdateField sets one draft field. Values are not validated here.
func (f *Form) UpdateField(field Field, value string) error {
	switch field {
	case FieldName:
		f.draft.Name = value
	case FieldAmount:
		f.draft.Amount = models.AmountInput{Raw: value}
	case FieldBillingCycle:
		f.draft.BillingCycle = models.BillingCycle(value)
	case FieldNextBillingDate:
		f.draft.NextBillingDate = value
	case FieldCategory:
		f.draft.Category = models.Category(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Submit validates the draft and dispatches an update in edit mode or a
// create otherwise. A validation failure keeps the form open and makes no
// call. Once dispatched, the form is reset and closed whatever the outcome;
// remote failures are reported by the Store.
func (f *Form) Submit(ctx context.Context) error {
	if !f.open {
		return ErrFormClosed
	}

	fields, err := f.parse()
	if err != nil {
		f.err = err
		return err
	}

	if f.editing {
		f.store.Update(ctx, f.editingID, fields)
	} else {
		f.store.Create(ctx, fields)
	}

	f.reset()
	return nil
}

// Cancel discards the draft and closes the form.
func (f *Form) Cancel() {
	f.reset()
}

// RequestDelete deletes id only if confirm approves. It reports whether the
// delete was dispatched.
func (f *Form) RequestDelete(ctx context.Context, id models.ID, confirm ConfirmFunc) bool {
	if confirm == nil || !confirm(DeletePrompt) {
		return false
	}
	f.store.Delete(ctx, id)
	return true
}

func (f *Form) parse() (models.Fields, error) {
	if err := f.validate.Struct(f.draft); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			names := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				names = append(names, fe.Field())
			}
			return models.Fields{}, &ValidationError{Fields: names, Err: verrs}
		}
		return models.Fields{}, &ValidationError{Err: err}
	}

	fields, err := f.draft.Fields()
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		return models.Fields{}, &ValidationError{Fields: []string{string(FieldAmount)}, Err: err}
	case errors.Is(err, models.ErrInvalidDate):
		return models.Fields{}, &ValidationError{Fields: []string{string(FieldNextBillingDate)}, Err: err}
	case err != nil:
		return models.Fields{}, &ValidationError{Err: err}
	}
	return fields, nil
}

func (f *Form) reset() {
	f.draft = models.EmptyDraft()
	f.editingID = ""
	f.editing = false
	f.open = false
	f.err = nil
}
