package booking

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/discoverrwanda/discover-rwanda-api/internal/domain/catalog"
	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// ItemSummary is the slice of catalog data the booking flow needs.
type ItemSummary struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Image    string `json:"image,omitempty"`
}

// Resolved is a successful eligibility resolution: the item, the option, and
// the form schema derived from it.
type Resolved struct {
	ItemType string               `json:"itemType"`
	Item     ItemSummary          `json:"item"`
	Option   *types.BookingOption `json:"option"`
	Schema   *Schema              `json:"schema"`
}

// SubmitParams is the input to a booking submission.
type SubmitParams struct {
	ItemType string
	ItemSlug string
	OptionID string
	Form     types.BookingFormData
}

// ValidationError carries the per-field messages from a rejected form.
type ValidationError struct {
	Fields []types.FieldError
}

func (e *ValidationError) Error() string { return "booking form validation failed" }

func (e *ValidationError) Unwrap() error { return types.ErrValidation }

// Service resolves booking eligibility and submits bookings.
type Service interface {
	// ListOptions returns the item's bookable services together with the
	// bookable flag, for item detail pages.
	ListOptions(ctx context.Context, itemType, slug string) ([]types.BookingOption, bool, error)

	// Resolve checks that the item supports booking and that the option
	// exists, and builds the option's form schema.
	Resolve(ctx context.Context, itemType, slug, optionID string) (*Resolved, error)

	// Submit validates the form against the resolved option's schema and
	// hands it to the gateway.
	Submit(ctx context.Context, params SubmitParams) (*types.Booking, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	catalogRepo catalog.Repository
	optionRepo  OptionRepository
	gateway     Gateway
	logger      *slog.Logger
}

func NewServiceImpl(catalogRepo catalog.Repository, optionRepo OptionRepository, gateway Gateway, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		catalogRepo: catalogRepo,
		optionRepo:  optionRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

// ListOptions returns the bookable services for an item. Only attractions
// carry options today; other item types report an empty, non-bookable list.
func (s *ServiceImpl) ListOptions(ctx context.Context, itemType, slug string) ([]types.BookingOption, bool, error) {
	if itemType != "attraction" {
		return nil, false, nil
	}
	options, err := s.optionRepo.Options(ctx, slug)
	if err != nil {
		return nil, false, fmt.Errorf("error fetching booking options for %q: %w", slug, err)
	}
	bookable, err := s.optionRepo.HasBookableServices(ctx, slug)
	if err != nil {
		return nil, false, fmt.Errorf("error checking bookable services for %q: %w", slug, err)
	}
	return options, bookable, nil
}

// Resolve looks up the item and option and gates on bookability. Booking is
// only implemented for attractions; event and dining bookings are
// intentionally unsupported and resolve to not found, as does every other
// failure mode here, so callers cannot distinguish a missing item from a
// non-bookable one.
func (s *ServiceImpl) Resolve(ctx context.Context, itemType, slug, optionID string) (*Resolved, error) {
	ctx, span := otel.Tracer("BookingService").Start(ctx, "Resolve", trace.WithAttributes(
		attribute.String("item.type", itemType),
		attribute.String("item.slug", slug),
		attribute.String("option.id", optionID),
	))
	defer span.End()

	l := s.logger.With(
		slog.String("method", "Resolve"),
		slog.String("item_type", itemType),
		slog.String("item_slug", slug),
		slog.String("option_id", optionID),
	)
	l.DebugContext(ctx, "Resolving booking eligibility")

	if itemType != "attraction" {
		l.WarnContext(ctx, "Booking requested for unsupported item type")
		span.SetStatus(codes.Error, "unsupported item type")
		return nil, types.ErrNotFound
	}

	attraction, err := s.catalogRepo.AttractionBySlug(ctx, slug)
	if err != nil {
		l.WarnContext(ctx, "Attraction not found", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "attraction not found")
		return nil, types.ErrNotFound
	}

	option, err := s.optionRepo.Option(ctx, slug, optionID)
	if err != nil {
		l.WarnContext(ctx, "Booking option not found", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking option not found")
		return nil, types.ErrNotFound
	}

	// Redundant with the option lookup, but kept as an explicit gate so the
	// contract holds even for items whose metadata is inspected separately.
	bookable, err := s.optionRepo.HasBookableServices(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("error checking bookable services for %q: %w", slug, err)
	}
	if !bookable {
		l.WarnContext(ctx, "Item has no bookable services")
		span.SetStatus(codes.Error, "item not bookable")
		return nil, types.ErrNotFound
	}

	l.InfoContext(ctx, "Booking eligibility resolved", slog.String("option_name", option.Name))
	span.SetStatus(codes.Ok, "resolved")
	return &Resolved{
		ItemType: itemType,
		Item: ItemSummary{
			Slug:     attraction.Slug,
			Name:     attraction.Name,
			Location: attraction.Location,
			Image:    attraction.Image,
		},
		Option: option,
		Schema: BuildSchema(option),
	}, nil
}

// Submit re-resolves eligibility, validates the form and calls the gateway.
// There is no automatic retry; a gateway failure surfaces to the caller.
func (s *ServiceImpl) Submit(ctx context.Context, params SubmitParams) (*types.Booking, error) {
	ctx, span := otel.Tracer("BookingService").Start(ctx, "Submit")
	defer span.End()

	l := s.logger.With(
		slog.String("method", "Submit"),
		slog.String("item_slug", params.ItemSlug),
		slog.String("option_id", params.OptionID),
	)

	resolved, err := s.Resolve(ctx, params.ItemType, params.ItemSlug, params.OptionID)
	if err != nil {
		return nil, err
	}

	if fieldErrs := resolved.Schema.Validate(&params.Form); len(fieldErrs) > 0 {
		l.InfoContext(ctx, "Booking form rejected", slog.Int("field_errors", len(fieldErrs)))
		span.SetStatus(codes.Error, "validation failed")
		return nil, &ValidationError{Fields: fieldErrs}
	}

	total := TotalPrice(resolved.Option, params.Form.Participants)

	confirmation, err := s.gateway.Submit(ctx, SubmissionRequest{
		ItemType:    params.ItemType,
		ItemSlug:    params.ItemSlug,
		OptionID:    params.OptionID,
		Form:        params.Form,
		TotalAmount: total,
		Currency:    resolved.Option.Price.Currency,
	})
	if err != nil {
		l.ErrorContext(ctx, "Gateway rejected booking", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "gateway submission failed")
		return nil, fmt.Errorf("error submitting booking: %w", err)
	}

	booking := &types.Booking{
		ID:               confirmation.ID,
		BookingOptionID:  params.OptionID,
		ItemSlug:         params.ItemSlug,
		ItemType:         params.ItemType,
		Status:           types.BookingStatusConfirmed,
		FormData:         params.Form,
		TotalAmount:      confirmation.TotalAmount,
		Currency:         confirmation.Currency,
		CreatedAt:        confirmation.CreatedAt,
		UpdatedAt:        confirmation.CreatedAt,
		PaymentStatus:    types.PaymentStatusPaid,
		ConfirmationCode: confirmation.ConfirmationCode,
	}

	l.InfoContext(ctx, "Booking confirmed",
		slog.String("confirmation_code", booking.ConfirmationCode),
		slog.Float64("total_amount", booking.TotalAmount),
		slog.String("currency", booking.Currency),
	)
	span.SetStatus(codes.Ok, "booking confirmed")
	return booking, nil
}
