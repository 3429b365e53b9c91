package offer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salaluna/offer-service/internal/domain"
	"github.com/salaluna/offer-service/pkg/psqlbuilder"
	"github.com/salaluna/offer-service/pkg/txmanager"
)

var offerColumns = []string{
	"id",
	"client_id",
	"status",
	"venue_id",
	"external_location",
	"package_id",
	"event_date",
	"start_time",
	"end_time",
	"guest_count",
	"capacity_confirmed",
	"season_override_id",
	"base_price_override",
	"group_choices",
	"discount",
	"notes",
	"base_price",
	"season_adjustment",
	"guest_subtotal",
	"addon_subtotal",
	"subtotal",
	"discount_applied",
	"taxable_base",
	"tax",
	"service_fee",
	"total",
	"price_confirmed",
	"submitted_at",
	"created_at",
	"updated_at",
}

// Repository persists offers and their add-on lines
type Repository struct {
	db DBExecutor
}

// NewRepository creates an offer repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new draft offer with its add-on lines
func (r *Repository) Create(ctx context.Context, o *domain.Offer) (*domain.Offer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	groupChoices, err := encodeGroupChoices(o.Selection.GroupChoices)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode group choices: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("offers").
		Columns(
			"client_id",
			"status",
			"venue_id",
			"external_location",
			"package_id",
			"event_date",
			"start_time",
			"end_time",
			"guest_count",
			"capacity_confirmed",
			"season_override_id",
			"base_price_override",
			"group_choices",
			"discount",
			"notes",
			"base_price",
			"season_adjustment",
			"guest_subtotal",
			"addon_subtotal",
			"subtotal",
			"discount_applied",
			"taxable_base",
			"tax",
			"service_fee",
			"total",
			"price_confirmed",
			"submitted_at",
		).
		Values(
			o.ClientID,
			o.Status,
			o.Selection.VenueID,
			o.Selection.ExternalLocation,
			o.Selection.PackageID,
			nullableDate(o),
			o.Selection.StartTime,
			o.Selection.EndTime,
			o.Selection.GuestCount,
			o.Selection.CapacityConfirmed,
			o.Selection.SeasonOverrideID,
			o.Selection.BasePriceOverride,
			groupChoices,
			o.Selection.Discount,
			o.Selection.Notes,
			o.Breakdown.BasePrice,
			o.Breakdown.SeasonAdjustment,
			o.Breakdown.GuestSubtotal,
			o.Breakdown.AddOnSubtotal,
			o.Breakdown.Subtotal,
			o.Breakdown.Discount,
			o.Breakdown.TaxableBase,
			o.Breakdown.Tax,
			o.Breakdown.ServiceFee,
			o.Breakdown.Total,
			o.PriceConfirmed,
			o.SubmittedAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	if err := r.replaceAddOns(ctx, executor, o.ID, o.AddOns); err != nil {
		return nil, err
	}

	return o, nil
}

// GetByID fetches an offer with its add-on lines
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(offerColumns...).
		From("offers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	o, err := scanOffer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan offer: %v", ErrScanRow, err)
	}

	addOns, err := r.getAddOns(ctx, executor, o.ID)
	if err != nil {
		return nil, err
	}
	o.AddOns = addOns
	restoreSelectionLines(o)

	return o, nil
}

// ListByClient fetches the client's offers, optionally filtered by status,
// newest first
func (r *Repository) ListByClient(ctx context.Context, clientID int64, status *domain.OfferStatus) ([]*domain.Offer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(offerColumns...).
		From("offers").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var offers []*domain.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByClient - scan offer: %v", ErrScanRow, err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByClient - iterate rows: %v", ErrExecQuery, err)
	}

	for _, o := range offers {
		addOns, err := r.getAddOns(ctx, executor, o.ID)
		if err != nil {
			return nil, err
		}
		o.AddOns = addOns
		restoreSelectionLines(o)
	}

	return offers, nil
}

// Update rewrites an offer's selection, breakdown, status and add-on lines
func (r *Repository) Update(ctx context.Context, o *domain.Offer) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	groupChoices, err := encodeGroupChoices(o.Selection.GroupChoices)
	if err != nil {
		return fmt.Errorf("%w: Update - encode group choices: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("offers").
		Set("status", o.Status).
		Set("venue_id", o.Selection.VenueID).
		Set("external_location", o.Selection.ExternalLocation).
		Set("package_id", o.Selection.PackageID).
		Set("event_date", nullableDate(o)).
		Set("start_time", o.Selection.StartTime).
		Set("end_time", o.Selection.EndTime).
		Set("guest_count", o.Selection.GuestCount).
		Set("capacity_confirmed", o.Selection.CapacityConfirmed).
		Set("season_override_id", o.Selection.SeasonOverrideID).
		Set("base_price_override", o.Selection.BasePriceOverride).
		Set("group_choices", groupChoices).
		Set("discount", o.Selection.Discount).
		Set("notes", o.Selection.Notes).
		Set("base_price", o.Breakdown.BasePrice).
		Set("season_adjustment", o.Breakdown.SeasonAdjustment).
		Set("guest_subtotal", o.Breakdown.GuestSubtotal).
		Set("addon_subtotal", o.Breakdown.AddOnSubtotal).
		Set("subtotal", o.Breakdown.Subtotal).
		Set("discount_applied", o.Breakdown.Discount).
		Set("taxable_base", o.Breakdown.TaxableBase).
		Set("tax", o.Breakdown.Tax).
		Set("service_fee", o.Breakdown.ServiceFee).
		Set("total", o.Breakdown.Total).
		Set("price_confirmed", o.PriceConfirmed).
		Set("submitted_at", o.SubmittedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOfferNotFound
	}

	return r.replaceAddOns(ctx, executor, o.ID, o.AddOns)
}

// UpdateStatus changes only the offer status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.OfferStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("offers").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOfferNotFound
	}

	return nil
}

// replaceAddOns rewrites the offer's add-on lines
func (r *Repository) replaceAddOns(ctx context.Context, executor txmanager.Executor, offerID int64, addOns []domain.OfferAddOn) error {
	query, args, err := psqlbuilder.Delete("offer_addons").
		Where(squirrel.Eq{"offer_id": offerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceAddOns - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceAddOns - execute delete: %v", ErrExecQuery, err)
	}

	if len(addOns) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("offer_addons").
		Columns("offer_id", "service_id", "service_name", "quantity", "unit_price", "unit_price_override")
	for _, line := range addOns {
		insertBuilder = insertBuilder.Values(
			offerID,
			line.ServiceID,
			line.ServiceName,
			line.Quantity,
			line.UnitPrice,
			line.UnitPriceOverride,
		)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceAddOns - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceAddOns - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// getAddOns fetches the offer's add-on lines in insertion order
func (r *Repository) getAddOns(ctx context.Context, executor txmanager.Executor, offerID int64) ([]domain.OfferAddOn, error) {
	query, args, err := psqlbuilder.Select(
		"service_id",
		"service_name",
		"quantity",
		"unit_price",
		"unit_price_override",
	).
		From("offer_addons").
		Where(squirrel.Eq{"offer_id": offerID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getAddOns - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getAddOns - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var addOns []domain.OfferAddOn
	for rows.Next() {
		var line domain.OfferAddOn
		if err := rows.Scan(
			&line.ServiceID,
			&line.ServiceName,
			&line.Quantity,
			&line.UnitPrice,
			&line.UnitPriceOverride,
		); err != nil {
			return nil, fmt.Errorf("%w: getAddOns - scan line: %v", ErrScanRow, err)
		}
		addOns = append(addOns, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getAddOns - iterate rows: %v", ErrExecQuery, err)
	}

	return addOns, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanOffer reads one offer row into a domain offer
func scanOffer(row rowScanner) (*domain.Offer, error) {
	var o domain.Offer
	var eventDate, submittedAt, createdAt, updatedAt sql.NullTime
	var groupChoices []byte

	err := row.Scan(
		&o.ID,
		&o.ClientID,
		&o.Status,
		&o.Selection.VenueID,
		&o.Selection.ExternalLocation,
		&o.Selection.PackageID,
		&eventDate,
		&o.Selection.StartTime,
		&o.Selection.EndTime,
		&o.Selection.GuestCount,
		&o.Selection.CapacityConfirmed,
		&o.Selection.SeasonOverrideID,
		&o.Selection.BasePriceOverride,
		&groupChoices,
		&o.Selection.Discount,
		&o.Selection.Notes,
		&o.Breakdown.BasePrice,
		&o.Breakdown.SeasonAdjustment,
		&o.Breakdown.GuestSubtotal,
		&o.Breakdown.AddOnSubtotal,
		&o.Breakdown.Subtotal,
		&o.Breakdown.Discount,
		&o.Breakdown.TaxableBase,
		&o.Breakdown.Tax,
		&o.Breakdown.ServiceFee,
		&o.Breakdown.Total,
		&o.PriceConfirmed,
		&submittedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.Selection.ClientID = o.ClientID
	if eventDate.Valid {
		o.Selection.EventDate = eventDate.Time
	}
	if submittedAt.Valid {
		o.SubmittedAt = &submittedAt.Time
	}
	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	choices, err := decodeGroupChoices(groupChoices)
	if err != nil {
		return nil, err
	}
	o.Selection.GroupChoices = choices

	return &o, nil
}

// restoreSelectionLines rebuilds the selection's add-on lines from the
// persisted, denormalized ones
func restoreSelectionLines(o *domain.Offer) {
	lines := make([]domain.AddOnLine, 0, len(o.AddOns))
	for _, a := range o.AddOns {
		lines = append(lines, domain.AddOnLine{
			ServiceID:         a.ServiceID,
			Quantity:          a.Quantity,
			UnitPriceOverride: a.UnitPriceOverride,
		})
	}
	o.Selection.AddOns = lines
}

func nullableDate(o *domain.Offer) interface{} {
	if o.Selection.EventDate.IsZero() {
		return nil
	}
	return o.Selection.EventDate
}

func encodeGroupChoices(choices map[domain.ExclusivityGroup]int64) ([]byte, error) {
	if len(choices) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(choices)
}

func decodeGroupChoices(raw []byte) (map[domain.ExclusivityGroup]int64, error) {
	choices := make(map[domain.ExclusivityGroup]int64)
	if len(raw) == 0 {
		return choices, nil
	}
	if err := json.Unmarshal(raw, &choices); err != nil {
		return nil, err
	}
	return choices, nil
}
