package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

const phoneLookupChunk = 1000

// Resolver creates customers that a file references but the system does not know
// yet. Phones seen during the current run are remembered so that a later file never
// submits them again.
type Resolver struct {
	log       *slog.Logger
	customers CustomerRepository
	known     map[string]struct{}
}

func NewResolver(log *slog.Logger, customers CustomerRepository) *Resolver {
	return &Resolver{
		log:       log,
		customers: customers,
		known:     make(map[string]struct{}),
	}
}

// Reset forgets the phones remembered by the previous run.
func (r *Resolver) Reset() {
	r.known = make(map[string]struct{})
}

// ResolveCustomers inserts the customers of rows that are neither in the database nor
// created earlier in this run, and returns them.
func (r *Resolver) ResolveCustomers(
	ctx context.Context,
	rows []domain.RowRecord,
	mapping *domain.SheetMapping,
) ([]*domain.CustomerStub, error) {
	candidates := CollectCustomers(rows, mapping)

	unknown := make([]*domain.CustomerStub, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := r.known[c.Phone]; !ok {
			unknown = append(unknown, c)
		}
	}

	if len(unknown) == 0 {
		return nil, nil
	}

	existing, err := r.existingPhones(ctx, unknown)
	if err != nil {
		return nil, err
	}

	toInsert := CustomersToInsert(unknown, existing)
	for _, phone := range existing {
		r.known[phone] = struct{}{}
	}

	r.log.DebugContext(ctx, "resolved customers",
		slog.Int("candidates", len(candidates)),
		slog.Int("existing", len(existing)),
		slog.Int("to_insert", len(toInsert)),
	)

	if len(toInsert) == 0 {
		return nil, nil
	}

	if err := r.customers.InsertCustomers(ctx, toInsert...); err != nil {
		return nil, fmt.Errorf("failed to insert customers: %w", err)
	}

	for _, c := range toInsert {
		r.known[c.Phone] = struct{}{}
	}

	return toInsert, nil
}

func (r *Resolver) existingPhones(ctx context.Context, customers []*domain.CustomerStub) ([]string, error) {
	var existing []string

	for start := 0; start < len(customers); start += phoneLookupChunk {
		end := min(start+phoneLookupChunk, len(customers))

		phones := make([]string, 0, end-start)
		for _, c := range customers[start:end] {
			phones = append(phones, c.Phone)
		}

		found, err := r.customers.ExistingPhones(ctx, phones)
		if err != nil {
			return nil, fmt.Errorf("failed to look up existing customers: %w", err)
		}

		existing = append(existing, found...)
	}

	return existing, nil
}

// CollectCustomers builds one stub per phone in order of first appearance. When a phone
// repeats, the earliest row date becomes its creation date.
func CollectCustomers(rows []domain.RowRecord, mapping *domain.SheetMapping) []*domain.CustomerStub {
	if mapping.PhoneColumn == "" {
		return nil
	}

	byPhone := make(map[string]*domain.CustomerStub)
	var ordered []*domain.CustomerStub

	for _, row := range rows {
		phone := NormalizePhone(row.String(mapping.PhoneColumn))
		if phone == "" {
			continue
		}

		var date *time.Time
		if mapping.DateColumn != "" {
			if d, ok := row.Date(mapping.DateColumn); ok {
				date = &d
			}
		}

		stub, ok := byPhone[phone]
		if !ok {
			stub = &domain.CustomerStub{
				Phone:        phone,
				Name:         strings.TrimSpace(row.String(mapping.CustomerNameColumn)),
				CreationDate: date,
				Status:       domain.CustomerStatusActive,
			}
			byPhone[phone] = stub
			ordered = append(ordered, stub)
			continue
		}

		if date != nil && (stub.CreationDate == nil || date.Before(*stub.CreationDate)) {
			stub.CreationDate = date
		}

		if stub.Name == "" {
			stub.Name = strings.TrimSpace(row.String(mapping.CustomerNameColumn))
		}
	}

	return ordered
}

// CustomersToInsert drops candidates whose phone is already known.
func CustomersToInsert(candidates []*domain.CustomerStub, existingPhones []string) []*domain.CustomerStub {
	existing := make(map[string]struct{}, len(existingPhones))
	for _, p := range existingPhones {
		existing[NormalizePhone(p)] = struct{}{}
	}

	toInsert := make([]*domain.CustomerStub, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := existing[c.Phone]; !ok {
			toInsert = append(toInsert, c)
		}
	}

	return toInsert
}

func NormalizePhone(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
