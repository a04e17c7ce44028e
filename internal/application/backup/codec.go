// Package backup implements the console's export/import codec: JSON and CSV
// (and XLSX) serialization of collection snapshots, plus the versioned
// full-backup envelope used for restores.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/milldesk/milldesk-api/internal/domain/entity"
)

// EnvelopeVersion tags the full-backup document shape.
const EnvelopeVersion = "2.0"

// Envelope is the tagged full-backup document: the customer collection plus
// its related side-collections. Field names are the wire contract shared
// with the console UI; older console builds exported a bare customer array
// instead, which ImportCustomers still accepts.
//
// A side collection missing from the document decodes to nil and means "not
// carried": a restore preserves what the database already holds for it. An
// explicitly empty array clears the collection instead.
type Envelope struct {
	Version       string               `json:"version"`
	ExportedAt    time.Time            `json:"exportedAt"`
	Customers     []entity.Customer    `json:"customers"`
	Sales         []entity.Sale        `json:"sales"`
	LedgerEntries []entity.LedgerEntry `json:"ledgerEntries"`
	BookedStock   []entity.BookedStock `json:"bookedStock"`
}

// ExportCustomersJSON serializes customers as a bare JSON array, every field
// included, timestamps in ISO-8601.
func ExportCustomersJSON(customers []entity.Customer) ([]byte, error) {
	return json.MarshalIndent(customers, "", "  ")
}

// ExportSuppliersJSON serializes suppliers as a bare JSON array.
func ExportSuppliersJSON(suppliers []entity.Supplier) ([]byte, error) {
	return json.MarshalIndent(suppliers, "", "  ")
}

// ExportFullJSON serializes the tagged full-backup envelope. Every
// collection is written out, empty ones as [], so that importing the file
// restores the exact exported state rather than preserving stale rows.
func ExportFullJSON(env *Envelope) ([]byte, error) {
	if env.Version == "" {
		env.Version = EnvelopeVersion
	}
	if env.ExportedAt.IsZero() {
		env.ExportedAt = time.Now().UTC()
	}
	if env.Customers == nil {
		env.Customers = []entity.Customer{}
	}
	if env.Sales == nil {
		env.Sales = []entity.Sale{}
	}
	if env.LedgerEntries == nil {
		env.LedgerEntries = []entity.LedgerEntry{}
	}
	if env.BookedStock == nil {
		env.BookedStock = []entity.BookedStock{}
	}
	return json.MarshalIndent(env, "", "  ")
}

// ImportCustomers parses an exported document, accepting both supported
// shapes: a bare customer array (legacy) and the tagged envelope. The whole
// batch is validated before anything is returned: the first invalid record
// aborts the import with a message naming its 1-based position, and unknown
// fields anywhere in the document are rejected. Identity, balances and
// timestamps pass through verbatim, which is what makes an export/import
// round trip idempotent.
func ImportCustomers(data []byte) (*Envelope, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("import file is empty")
	}

	env := &Envelope{}
	switch trimmed[0] {
	case '[':
		var customers []entity.Customer
		if err := strictDecode(trimmed, &customers); err != nil {
			return nil, fmt.Errorf("invalid backup file: %w", err)
		}
		env.Version = EnvelopeVersion
		env.Customers = customers
	case '{':
		if err := strictDecode(trimmed, env); err != nil {
			return nil, fmt.Errorf("invalid backup file: %w", err)
		}
		if env.Version != EnvelopeVersion {
			return nil, fmt.Errorf("unsupported backup version %q, expected %q", env.Version, EnvelopeVersion)
		}
		if env.Customers == nil {
			return nil, fmt.Errorf("backup object is missing the \"customers\" collection")
		}
	default:
		return nil, fmt.Errorf("import file is neither a JSON array nor a backup object")
	}

	if err := validateEnvelope(env); err != nil {
		return nil, err
	}
	return env, nil
}

// strictDecode unmarshals exactly one JSON value, rejecting unknown fields
// and trailing garbage.
func strictDecode(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected trailing data after JSON document")
	}
	return nil
}

// validateEnvelope enforces required fields across every collection and
// checks that every side record points at a customer the document carries.
// Errors reference the 1-based position of the offending record; the first
// failure aborts the batch.
func validateEnvelope(env *Envelope) error {
	for i, c := range env.Customers {
		if c.ID == uuid.Nil {
			return fmt.Errorf("customer %d: missing required field \"id\"", i+1)
		}
		if c.Name == "" {
			return fmt.Errorf("customer %d: missing required field \"name\"", i+1)
		}
		if c.State == "" {
			return fmt.Errorf("customer %d: missing required field \"state\"", i+1)
		}
		if !c.State.IsValid() {
			return fmt.Errorf("customer %d: unknown state %q", i+1, c.State)
		}
	}
	known := make(map[uuid.UUID]bool, len(env.Customers))
	for _, c := range env.Customers {
		known[c.ID] = true
	}
	for i, s := range env.Sales {
		if s.ID == uuid.Nil {
			return fmt.Errorf("sale %d: missing required field \"id\"", i+1)
		}
		if s.CustomerID == uuid.Nil {
			return fmt.Errorf("sale %d: missing required field \"customerId\"", i+1)
		}
		if !known[s.CustomerID] {
			return fmt.Errorf("sale %d: references unknown customer %s", i+1, s.CustomerID)
		}
		if s.ProductName == "" {
			return fmt.Errorf("sale %d: missing required field \"productName\"", i+1)
		}
	}
	for i, e := range env.LedgerEntries {
		if e.ID == uuid.Nil {
			return fmt.Errorf("ledger entry %d: missing required field \"id\"", i+1)
		}
		if e.CustomerID == uuid.Nil {
			return fmt.Errorf("ledger entry %d: missing required field \"customerId\"", i+1)
		}
		if !known[e.CustomerID] {
			return fmt.Errorf("ledger entry %d: references unknown customer %s", i+1, e.CustomerID)
		}
		if e.Date.IsZero() {
			return fmt.Errorf("ledger entry %d: missing required field \"date\"", i+1)
		}
	}
	for i, b := range env.BookedStock {
		if b.ID == uuid.Nil {
			return fmt.Errorf("booked stock %d: missing required field \"id\"", i+1)
		}
		if b.CustomerID == uuid.Nil {
			return fmt.Errorf("booked stock %d: missing required field \"customerId\"", i+1)
		}
		if !known[b.CustomerID] {
			return fmt.Errorf("booked stock %d: references unknown customer %s", i+1, b.CustomerID)
		}
		if b.ProductName == "" {
			return fmt.Errorf("booked stock %d: missing required field \"productName\"", i+1)
		}
		if !b.Status.IsValid() {
			return fmt.Errorf("booked stock %d: unknown status %q", i+1, b.Status)
		}
		if b.QuantityLoaded.GreaterThan(b.Quantity) {
			return fmt.Errorf("booked stock %d: quantityLoaded exceeds quantity", i+1)
		}
	}
	return nil
}
