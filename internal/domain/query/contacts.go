package query

import "github.com/milldesk/milldesk-api/internal/domain/entity"

// CustomerContacts projects customers into the shape CheckDuplicate scans.
func CustomerContacts(customers []entity.Customer) []Contact {
	out := make([]Contact, 0, len(customers))
	for _, c := range customers {
		contact := Contact{ID: c.ID, Name: c.Name}
		if c.Phone != nil {
			contact.Phone = *c.Phone
		}
		out = append(out, contact)
	}
	return out
}

// SupplierContacts projects suppliers into the shape CheckDuplicate scans.
func SupplierContacts(suppliers []entity.Supplier) []Contact {
	out := make([]Contact, 0, len(suppliers))
	for _, s := range suppliers {
		contact := Contact{ID: s.ID, Name: s.Name}
		if s.Phone != nil {
			contact.Phone = *s.Phone
		}
		out = append(out, contact)
	}
	return out
}
