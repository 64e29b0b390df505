package state

// ID identifies a named entity within a domain. Two IDs are equal if both
// components are byte-exact equal. The zero value is not a valid ID.
type ID struct {
	Name   string
	Domain string
}

// NewID will create an ID from an entity name and a domain name. No
// validation is performed; consumers are responsible for rejecting
// malformed names.
func NewID(name, domain string) ID {
	return ID{
		Name:   name,
		Domain: domain,
	}
}

// DomainID will create an ID that addresses a domain itself. Domains are
// addressed by bare name; the Domain component stays empty.
func DomainID(name string) ID {
	return ID{
		Name: name,
	}
}

// String implements the fmt.Stringer interface.
func (i ID) String() string {
	// format domain ids by name only
	if i.Domain == "" {
		return i.Name
	}

	return i.Name + "#" + i.Domain
}
