package storefront

import (
	"regexp"
	"strings"

	"storefront/internal/domain"
)

// Bangladeshi mobile numbers: 11 digits starting with 01.
var phonePattern = regexp.MustCompile(`^01\d{9}$`)

// Form holds the free-text and choice fields of the order form.
type Form struct {
	Quantity int
	Size     string
	Zone     domain.DeliveryZone
	Name     string
	Phone    string
	Address  string
}

// FieldValidity reports per-field validation results alongside the
// aggregate gate.
type FieldValidity struct {
	Product bool
	Name    bool
	Phone   bool
	Zone    bool
	Address bool
	Size    bool
}

func (v FieldValidity) All() bool {
	return v.Product && v.Name && v.Phone && v.Zone && v.Address && v.Size
}

func validateForm(hasSelection bool, f Form) FieldValidity {
	return FieldValidity{
		Product: hasSelection,
		Name:    strings.TrimSpace(f.Name) != "",
		Phone:   phonePattern.MatchString(strings.TrimSpace(f.Phone)),
		Zone:    f.Zone == domain.ZoneInside || f.Zone == domain.ZoneOutside,
		Address: strings.TrimSpace(f.Address) != "",
		Size:    domain.ValidSize(f.Size),
	}
}

func (c *Controller) SetQuantity(q int) {
	c.setForm(func(f *Form) { f.Quantity = q })
}

func (c *Controller) SetSize(size string) {
	c.setForm(func(f *Form) { f.Size = size })
}

func (c *Controller) SetZone(zone domain.DeliveryZone) {
	c.setForm(func(f *Form) { f.Zone = zone })
}

func (c *Controller) SetName(name string) {
	c.setForm(func(f *Form) { f.Name = name })
}

func (c *Controller) SetPhone(phone string) {
	c.setForm(func(f *Form) { f.Phone = phone })
}

func (c *Controller) SetAddress(address string) {
	c.setForm(func(f *Form) { f.Address = address })
}

func (c *Controller) setForm(mutate func(*Form)) {
	c.mu.Lock()
	mutate(&c.form)
	c.mu.Unlock()
	c.notify()
}

// Form returns a copy of the current form state.
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Validate reports per-field validity for the current state.
func (c *Controller) Validate() FieldValidity {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.selectedLocked()
	return validateForm(ok, c.form)
}

// CanSubmit is the aggregate submit gate.
func (c *Controller) CanSubmit() bool {
	return c.Validate().All()
}
