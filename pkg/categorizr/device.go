package categorizr

// Device is the immutable result of a classification.
// Exactly one of IsMobile, IsTablet, IsDesktop and IsTV is true.
type Device struct {
	category Category
}

// NewDevice creates a Device for the given tag. Tags other than mobile,
// tablet, desktop and tv resolve to mobile.
func NewDevice(category string) Device {
	c := Category(category)
	if !c.Valid() {
		c = CategoryMobile
	}
	return Device{category: c}
}

// ParseCategory is the strict counterpart of NewDevice.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return CategoryMobile, ErrUnknownCategory
	}
	return c, nil
}

// Category returns the resolved category. The zero Device reports mobile.
func (d Device) Category() Category {
	if d.category == "" {
		return CategoryMobile
	}
	return d.category
}

// String returns the category tag.
func (d Device) String() string { return string(d.Category()) }

// IsMobile returns true if the device is a phone or was not recognised.
func (d Device) IsMobile() bool { return d.Category() == CategoryMobile }

// IsTablet returns true if the device is a tablet.
func (d Device) IsTablet() bool { return d.Category() == CategoryTablet }

// IsDesktop returns true if the device is a desktop computer.
func (d Device) IsDesktop() bool { return d.Category() == CategoryDesktop }

// IsTV returns true if the device is a TV or TV-connected console.
func (d Device) IsTV() bool { return d.Category() == CategoryTV }

// MarshalText encodes the device as its category tag.
func (d Device) MarshalText() ([]byte, error) {
	return []byte(d.Category()), nil
}

// UnmarshalText decodes a category tag. Unknown tags resolve to mobile,
// matching NewDevice.
func (d *Device) UnmarshalText(text []byte) error {
	*d = NewDevice(string(text))
	return nil
}
