package course

import "time"

// Course is a catalog entry. ID is assigned by the store.
type Course struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Instructor  string    `json:"instructor"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Attribute names shared by every store backend
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldInstructor  = "instructor"
	FieldImage       = "image"
)

var fieldOrder = []string{FieldTitle, FieldDescription, FieldCategory, FieldPrice, FieldInstructor, FieldImage}

// Patch holds the attributes replaced by an update. Nil fields are left untouched.
type Patch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Instructor  *string  `json:"instructor,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

// Fields returns the set attributes keyed by stored attribute name
func (p Patch) Fields() map[string]any {
	fields := make(map[string]any, 6)
	setString := func(name string, v *string) {
		if v != nil {
			fields[name] = *v
		}
	}

	setString(FieldTitle, p.Title)
	setString(FieldDescription, p.Description)
	setString(FieldCategory, p.Category)
	setString(FieldInstructor, p.Instructor)
	setString(FieldImage, p.Image)
	if p.Price != nil {
		fields[FieldPrice] = *p.Price
	}

	return fields
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Apply copies the set fields of p onto c
func (p Patch) Apply(c *Course) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.Instructor != nil {
		c.Instructor = *p.Instructor
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
}
