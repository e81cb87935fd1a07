package validate

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// Request schemas, one per mutating endpoint. Rule order matters within a
// field: only the first broken rule is reported.

func RegisterSchema() Schema {
	return Schema{
		{Name: "username", Rules: []Rule{
			Required("username"),
			MinLen("username", 10),
			MaxLen("username", 30),
			Alphanumeric("username"),
		}},
		{Name: "email", Rules: []Rule{
			Required("email"),
			Email("email"),
		}},
		{Name: "password", Rules: []Rule{
			Required("password"),
			MinLen("password", 8),
			MaxLen("password", 20),
		}},
	}
}

func LoginSchema() Schema {
	return Schema{
		{Name: "username", Rules: []Rule{
			Required("username"),
			MinLen("username", 10),
			MaxLen("username", 30),
			Alphanumeric("username"),
		}},
		{Name: "password", Rules: []Rule{
			Required("password"),
			MinLen("password", 8),
			MaxLen("password", 20),
		}},
	}
}

func ProductTypeSchema() Schema {
	return Schema{
		{Name: "name", Rules: []Rule{
			Required("name"),
			MinLen("name", 3),
			MaxLen("name", 30),
			AlphanumericSpace("name"),
		}},
		{Name: "description", Rules: []Rule{
			Required("description"),
			MinLen("description", 5),
			MaxLen("description", 100),
			AlphanumericSpace("description"),
		}},
	}
}

func ProductSchema() Schema {
	return Schema{
		{Name: "name", Rules: []Rule{
			Required("name"),
			MinLen("name", 3),
			MaxLen("name", 30),
			AlphanumericSpace("name"),
		}},
		{Name: "quantity", Rules: []Rule{
			Required("quantity"),
			Integer("quantity"),
			IntMin("quantity", 0),
		}},
		{Name: "description", Rules: []Rule{
			Required("description"),
			MinLen("description", 5),
			MaxLen("description", 100),
			AlphanumericSpace("description"),
		}},
		{Name: "serial_number", Rules: []Rule{
			Required("serial_number"),
		}},
		{Name: "has_sold", Optional: true, Rules: []Rule{
			In("has_sold", "true", "false"),
		}},
		{Name: "product_type_id", Rules: []Rule{
			Required("product_type_id"),
			UUID("product_type_id"),
		}},
	}
}

const maxImageKilobytes = 3048

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// Image checks an uploaded file against the jpg/jpeg/png and size limits
// shared by product and product-type uploads. Returns nil when the file is
// acceptable.
func Image(header *multipart.FileHeader) map[string][]string {
	if header == nil {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return map[string][]string{
			"image": {"The image field must be a file of type: jpg, jpeg, png."},
		}
	}

	if header.Size > maxImageKilobytes*1024 {
		return map[string][]string{
			"image": {fmt.Sprintf("The image field must not be greater than %d kilobytes.", maxImageKilobytes)},
		}
	}

	return nil
}
