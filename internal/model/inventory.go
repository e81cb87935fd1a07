package model

import "time"

type ProductType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImagePath   *string   `json:"image"`
	OwnerID     string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	Description   string    `json:"description"`
	ImagePath     *string   `json:"image"`
	SerialNumber  string    `json:"serial_number"`
	HasSold       bool      `json:"has_sold"`
	OwnerID       string    `json:"-"`
	ProductTypeID string    `json:"product_type_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductTypeSummary is the list-endpoint projection, including how many
// products reference the type.
type ProductTypeSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ProductsCount int    `json:"products_count"`
}

// ProductSummary is the list-endpoint projection of a product.
type ProductSummary struct {
	ID           string  `json:"id"`
	SerialNumber string  `json:"serial_number"`
	Name         string  `json:"name"`
	HasSold      bool    `json:"has_sold"`
	ImagePath    *string `json:"image"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
}

// RecentEntry is a dashboard item: one of the last additions with a
// humanized age instead of a raw timestamp.
type RecentEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// Dashboard is the payload of GET /user/me.
type Dashboard struct {
	Name                   string        `json:"name"`
	AddedProductTypesCount int           `json:"added_product_types_count"`
	AddedProductsCount     int           `json:"added_products_count"`
	SoldProductsCount      int           `json:"sold_products_count"`
	LastAddedProducts      []RecentEntry `json:"last_added_products"`
	LastAddedProductTypes  []RecentEntry `json:"last_added_product_types"`
	HumanTime              string        `json:"human_time"`
}
