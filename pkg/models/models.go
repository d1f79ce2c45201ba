// Package models holds the request and response shapes served by the API.
// The struct tags double as documentation: `description` and `example` are
// read by the OpenAPI generator in package docs.
package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status" example:"healthy" description:"Status of the service"`
	Timestamp string `json:"timestamp" example:"2025-06-01T12:00:00Z" description:"Timestamp of the health check"`
}

// User represents a user of the platform
type User struct {
	ID        int32     `json:"id" example:"1" description:"Unique identifier for the user"`
	Email     string    `json:"email" example:"john@example.com" description:"User's email address"`
	Name      string    `json:"name" example:"John Doe" description:"User's full name"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-01T12:00:00Z" description:"Account creation timestamp"`
}

// CreateUserRequest is the payload accepted by POST /users. Fields are
// pointers so that a missing field is told apart from an empty one.
type CreateUserRequest struct {
	Email *string `json:"email" binding:"required" example:"john@example.com" description:"User's email address"`
	Name  *string `json:"name" binding:"required" example:"John Doe" description:"User's full name"`
}

// Product represents a catalogue item
type Product struct {
	ID          int32     `json:"id" example:"1" description:"Unique identifier for the product"`
	Name        string    `json:"name" example:"Laptop" description:"Product name"`
	Description string    `json:"description" example:"High-performance laptop" description:"Product description"`
	Price       float64   `json:"price" example:"999.99" description:"Product price"`
	Category    string    `json:"category" example:"Electronics" description:"Product category"`
	CreatedAt   time.Time `json:"created_at" example:"2025-06-01T12:00:00Z" description:"Product creation timestamp"`
}

// CreateProductRequest is the payload accepted by POST /products
type CreateProductRequest struct {
	Name        *string  `json:"name" binding:"required" example:"Laptop" description:"Product name"`
	Description *string  `json:"description" binding:"required" example:"High-performance laptop" description:"Product description"`
	Price       *float64 `json:"price" binding:"required" example:"999.99" description:"Product price"`
	Category    *string  `json:"category" binding:"required" example:"Electronics" description:"Product category"`
}

// PaginationParams are the list query parameters. They are accepted and
// decoded but list endpoints do not page.
type PaginationParams struct {
	Page  *int32 `form:"page" json:"page,omitempty" description:"Page number for pagination"`
	Limit *int32 `form:"limit" json:"limit,omitempty" description:"Number of items per page"`
}

// HomePage is the view data rendered by the HTML landing page.
type HomePage struct {
	Version    string
	Uptime     string
	ServerTime string
}
