package api

import (
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"

	"github.com/Aidin1998/walletapi/docs"
	"github.com/Aidin1998/walletapi/pkg/models"
)

// route binds one documented operation to its handler. The table below is
// the only place routes are declared; registration and the OpenAPI
// document both read it.
type route struct {
	docs.Operation
	handler gin.HandlerFunc
}

type userPath struct {
	ID int32 `uri:"id" description:"User ID"`
}

type walletOwnerPath struct {
	UserID int32 `uri:"user_id" description:"User ID"`
}

type productPath struct {
	ID int32 `uri:"id" description:"Product ID"`
}

const pagingIgnored = "Pagination parameters are accepted but do not change the result."

func (s *Server) routeTable() []route {
	return []route{
		{
			Operation: docs.Operation{
				Method:       http.MethodGet,
				Path:         "/",
				OperationID:  "homePage",
				Tag:          "System",
				Summary:      "Landing page",
				ResponseType: "text/html",
				ResponseDesc: "HTML landing page",
			},
			handler: s.homePage,
		},
		{
			Operation: docs.Operation{
				Method:       http.MethodGet,
				Path:         "/health",
				OperationID:  "healthCheck",
				Tag:          "System",
				Summary:      "Health check",
				Response:     models.HealthResponse{},
				ResponseDesc: "Health check successful",
			},
			handler: s.healthCheck,
		},
		{
			Operation: docs.Operation{
				Method:       http.MethodGet,
				Path:         "/users",
				OperationID:  "getUsers",
				Tag:          "Users",
				Summary:      "List users",
				Description:  pagingIgnored,
				QueryParams:  models.PaginationParams{},
				Response:     []models.User{},
				ResponseDesc: "List of users",
				DecodeErrors: true,
			},
			handler: s.getUsers,
		},
		{
			Operation: docs.Operation{
				Method:       http.MethodPost,
				Path:         "/users",
				OperationID:  "createUser",
				Tag:          "Users",
				Summary:      "Create a user",
				Body:         models.CreateUserRequest{},
				BodyDesc:     "User to create",
				Response:     models.User{},
				Status:       http.StatusCreated,
				ResponseDesc: "User created successfully",
				DecodeErrors: true,
			},
			handler: s.createUser,
		},
		{
			Operation: docs.Operation{
				Method:       http.MethodGet,
				Path:         "/users/{id}",
				OperationID:  "getUserById",
				Tag:          "Users",
				Summary:      "Get a user by id",
				PathParams:   userPath{},
				Response:     models.User{},
				ResponseDesc: "User details",
				DecodeErrors: true,
			},
			handler: s.getUserByID,
		},
		{
			Operation: docs.Operation{
				Method:       http.MethodGet,
				Path:         "/wallets/{user_id}",
				OperationID:  "getUserWallets",
				Tag:          "Wallets",
				Summary:      "List a user's wallets",
				PathParams:   walletOwnerPath{},
				Response:     []models.Wallet{},
				ResponseDesc: "User's wallets",
				DecodeErrors: true,
			},
			handler: s.getUserWallets,
		},
		{
			Operation: docs.Operation{
				Method:       http.MethodPost,
				Path:         "/transfers",
				OperationID:  "createTransfer",
				Tag:          "Transfers",
				Summary:      "Create a transfer",
				Description:  "The request is echoed back. No balance moves and the idempotency key is not enforced.",
				Body:         models.TransferRequest{},
				BodyDesc:     "Transfer to perform",
				Response:     models.TransferRequest{},
				ResponseDesc: "Transfer completed successfully",
				DecodeErrors: true,
			},
			handler: s.createTransfer,
		},
		{
			Operation: docs.Operation{
				Method:       http.MethodGet,
				Path:         "/products",
				OperationID:  "getProducts",
				Tag:          "Products",
				Summary:      "List products",
				Description:  pagingIgnored,
				QueryParams:  models.PaginationParams{},
				Response:     []models.Product{},
				ResponseDesc: "List of products",
				DecodeErrors: true,
			},
			handler: s.getProducts,
		},
		{
			Operation: docs.Operation{
				Method:       http.MethodPost,
				Path:         "/products",
				OperationID:  "createProduct",
				Tag:          "Products",
				Summary:      "Create a product",
				Body:         models.CreateProductRequest{},
				BodyDesc:     "Product to create",
				Response:     models.Product{},
				Status:       http.StatusCreated,
				ResponseDesc: "Product created successfully",
				DecodeErrors: true,
			},
			handler: s.createProduct,
		},
		{
			Operation: docs.Operation{
				Method:       http.MethodGet,
				Path:         "/products/{id}",
				OperationID:  "getProductById",
				Tag:          "Products",
				Summary:      "Get a product by id",
				PathParams:   productPath{},
				Response:     models.Product{},
				ResponseDesc: "Product details",
				DecodeErrors: true,
			},
			handler: s.getProductByID,
		},
	}
}

// Operations returns the documented operations of the route table.
func Operations() []docs.Operation {
	table := (&Server{}).routeTable()
	ops := make([]docs.Operation, len(table))
	for i, r := range table {
		ops[i] = r.Operation
	}
	return ops
}

// BuildDocument renders the OpenAPI document for the route table.
func BuildDocument(version string) (*openapi3.T, error) {
	return docs.Build(docs.DefaultInfo(version), Operations(), models.PaginationParams{})
}

// ginPath converts an OpenAPI path template to gin syntax: /users/{id}
// becomes /users/:id.
func ginPath(template string) string {
	segments := strings.Split(template, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segments[i] = ":" + seg[1:len(seg)-1]
		}
	}
	return strings.Join(segments, "/")
}
