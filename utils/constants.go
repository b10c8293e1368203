package utils

// Application constants
const (
	// Application name
	AppName = "Sole&Ankle"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default database settings
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "sole_and_ankle"
	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"

	// Rendered grids are cached this long (seconds)
	DefaultCacheTTLSeconds = 60

	// Default pagination limit
	DefaultPaginationLimit = 12

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Number of slugs kept in the recently viewed list
	RecentlyViewedLimit = 5
)

// Error messages
const (
	ErrInvalidToken   = "Invalid or expired token"
	ErrUnauthorized   = "Unauthorized access"
	ErrForbidden      = "Access forbidden"
	ErrShoeNotFound   = "Shoe not found"
	ErrInvalidSort    = "Sort must be newest or price"
	ErrInvalidFormat  = "Format must be xlsx or pdf"
	ErrInvalidRequest = "Invalid request body"
	ErrInternalServer = "Internal server error"
)

// Success messages
const (
	MsgShoesFetched = "Shoes fetched successfully"
	MsgCardFetched  = "Shoe card fetched successfully"
	MsgShoeSaved    = "Shoe saved successfully"
)
