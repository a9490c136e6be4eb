package integration_test

const (
	dbName         = "theatre_reservation"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	// User related constants
	TestUserFirstName = "John"
	TestUserLastName  = "Doe"
	TestUserEmail     = "test@example.com"
	TestUserPassword  = "Test123!@#"

	// Catalog related constants
	TestPlayTitle       = "Hamlet"
	TestPlayDescription = "The tragedy of the Prince of Denmark."
	TestHallName        = "Main Stage"
	TestHallRows        = 20
	TestHallSeatsInRow  = 20
)
